// Package fanout runs one function across a set of targets with bounded
// concurrency. The event dispatcher uses it to hand a drained event to every
// subscriber without letting a slow or broken subscriber hold up the rest.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrPanic wraps a panic recovered from fn.
var ErrPanic = errors.New("fanout: panic")

// Result holds the outcome for one target. Either Value is set or Err is
// non-nil.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each target using at most maxWorkers goroutines and
// returns results in target order. A maxWorkers below 1 is treated as 1.
//
// A target still waiting for a slot when ctx is done records ctx.Err()
// without calling fn. A panic in fn is recovered and reported as ErrPanic
// for that target only.
func Run[T, R any](ctx context.Context, maxWorkers int, targets []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(targets) == 0 {
		return []Result[R]{}
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	results := make([]Result[R], len(targets))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, target := range targets {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			results[i] = call(ctx, target, fn)
		}()
	}

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, target T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if r := recover(); r != nil {
			res = Result[R]{Err: fmt.Errorf("%w: %v", ErrPanic, r)}
		}
	}()
	v, err := fn(ctx, target)
	return Result[R]{Value: v, Err: err}
}

// Errors joins the non-nil errors in results, or returns nil.
func Errors[R any](results []Result[R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
