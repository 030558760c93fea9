// Package appctx provides the per-use-case unit of work for application
// services.
//
// A RequestContext wraps the context of one use case. It memoizes loads,
// queues writes for a single Commit, and buffers the domain events that
// aggregates raise along the way:
//
//	rc := appctx.New(txCtx)
//
//	// Load with memoization.
//	list, err := appctx.GetOrFetch(rc, "list:12", loadList)
//
//	// Mutate; aggregates raise events on rc.
//	item.MarkCompleted(rc)
//
//	// Queue and run the writes.
//	rc.Stage("item:7", item, saveItem)
//	err = rc.Commit(txCtx)
//
//	// After the surrounding transaction has committed.
//	events, err := rc.Drain()
//
// Events only leave the buffer through Drain, and Drain refuses to hand
// them out unless Commit succeeded. A RequestContext is never shared
// between use cases.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
)

var _ domain.EventRecorder = (*RequestContext)(nil)

// ErrAlreadyCommitted is returned when AddAction, Stage, or Commit is
// called on a RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNotCommitted is returned by Drain before a successful Commit.
var ErrNotCommitted = errors.New("appctx: request context not committed")

// ErrNilAction is returned when a nil Action is passed to AddAction, Stage
// or Execute.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. It means one cache key is being used for
// two different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

type commitState int

const (
	statePending commitState = iota
	stateCommitted
	stateFailed
)

// RequestContext is the unit of work for one use case. It embeds the
// use case's context.Context.
type RequestContext struct {
	context.Context

	mu     sync.Mutex
	cache  map[string]cacheEntry
	queue  []domain.Action
	events []domain.Event
	state  commitState
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
type cacheEntry struct {
	value any
	err   error
}

// New creates an empty RequestContext wrapping ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// GetOrFetch returns the cached value for key, or calls fetchFn and caches
// its result. Errors are cached too, so a missing entity is only looked up
// once per use case.
//
// The same key must always be used with the same type T; otherwise
// GetOrFetch returns ErrTypeMismatch.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	rc.mu.Lock()
	entry, ok := rc.cache[key]
	rc.mu.Unlock()

	if ok {
		var zero T
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)

	rc.mu.Lock()
	rc.cache[key] = cacheEntry{value: val, err: err}
	rc.mu.Unlock()
	return val, err
}

// Stage replaces the cached value for key with entity and queues action for
// Commit. Later GetOrFetch calls for key see the staged entity.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.state != statePending {
		return ErrAlreadyCommitted
	}
	rc.cache[key] = cacheEntry{value: entity}
	rc.queue = append(rc.queue, action)
	return nil
}

// Execute runs action immediately instead of queueing it. It is used when a
// later step needs the action's result, such as a store-assigned id. The
// action still runs inside whatever transaction the context carries, but it
// is not part of Commit's rollback sequence.
func (rc *RequestContext) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(rc.Context)
}
