package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-todolist-service/internal/app/fanout"
)

func TestRun_NoTargets(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, []string{}, func(_ context.Context, _ string) (struct{}, error) {
		t.Fatal("fn should not be called without targets")
		return struct{}{}, nil
	})

	if results == nil || len(results) != 0 {
		t.Fatalf("Run() = %v, want empty non-nil slice", results)
	}
}

func TestRun_ResultsFollowTargetOrder(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{30 * time.Millisecond, 5 * time.Millisecond, 15 * time.Millisecond}

	results := fanout.Run(context.Background(), len(delays), delays, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})

	for i, r := range results {
		if r.Err != nil || r.Value != delays[i] {
			t.Errorf("results[%d] = {%v, %v}, want {%v, nil}", i, r.Value, r.Err, delays[i])
		}
	}
}

func TestRun_FailureAndPanicStayIsolated(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	subscribers := []string{"log", "nats", "broken", "stats"}

	results := fanout.Run(context.Background(), 2, subscribers, func(_ context.Context, name string) (string, error) {
		switch name {
		case "nats":
			return "", errBoom
		case "broken":
			panic("nil map")
		}
		return name, nil
	})

	if results[0].Value != "log" || results[3].Value != "stats" {
		t.Errorf("healthy subscribers = %q, %q, want log, stats", results[0].Value, results[3].Value)
	}
	if !errors.Is(results[1].Err, errBoom) {
		t.Errorf("results[1].Err = %v, want %v", results[1].Err, errBoom)
	}
	if !errors.Is(results[2].Err, fanout.ErrPanic) {
		t.Errorf("results[2].Err = %v, want ErrPanic", results[2].Err)
	}

	joined := fanout.Errors(results)
	if !errors.Is(joined, errBoom) || !errors.Is(joined, fanout.ErrPanic) {
		t.Errorf("Errors() = %v, want both failures", joined)
	}
}

func TestErrors_AllSucceeded(t *testing.T) {
	t.Parallel()

	if err := fanout.Errors([]fanout.Result[int]{{Value: 1}, {Value: 2}}); err != nil {
		t.Errorf("Errors() = %v, want nil", err)
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		maxWorkers int
		wantPeak   int32
	}{
		{name: "three workers", maxWorkers: 3, wantPeak: 3},
		{name: "zero treated as one", maxWorkers: 0, wantPeak: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var active, peak atomic.Int32
			targets := make([]int, 9)

			fanout.Run(context.Background(), tt.maxWorkers, targets, func(_ context.Context, _ int) (int, error) {
				cur := active.Add(1)
				defer active.Add(-1)
				for {
					p := peak.Load()
					if cur <= p || peak.CompareAndSwap(p, cur) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				return 0, nil
			})

			if got := peak.Load(); got > tt.wantPeak {
				t.Errorf("peak concurrency = %d, want <= %d", got, tt.wantPeak)
			}
		})
	}
}

func TestRun_CanceledContextSkipsWaitingTargets(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})
	var calls atomic.Int32

	done := make(chan []fanout.Result[int])
	go func() {
		done <- fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
			calls.Add(1)
			<-release
			return n, nil
		})
	}()

	// Let one target take the only slot, then cancel before releasing it.
	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
	close(release)

	results := <-done
	if calls.Load() != 1 {
		t.Errorf("fn called %d times, want 1", calls.Load())
	}
	canceled := 0
	for _, r := range results {
		if errors.Is(r.Err, context.Canceled) {
			canceled++
		}
	}
	if canceled != 2 {
		t.Errorf("canceled results = %d, want 2", canceled)
	}
}
