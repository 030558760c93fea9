package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/logging"
)

// Commit executes all queued actions in insertion order. If one fails, the
// actions that already ran are rolled back in reverse order and the event
// buffer is discarded. Rollback errors are logged but do not change the
// returned error.
//
// Whatever the outcome, no further actions can be queued afterwards.
// Returns ErrAlreadyCommitted if called more than once.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.mu.Lock()
	if rc.state != statePending {
		rc.mu.Unlock()
		return ErrAlreadyCommitted
	}
	// Mark failed up front so concurrent Stage calls stop; flipped to
	// committed once every action has run.
	rc.state = stateFailed
	queue := rc.queue
	rc.queue = nil
	rc.mu.Unlock()

	logger := logging.FromContext(ctx)

	for i, action := range queue {
		logger.DebugContext(ctx, "executing action",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(queue)),
			slog.String("action", action.Description()),
		)

		if err := action.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "action failed, initiating rollback",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			rollback(ctx, queue[:i], logger)
			rc.discardEvents()
			return fmt.Errorf("executing %s: %w", action.Description(), err)
		}
	}

	rc.mu.Lock()
	rc.state = stateCommitted
	rc.mu.Unlock()
	return nil
}

// rollback undoes done in reverse order. A failing rollback is logged and
// the remaining ones still run.
func rollback(ctx context.Context, done []domain.Action, logger *slog.Logger) {
	for i := len(done) - 1; i >= 0; i-- {
		action := done[i]

		logger.DebugContext(ctx, "rolling back action",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.String("action", action.Description()),
		)

		if err := action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
		}
	}
}

// Committed reports whether Commit ran every action successfully.
func (rc *RequestContext) Committed() bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.state == stateCommitted
}
