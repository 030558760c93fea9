// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Every mutating use case runs as one unit of work: load and authorize,
// mutate aggregates, commit the queued writes inside a store transaction,
// and only then publish the events the aggregates raised.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	appctx "github.com/jsamuelsen11/go-todolist-service/internal/app/context"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

// unitOfWork runs use cases against one Transactor and publishes their
// events afterwards. A nil publisher drops events.
type unitOfWork struct {
	tx        ports.Transactor
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func newUnitOfWork(tx ports.Transactor, publisher ports.EventPublisher, logger *slog.Logger) unitOfWork {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return unitOfWork{tx: tx, publisher: publisher, logger: logger}
}

// run executes fn with a fresh RequestContext inside a transaction and
// commits the actions fn queued. Events are published only once the
// transaction itself has committed; if anything fails they are dropped
// with the RequestContext.
func (u unitOfWork) run(ctx context.Context, operation string, fn func(rc *appctx.RequestContext) error) error {
	var rc *appctx.RequestContext

	err := u.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		rc = appctx.New(txCtx)
		if err := fn(rc); err != nil {
			return err
		}
		return rc.Commit(txCtx)
	})
	if err != nil {
		return err
	}

	u.dispatch(ctx, operation, rc)
	return nil
}

// dispatch publishes the drained events in order. Publish failures are
// logged; the use case has already succeeded.
func (u unitOfWork) dispatch(ctx context.Context, operation string, rc *appctx.RequestContext) {
	events, err := rc.Drain()
	if err != nil {
		u.logger.ErrorContext(ctx, "draining events",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
		return
	}
	if u.publisher == nil {
		return
	}

	for _, e := range events {
		if err := u.publisher.Publish(ctx, e); err != nil {
			u.logger.WarnContext(ctx, "failed to publish event",
				slog.String("operation", operation),
				slog.String("event", e.EventName()),
				slog.Any("error", err),
			)
		}
	}
}

// logFailure logs a failed use case. Caller mistakes (bad input, missing or
// foreign entities) are logged at Info, everything else at Error.
func (u unitOfWork) logFailure(ctx context.Context, operation string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if isClientError(err) {
		level = slog.LevelInfo
	}

	all := make([]slog.Attr, 0, len(attrs)+2)
	all = append(all, slog.String("operation", operation))
	all = append(all, attrs...)
	all = append(all, slog.Any("error", err))
	u.logger.LogAttrs(ctx, level, "use case failed", all...)
}

func isClientError(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrForbidden) ||
		errors.Is(err, domain.ErrConflict)
}

func listKey(id int64) string { return fmt.Sprintf("list:%d", id) }
func itemKey(id int64) string { return fmt.Sprintf("item:%d", id) }
func userKey(id int64) string { return fmt.Sprintf("user:%d", id) }
