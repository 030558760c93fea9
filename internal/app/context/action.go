package appctx

import (
	"context"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
)

// AddAction queues action for Commit without touching the cache.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.state != statePending {
		return ErrAlreadyCommitted
	}
	rc.queue = append(rc.queue, action)
	return nil
}

// Pending returns the number of queued actions.
func (rc *RequestContext) Pending() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.queue)
}

// funcAction adapts closures to domain.Action.
type funcAction struct {
	desc     string
	execute  func(ctx context.Context) error
	rollback func(ctx context.Context) error
}

// NewAction builds a domain.Action from closures. A nil rollback makes
// Rollback a no-op, which suits writes that the surrounding store
// transaction already undoes.
func NewAction(desc string, execute, rollback func(ctx context.Context) error) domain.Action {
	return &funcAction{desc: desc, execute: execute, rollback: rollback}
}

func (a *funcAction) Execute(ctx context.Context) error { return a.execute(ctx) }

func (a *funcAction) Rollback(ctx context.Context) error {
	if a.rollback == nil {
		return nil
	}
	return a.rollback(ctx)
}

func (a *funcAction) Description() string { return a.desc }
