package domain

import "context"

// Action is a single staged write with rollback capability. Application
// services queue actions on a unit of work and execute them together at
// commit time.
type Action interface {
	// Execute performs the write. The context carries cancellation and the
	// active store transaction, if any.
	Execute(ctx context.Context) error

	// Rollback reverses a previously successful Execute. It is only called
	// when a later action in the same commit fails.
	Rollback(ctx context.Context) error

	// Description returns a short label for logging (e.g., "save todo item 12").
	Description() string
}
