package appctx

import "github.com/jsamuelsen11/go-todolist-service/internal/domain"

// Raise buffers e until Drain. Events raised after Commit has finished
// (successfully or not) are dropped, as are nil events.
func (rc *RequestContext) Raise(e domain.Event) {
	if e == nil {
		return
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.state != statePending {
		return
	}
	rc.events = append(rc.events, e)
}

// Drain hands out the buffered events in the order they were raised and
// empties the buffer. A second Drain returns nothing.
//
// Returns ErrNotCommitted unless Commit succeeded, so events from a failed
// or abandoned use case can never escape.
func (rc *RequestContext) Drain() ([]domain.Event, error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.state != stateCommitted {
		return nil, ErrNotCommitted
	}
	out := rc.events
	rc.events = nil
	return out, nil
}

// Buffered returns the number of events waiting to be drained.
func (rc *RequestContext) Buffered() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.events)
}

func (rc *RequestContext) discardEvents() {
	rc.mu.Lock()
	rc.events = nil
	rc.mu.Unlock()
}
