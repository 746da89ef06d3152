package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/order"
)

var (
	// ErrNoPendingTransition is returned by Confirm when no transition was
	// begun, or when the previous one was already confirmed or cancelled.
	ErrNoPendingTransition = errors.New("no pending transition to confirm")

	// ErrTransitionAlreadyPending is returned by Begin when an intended
	// target was recorded and neither confirmed nor cancelled yet.
	ErrTransitionAlreadyPending = errors.New("a transition is already pending confirmation")
)

// TransitionSession implements the deliberate two-step confirmation for
// status changes: Begin records the intended target, Confirm actually
// submits it, Cancel discards it without any backend call. Status changes
// are externally visible and not trivially reversible, so the two steps
// must not be collapsed into one.
//
// A session is bound to the order view it was created with and holds no
// other state. It is meant for a single logical order session and is not
// safe for concurrent use; concurrent operators racing on the same order
// are arbitrated by the backend's version check, not locally.
//
// Example:
//
//	session := commands.NewTransitionSession(view, handler)
//	if err := session.Begin(order.Delivered); err != nil {
//	    return err
//	}
//	// ... operator confirms in the UI ...
//	if err := session.Confirm(ctx); err != nil {
//	    return err
//	}
//	// success: re-fetch the order to observe the new status and version
type TransitionSession struct {
	view    order.View
	handler ChangeOrderStateCommandHandler
	pending *order.Status
}

// NewTransitionSession creates a session for the given fetched view.
func NewTransitionSession(view order.View, handler ChangeOrderStateCommandHandler) *TransitionSession {
	return &TransitionSession{view: view, handler: handler}
}

// Begin records the intended target status. It performs no backend call
// and no legality check; an illegal target surfaces at Confirm, where the
// transition gate runs. Beginning twice without confirming or cancelling
// is an error.
func (s *TransitionSession) Begin(target order.Status) error {
	if s.pending != nil {
		return ErrTransitionAlreadyPending
	}

	t := target
	s.pending = &t
	return nil
}

// Pending returns the recorded target, or empty when none is pending.
func (s *TransitionSession) Pending() order.Status {
	if s.pending == nil {
		return ""
	}
	return *s.pending
}

// Confirm submits the pending transition through the state-change handler.
// The pending intent is cleared whether or not the backend accepts: a
// failed confirmation leaves the displayed view untouched, and the operator
// starts over from Begin after re-fetching.
func (s *TransitionSession) Confirm(ctx context.Context) error {
	if s.pending == nil {
		return ErrNoPendingTransition
	}

	target := *s.pending
	s.pending = nil

	command, err := NewChangeOrderStateCommand(s.view, target)
	if err != nil {
		return err
	}

	return s.handler.Handle(ctx, command)
}

// Cancel discards the pending intent. No backend call is made and the
// session can begin a new transition afterwards. Cancelling with nothing
// pending is a no-op.
func (s *TransitionSession) Cancel() {
	s.pending = nil
}
