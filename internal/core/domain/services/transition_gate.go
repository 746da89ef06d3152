package services

import (
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// ErrApprovalGateClosed is the cause attached when a transition is refused
// because the order has not been approved yet.
var ErrApprovalGateClosed = errors.New("order is not approved")

// TransitionGate is the domain service that decides whether a status
// transition may be submitted to the backend. It is the single source of
// truth for the rule: the order must be approved AND the target must be a
// member of the legal next states of the current status. UI-level disabling
// of transition controls is a convenience on top of this gate, never a
// substitute for it.
//
// The gate is a local, deterministic pre-check; the backend independently
// validates every submitted transition and remains the final authority.
//
// Example:
//
//	gate := services.NewTransitionGate()
//	if err := gate.Authorize(view, order.Delivered); err != nil {
//	    // errors.Is(err, errs.ErrIllegalTransition)
//	    return err
//	}
//	// safe to submit {orderId, version, target} to the backend
type TransitionGate struct{}

// NewTransitionGate creates a new TransitionGate instance.
func NewTransitionGate() TransitionGate {
	return TransitionGate{}
}

// Authorize checks both transition preconditions against the given view.
//
// Returns:
//   - nil when the transition may be submitted
//   - IllegalTransitionError when the approval gate is closed, regardless
//     of the target's validity
//   - IllegalTransitionError when the target is not reachable from the
//     current status, including any unknown status (fail-closed)
//
// Authorize performs no I/O; a refusal here costs no backend round trip.
func (TransitionGate) Authorize(view order.View, target order.Status) error {
	if !view.IsApproved {
		return errs.NewIllegalTransitionErrorWithCause(
			view.Status.String(), target.String(), ErrApprovalGateClosed,
		)
	}

	if !view.Status.CanTransitionTo(target) {
		return errs.NewIllegalTransitionError(view.Status.String(), target.String())
	}

	return nil
}
