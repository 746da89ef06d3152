package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as reported by the
// backend. It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Open ──┬──> Confirmed ──┬──> Complete ──> Cancelled
//	       │                └──> Cancelled
//	       ├──> Complete
//	       └──> Cancelled
//	InProgress ──┬──> Shipped ──┬──> Delivered ──┬──> Complete
//	             └──> Cancelled └──> Returned    └──> Returned
//
// Open is the sole initial state for new orders; order construction is
// backend-owned and only observed here. Cancelled and Returned are terminal.
//
// Status is a value object that carries the backend's status tag verbatim,
// so an unrecognized tag is representable; it simply has no legal next
// states (fail-closed).
type Status string

const (
	// Open is the initial status of a newly placed order.
	Open Status = "Open"

	// Confirmed indicates the order has been accepted by the operator.
	Confirmed Status = "Confirmed"

	// InProgress indicates the order is being prepared for shipment.
	InProgress Status = "InProgress"

	// Shipped indicates the order has left the warehouse.
	Shipped Status = "Shipped"

	// Delivered indicates the carrier reported delivery to the customer.
	Delivered Status = "Delivered"

	// Complete indicates the order has been finalized.
	Complete Status = "Complete"

	// Cancelled indicates the order was cancelled. Terminal.
	Cancelled Status = "Cancelled"

	// Returned indicates the customer returned the shipment. Terminal.
	Returned Status = "Returned"
)

// transitions is the single source of truth for legal status transitions.
// A status missing from this map has no legal next states.
var transitions = map[Status][]Status{
	Open:       {Confirmed, Complete, Cancelled},
	Confirmed:  {Complete, Cancelled},
	InProgress: {Shipped, Cancelled},
	Shipped:    {Delivered, Returned},
	Delivered:  {Complete, Returned},
	Complete:   {Cancelled},
	Cancelled:  {},
	Returned:   {},
}

// AllStatuses returns every status the state machine knows about, in a
// stable display order.
func AllStatuses() []Status {
	return []Status{Open, Confirmed, InProgress, Shipped, Delivered, Complete, Cancelled, Returned}
}

// Validate checks if the Status value is one the state machine knows about.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is not part of the enumeration
//
// This method is used to ensure Status values from external sources are
// valid before use. Note that projection deliberately does not reject
// unknown tags; validation is for callers that need a known status, such as
// the listing filter.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the backend's tag for the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// NextStates returns the set of statuses legally reachable from s in one
// transition, in the table's order. The result is a copy; callers may
// modify it freely.
//
// The legal next set is a function of the status alone. The approval gate
// is a separate precondition, evaluated by services.TransitionGate, and
// never narrows this set.
//
// Unknown statuses yield an empty set, never nil panics: the table is
// fail-closed.
func (s Status) NextStates() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether target is a member of the legal next
// states for s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}
