package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrChangeOrderStateCommandIsNotConstructed = errors.New(
	"ChangeOrderStateCommand must be created via NewChangeOrderStateCommand constructor",
)

// ChangeOrderStateCommand submits a status transition for an order. It
// carries the full view the operator is looking at, so the handler can
// evaluate the transition gate locally before any network call.
//
// Example:
//
//	cmd, err := commands.NewChangeOrderStateCommand(view, order.Delivered)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type ChangeOrderStateCommand struct {
	view   order.View
	target order.Status
	guard  guard.ConstructorGuard
}

// NewChangeOrderStateCommand creates a state-change command from the
// currently displayed view and the desired target status. The target only
// needs to be non-empty here; whether it is reachable is the transition
// gate's decision at handling time.
func NewChangeOrderStateCommand(view order.View, target order.Status) (ChangeOrderStateCommand, error) {
	if view.ID == "" {
		return ChangeOrderStateCommand{}, errs.NewValueIsRequiredError("view.ID")
	}
	if target == "" {
		return ChangeOrderStateCommand{}, errs.NewValueIsRequiredError("target")
	}

	return ChangeOrderStateCommand{
		view:   view,
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// View returns the order view the transition was requested against.
func (c ChangeOrderStateCommand) View() order.View {
	return c.view
}

// Target returns the desired next status.
func (c ChangeOrderStateCommand) Target() order.Status {
	return c.target
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStateCommandIsNotConstructed)
}
