package commands

import (
	"context"

	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
)

// ChangeOrderStateCommandHandler orchestrates a status transition: the
// local transition gate first, then the backend submission.
//
// The gate check fails fast and cheaply without a network call; passing it
// is no guarantee of acceptance, since the backend re-validates every
// transition and may still answer with a version conflict or a rejection.
type ChangeOrderStateCommandHandler struct {
	gateway ports.OrderGateway
	gate    services.TransitionGate
}

// NewChangeOrderStateCommandHandler creates a handler for state-change
// commands.
func NewChangeOrderStateCommandHandler(gateway ports.OrderGateway) ChangeOrderStateCommandHandler {
	return ChangeOrderStateCommandHandler{
		gateway: gateway,
		gate:    services.NewTransitionGate(),
	}
}

// Handle validates the command, evaluates the transition gate and submits
// {orderId, version, targetStatus} to the backend.
//
// Returns:
//   - IllegalTransitionError when the gate refuses, with no backend call made
//   - ErrVersionConflict when the echoed version is stale
//   - ErrTransitionRejected when the backend refuses despite the local pass
//   - ErrTransportFailure on network/HTTP failure
//
// On success the caller must re-fetch the order; the handler neither
// patches the view nor assumes the response carries one.
func (h ChangeOrderStateCommandHandler) Handle(ctx context.Context, command ChangeOrderStateCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	view := command.View()
	if err := h.gate.Authorize(view, command.Target()); err != nil {
		return err
	}

	return h.gateway.UpdateOrderState(ctx, view.ID, view.Version, command.Target())
}
