package commands

import (
	"context"

	"orderdesk/internal/core/ports"
)

// ApproveOrderCommandHandler submits order approvals to the backend.
//
// The approval response does not carry a fresh projection; on success the
// caller must re-fetch the order to obtain the refreshed view and version.
//
// Example:
//
//	handler := commands.NewApproveOrderCommandHandler(gateway)
//	cmd, _ := commands.NewApproveOrderCommand("ord-1001", 7)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrVersionConflict):
//	    // stale version; re-fetch and retry with the new one
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order id
//	case err != nil:
//	    // transport failure
//	}
type ApproveOrderCommandHandler struct {
	gateway ports.OrderGateway
}

// NewApproveOrderCommandHandler creates a handler for approval commands.
func NewApproveOrderCommandHandler(gateway ports.OrderGateway) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{gateway: gateway}
}

// Handle validates the command and submits the approval. Backend errors
// propagate unchanged; no retry is attempted here.
func (h ApproveOrderCommandHandler) Handle(ctx context.Context, command ApproveOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.gateway.ApproveOrder(ctx, command.OrderID(), command.Version())
}
