// Package commands contains business operations that mutate backend order
// state. All mutations carry the order's last fetched version for
// optimistic concurrency; the backend increments the version on every
// accepted mutation, and a stale version fails with a version conflict.
//
// Every command follows a consistent pattern: guarded construction,
// validation, local pre-checks, then a single gateway call. No command
// retries or patches local state; after a successful mutation the caller
// re-fetches the order to observe the authoritative result.
package commands

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand requests the backend mark an order as approved.
// Approval is one-way: once set it cannot be revoked through this
// interface, and it is the precondition for any status transition.
//
// Example:
//
//	cmd, err := commands.NewApproveOrderCommand(view.ID, view.Version)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrVersionConflict) {
//	    // someone mutated the order concurrently; re-fetch and retry
//	}
type ApproveOrderCommand struct {
	orderID string
	version int
	guard   guard.ConstructorGuard
}

// NewApproveOrderCommand creates an approval command for the given order at
// the given version. The version must be the one from the last fetched
// record, never a locally adjusted value.
func NewApproveOrderCommand(orderID string, version int) (ApproveOrderCommand, error) {
	if orderID == "" {
		return ApproveOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	if version < 0 {
		return ApproveOrderCommand{}, errs.NewValueIsInvalidError("version")
	}

	return ApproveOrderCommand{
		orderID: orderID,
		version: version,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order to approve.
func (c ApproveOrderCommand) OrderID() string {
	return c.orderID
}

// Version returns the concurrency token echoed to the backend.
func (c ApproveOrderCommand) Version() int {
	return c.version
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}
