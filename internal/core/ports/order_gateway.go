// Package ports defines the interfaces the application core requires from
// its collaborators: the order-management backend transport and the session
// store. Adapters implement these; the core never imports an adapter.
package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// OrderGateway is the outbound port to the remote order-management backend.
//
// Every method is a single-flight request/response call: no implicit
// timeout, no automatic retry. Version conflicts and backend refusals are
// surfaced to the caller, who decides whether to re-fetch and retry with
// the fresh version.
//
// Implementations must map backend failures onto the errs taxonomy:
// ErrObjectNotFound for unknown ids, ErrVersionConflict for stale-version
// mutations, ErrTransitionRejected for refused state changes, and
// ErrTransportFailure for network or HTTP-level errors.
type OrderGateway interface {
	// GetOrder fetches a single order record by its opaque identifier.
	GetOrder(ctx context.Context, orderID string) (order.RawOrderRecord, error)

	// ListOrders fetches the order records for a store. An empty status
	// filter returns the store's default listing; a concrete status
	// restricts the listing to that status.
	ListOrders(ctx context.Context, storeKey string, statusFilter order.Status) ([]order.RawOrderRecord, error)

	// ApproveOrder requests the backend mark the order approved at the
	// given version. The response does not carry a fresh projection; the
	// caller re-fetches after success.
	ApproveOrder(ctx context.Context, orderID string, version int) error

	// UpdateOrderState submits a status transition at the given version.
	UpdateOrderState(ctx context.Context, orderID string, version int, target order.Status) error
}
