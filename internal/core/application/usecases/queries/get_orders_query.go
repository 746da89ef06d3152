package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the order listing for the active store, either
// unfiltered or restricted to one status.
//
// Example:
//
//	all, _ := queries.NewGetOrdersQuery("")
//	open, _ := queries.NewGetOrdersQuery(order.Open)
type GetOrdersQuery struct {
	statusFilter order.Status
	guard        guard.ConstructorGuard
}

// NewGetOrdersQuery creates a listing query. An empty statusFilter selects
// the store's default listing; a non-empty filter must be a known status.
func NewGetOrdersQuery(statusFilter order.Status) (GetOrdersQuery, error) {
	if statusFilter != "" {
		if err := statusFilter.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// StatusFilter returns the requested status filter; empty means all.
func (q GetOrdersQuery) StatusFilter() order.Status {
	return q.statusFilter
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}
