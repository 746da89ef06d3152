// Package queries contains read operations producing order views for the
// dashboard. Queries never mutate backend state; each handler fetches raw
// records through the order gateway and projects them with order.BuildView.
package queries

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its backend identifier and
// projects it into an order.View.
//
// Example:
//
//	query, err := queries.NewGetOrderQuery("ord-1001")
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order id
//	}
type GetOrderQuery struct {
	orderID string
	guard   guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order id.
// The id is the backend's opaque identifier and must not be empty.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	if orderID == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderID")
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() string {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}
