package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// GetOrderQueryHandler fetches one order from the backend and builds its
// canonical view. The view is rebuilt on every fetch; nothing is cached, so
// the returned version is always the backend's current one.
type GetOrderQueryHandler struct {
	gateway ports.OrderGateway
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(gateway ports.OrderGateway) GetOrderQueryHandler {
	return GetOrderQueryHandler{gateway: gateway}
}

// Handle fetches the raw record and projects it.
// Backend errors (ErrObjectNotFound, ErrTransportFailure) propagate
// unchanged.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.View, error) {
	if err := query.Validate(); err != nil {
		return order.View{}, err
	}

	raw, err := h.gateway.GetOrder(ctx, query.OrderID())
	if err != nil {
		return order.View{}, err
	}

	return order.BuildView(raw), nil
}
