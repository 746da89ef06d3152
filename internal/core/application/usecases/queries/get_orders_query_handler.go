package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// GetOrdersQueryHandler retrieves the store-scoped order listing and
// projects every record. The store key comes from the persisted session;
// listings are always scoped to the operator's store.
type GetOrdersQueryHandler struct {
	gateway  ports.OrderGateway
	sessions ports.SessionStore
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(gateway ports.OrderGateway, sessions ports.SessionStore) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{gateway: gateway, sessions: sessions}
}

// Handle loads the session's store key, fetches the listing and projects
// each record into a view. A missing session surfaces as ErrObjectNotFound
// from the store.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]order.View, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	session, err := h.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}

	records, err := h.gateway.ListOrders(ctx, session.StoreKey, query.StatusFilter())
	if err != nil {
		return nil, err
	}

	views := make([]order.View, 0, len(records))
	for _, raw := range records {
		views = append(views, order.BuildView(raw))
	}

	return views, nil
}
