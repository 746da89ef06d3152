package queries_test

import (
	"context"
	"testing"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderGateway struct{ mock.Mock }

func (m *MockOrderGateway) GetOrder(ctx context.Context, orderID string) (order.RawOrderRecord, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(order.RawOrderRecord), args.Error(1)
}

func (m *MockOrderGateway) ListOrders(
	ctx context.Context, storeKey string, statusFilter order.Status,
) ([]order.RawOrderRecord, error) {
	args := m.Called(ctx, storeKey, statusFilter)
	return args.Get(0).([]order.RawOrderRecord), args.Error(1)
}

func (m *MockOrderGateway) ApproveOrder(ctx context.Context, orderID string, version int) error {
	args := m.Called(ctx, orderID, version)
	return args.Error(0)
}

func (m *MockOrderGateway) UpdateOrderState(
	ctx context.Context, orderID string, version int, target order.Status,
) error {
	args := m.Called(ctx, orderID, version, target)
	return args.Error(0)
}

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Load(ctx context.Context) (ports.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.Session), args.Error(1)
}

func (m *MockSessionStore) Save(ctx context.Context, session ports.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func rawShippedOrder(id string, version int) order.RawOrderRecord {
	return order.RawOrderRecord{
		ID:         id,
		Version:    version,
		OrderState: "Shipped",
		TotalPrice: order.RawMoney{CentAmount: 12345, CurrencyCode: "EUR"},
		Custom:     &order.RawCustom{Fields: order.RawCustomFields{IsApproved: true}},
	}
}

func TestGetOrderQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewGetOrderQuery("ord-1001")

	gateway := new(MockOrderGateway)
	gateway.On("GetOrder", ctx, "ord-1001").Return(rawShippedOrder("ord-1001", 7), nil).Once()

	h := queries.NewGetOrderQueryHandler(gateway)
	view, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, "ord-1001", view.ID)
	assert.Equal(t, 7, view.Version)
	assert.Equal(t, order.Shipped, view.Status)
	assert.True(t, view.IsApproved)
	assert.InDelta(t, 123.45, view.GrandTotal.Float64(), 0.01)
	assert.Equal(t, []order.Status{order.Delivered, order.Returned}, view.LegalNextStates)
	gateway.AssertExpectations(t)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewGetOrderQuery("missing")

	gateway := new(MockOrderGateway)
	gateway.On("GetOrder", ctx, "missing").
		Return(order.RawOrderRecord{}, errs.NewObjectNotFoundError("orderId", "missing")).Once()

	h := queries.NewGetOrderQueryHandler(gateway)
	_, err := h.Handle(ctx, query)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	gateway.AssertExpectations(t)
}

func TestGetOrderQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	gateway := new(MockOrderGateway)

	h := queries.NewGetOrderQueryHandler(gateway)
	_, err := h.Handle(ctx, queries.GetOrderQuery{}) // not constructed properly

	require.Error(t, err)
	gateway.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
}

func TestGetOrdersQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewGetOrdersQuery(order.Open)

	sessions := new(MockSessionStore)
	sessions.On("Load", ctx).Return(ports.Session{StoreKey: "store-7"}, nil).Once()

	gateway := new(MockOrderGateway)
	gateway.On("ListOrders", ctx, "store-7", order.Open).
		Return([]order.RawOrderRecord{
			rawShippedOrder("ord-1", 1),
			rawShippedOrder("ord-2", 4),
		}, nil).Once()

	h := queries.NewGetOrdersQueryHandler(gateway, sessions)
	views, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "ord-1", views[0].ID)
	assert.Equal(t, "ord-2", views[1].ID)
	gateway.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestGetOrdersQueryHandler_Handle_EmptyListing(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewGetOrdersQuery("")

	sessions := new(MockSessionStore)
	sessions.On("Load", ctx).Return(ports.Session{StoreKey: "store-7"}, nil).Once()

	gateway := new(MockOrderGateway)
	gateway.On("ListOrders", ctx, "store-7", order.Status("")).
		Return([]order.RawOrderRecord{}, nil).Once()

	h := queries.NewGetOrdersQueryHandler(gateway, sessions)
	views, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestGetOrdersQueryHandler_Handle_NoSession(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewGetOrdersQuery("")

	sessions := new(MockSessionStore)
	sessions.On("Load", ctx).
		Return(ports.Session{}, errs.NewObjectNotFoundError("session", "active")).Once()

	gateway := new(MockOrderGateway)

	h := queries.NewGetOrdersQueryHandler(gateway, sessions)
	_, err := h.Handle(ctx, query)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	gateway.AssertNotCalled(t, "ListOrders", mock.Anything, mock.Anything, mock.Anything)
}
