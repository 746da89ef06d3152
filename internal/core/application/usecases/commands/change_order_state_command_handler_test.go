package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func shippedView() order.View {
	return order.View{
		ID:              "ord-1001",
		Version:         7,
		Status:          order.Shipped,
		IsApproved:      true,
		LegalNextStates: order.Shipped.NextStates(),
	}
}

func TestNewChangeOrderStateCommand(t *testing.T) {
	t.Run("valid_arguments", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStateCommand(shippedView(), order.Delivered)
		require.NoError(t, err)
		assert.Equal(t, "ord-1001", cmd.View().ID)
		assert.Equal(t, order.Delivered, cmd.Target())
		require.NoError(t, cmd.Validate())
	})

	t.Run("missing_view_id", func(t *testing.T) {
		_, err := commands.NewChangeOrderStateCommand(order.View{}, order.Delivered)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing_target", func(t *testing.T) {
		_, err := commands.NewChangeOrderStateCommand(shippedView(), "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.ChangeOrderStateCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStateCommandIsNotConstructed)
	})
}

func TestChangeOrderStateCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeOrderStateCommand(shippedView(), order.Delivered)

	gateway := new(MockOrderGateway)
	gateway.On("UpdateOrderState", ctx, "ord-1001", 7, order.Delivered).Return(nil).Once()

	h := commands.NewChangeOrderStateCommandHandler(gateway)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	gateway.AssertExpectations(t)
}

// TestChangeOrderStateCommandHandler_Handle_IllegalTarget verifies that
// targets outside the legal next set are refused for every current status
// without any backend call.
func TestChangeOrderStateCommandHandler_Handle_IllegalTarget(t *testing.T) {
	ctx := t.Context()
	gateway := new(MockOrderGateway)
	h := commands.NewChangeOrderStateCommandHandler(gateway)

	for _, status := range order.AllStatuses() {
		legal := make(map[order.Status]bool)
		for _, next := range status.NextStates() {
			legal[next] = true
		}

		view := shippedView()
		view.Status = status
		view.LegalNextStates = status.NextStates()

		for _, target := range order.AllStatuses() {
			if legal[target] {
				continue
			}

			cmd, err := commands.NewChangeOrderStateCommand(view, target)
			require.NoError(t, err)

			err = h.Handle(ctx, cmd)
			require.Error(t, err, "%s -> %s must be refused", status, target)
			assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		}
	}

	gateway.AssertNotCalled(t, "UpdateOrderState",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeOrderStateCommandHandler_Handle_UnapprovedOrder(t *testing.T) {
	ctx := t.Context()

	view := shippedView()
	view.IsApproved = false

	// Delivered is table-legal from Shipped; the closed approval gate must
	// still refuse it.
	cmd, _ := commands.NewChangeOrderStateCommand(view, order.Delivered)

	gateway := new(MockOrderGateway)
	h := commands.NewChangeOrderStateCommandHandler(gateway)

	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	gateway.AssertNotCalled(t, "UpdateOrderState",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeOrderStateCommandHandler_Handle_BackendRejection(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeOrderStateCommand(shippedView(), order.Delivered)

	gateway := new(MockOrderGateway)
	gateway.On("UpdateOrderState", ctx, "ord-1001", 7, order.Delivered).
		Return(errs.NewTransitionRejectedError("ord-1001", "Delivered")).Once()

	h := commands.NewChangeOrderStateCommandHandler(gateway)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTransitionRejected)
}

func TestChangeOrderStateCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeOrderStateCommand(shippedView(), order.Delivered)

	gateway := new(MockOrderGateway)
	gateway.On("UpdateOrderState", ctx, "ord-1001", 7, order.Delivered).
		Return(errs.NewVersionConflictError("ord-1001", 7)).Once()

	h := commands.NewChangeOrderStateCommandHandler(gateway)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVersionConflict)
}
