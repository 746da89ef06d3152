// Package http exposes the dashboard API over echo. Handlers translate
// HTTP requests into commands and queries and map the error taxonomy onto
// status codes; they hold no business rules of their own.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	approveOrderHandler     commands.ApproveOrderCommandHandler
	changeOrderStateHandler commands.ChangeOrderStateCommandHandler

	// Query handlers
	getOrderHandler  queries.GetOrderQueryHandler
	getOrdersHandler queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	approveOrderHandler commands.ApproveOrderCommandHandler,
	changeOrderStateHandler commands.ChangeOrderStateCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		approveOrderHandler:     approveOrderHandler,
		changeOrderStateHandler: changeOrderStateHandler,
		getOrderHandler:         getOrderHandler,
		getOrdersHandler:        getOrdersHandler,
	}
}

// RegisterRoutes mounts the dashboard API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/orders", s.GetOrders)
	e.GET("/api/v1/orders/:id", s.GetOrder)
	e.POST("/api/v1/orders/:id/approve", s.ApproveOrder)
	e.POST("/api/v1/orders/:id/state", s.ChangeOrderState)
}

// GetOrders handles GET /api/v1/orders - lists orders for the session's
// store, optionally filtered by ?status=.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(order.Status(ctx.QueryParam("status")))
	if err != nil {
		return errorJSON(ctx, err)
	}

	views, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]OrderResponse, len(views))
	for i, view := range views {
		response[i] = fromView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one projected order.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromView(view))
}

// ApproveOrder handles POST /api/v1/orders/:id/approve - sets the approval
// flag using the version token the operator last saw, then returns the
// re-fetched order so the caller picks up the bumped version.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	var request ApproveOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewApproveOrderCommand(ctx.Param("id"), request.Version)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return s.respondWithFreshOrder(ctx)
}

// ChangeOrderState handles POST /api/v1/orders/:id/state - submits a status
// transition. The current order is fetched so the transition gate evaluates
// against live status and approval, while the operator's version token is
// the one echoed to the backend for conflict detection.
func (s *Server) ChangeOrderState(ctx echo.Context) error {
	var request ChangeOrderStateRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	query, err := queries.NewGetOrderQuery(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}
	view.Version = request.Version

	cmd, err := commands.NewChangeOrderStateCommand(view, order.Status(request.Target))
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.changeOrderStateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return s.respondWithFreshOrder(ctx)
}

// respondWithFreshOrder re-fetches the order after a successful mutation.
// Mutations never patch a view locally; the backend's record is the only
// source of version and status.
func (s *Server) respondWithFreshOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromView(view))
}

// errorJSON maps the error taxonomy onto HTTP status codes and writes the
// JSON error envelope.
func errorJSON(ctx echo.Context, err error) error {
	return ctx.JSON(statusCodeFor(err), Error{
		Code:    statusCodeFor(err),
		Message: err.Error(),
	})
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrIllegalTransition), errors.Is(err, errs.ErrTransitionRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrTransportFailure):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
