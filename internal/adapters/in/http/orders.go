package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(request.Items))
	for _, item := range request.Items {
		productID, err := requestUUID("items.productId", item.ProductID)
		if err != nil {
			return respondError(ctx, err)
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(
		order.Type(request.Type),
		request.CustomerName,
		request.CustomerPhone,
		request.DeliveryAddress,
		request.Notes,
		order.PaymentMethod(request.PaymentMethod),
		lines,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commandHandlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.OrderID().String()})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order with
// its lines and delivery.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.queryHandlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(response))
}

// ListOrders handles GET /api/v1/orders - lists orders newest first with
// optional status, type and payment filters.
func (s *Server) ListOrders(ctx echo.Context) error {
	limit, err := intQueryParam(ctx, "limit")
	if err != nil {
		return respondError(ctx, err)
	}

	offset, err := intQueryParam(ctx, "offset")
	if err != nil {
		return respondError(ctx, err)
	}

	isPaid, err := boolQueryParam(ctx, "isPaid")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(
		ctx.QueryParam("status"),
		ctx.QueryParam("type"),
		isPaid,
		limit,
		offset,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	responses, err := s.queryHandlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummariesFromResponses(responses))
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - moves an order
// along its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var request ChangeStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Status(request.Status))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commandHandlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderPayment handles POST /api/v1/orders/:id/payment - records the
// payment state of an order.
func (s *Server) UpdateOrderPayment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdatePaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderPaymentCommand(orderID, request.IsPaid, order.PaymentMethod(request.PaymentMethod))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commandHandlers.UpdateOrderPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes a terminal order
// together with its delivery record.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commandHandlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
