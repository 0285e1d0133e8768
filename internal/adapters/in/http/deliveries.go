package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/delivery"

	"github.com/labstack/echo/v4"
)

// AssignDelivery handles POST /api/v1/deliveries - dispatches an order to a
// driver.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	var request AssignDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	orderID, err := requestUUID("orderId", request.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	driverID, err := requestUUID("driverId", request.DriverID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignDeliveryCommand(orderID, driverID, request.Address, request.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commandHandlers.AssignDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.DeliveryID().String()})
}

// ListDeliveries handles GET /api/v1/deliveries - lists the delivery board
// newest first with an optional status filter.
func (s *Server) ListDeliveries(ctx echo.Context) error {
	query, err := queries.NewListDeliveriesQuery(ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	responses, err := s.queryHandlers.ListDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryBoardFromResponses(responses))
}

// ChangeDeliveryStatus handles POST /api/v1/deliveries/:id/status - moves a
// delivery along its lifecycle and keeps the order in step.
func (s *Server) ChangeDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var request ChangeStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangeDeliveryStatusCommand(deliveryID, delivery.Status(request.Status))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commandHandlers.ChangeDeliveryStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReassignDriver handles POST /api/v1/deliveries/:id/driver - hands a
// delivery to a different driver.
func (s *Server) ReassignDriver(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var request ReassignDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	driverID, err := requestUUID("driverId", request.DriverID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReassignDeliveryDriverCommand(deliveryID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commandHandlers.ReassignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryDetails handles PUT /api/v1/deliveries/:id - corrects the
// address or notes of a delivery in flight.
func (s *Server) UpdateDeliveryDetails(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateDeliveryDetailsRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryDetailsCommand(deliveryID, request.Address, request.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commandHandlers.UpdateDeliveryDetails.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery handles DELETE /api/v1/deliveries/:id - cancels a delivery
// and returns the order to the kitchen-ready state.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commandHandlers.CancelDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
