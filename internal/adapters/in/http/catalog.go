package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"

	"github.com/labstack/echo/v4"
)

// CreateProduct handles POST /api/v1/products - adds a menu item.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request ProductRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoneyFromString(request.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(request.Name, request.Description, price, request.IsAvailable)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commandHandlers.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.ProductID().String()})
}

// UpdateProduct handles PUT /api/v1/products/:id - edits a menu item or
// toggles its availability.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var request ProductRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoneyFromString(request.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(productID, request.Name, request.Description, price, request.IsAvailable)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commandHandlers.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListProducts handles GET /api/v1/products - lists the menu sorted by name.
// Pass onlyAvailable=true to hide items the kitchen has stopped.
func (s *Server) ListProducts(ctx echo.Context) error {
	onlyAvailable, err := boolQueryParam(ctx, "onlyAvailable")
	if err != nil {
		return respondError(ctx, err)
	}

	query := queries.NewListProductsQuery(onlyAvailable != nil && *onlyAvailable)

	responses, err := s.queryHandlers.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productsFromResponses(responses))
}

// CreateStaff handles POST /api/v1/staff - registers a staff member.
func (s *Server) CreateStaff(ctx echo.Context) error {
	var request CreateStaffRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateStaffCommand(request.Name, request.Login, request.Password, staff.Role(request.Role))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commandHandlers.CreateStaff.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.StaffID().String()})
}

// ListStaff handles GET /api/v1/staff - lists the staff directory sorted by
// name with an optional role filter.
func (s *Server) ListStaff(ctx echo.Context) error {
	query, err := queries.NewListStaffQuery(ctx.QueryParam("role"))
	if err != nil {
		return respondError(ctx, err)
	}

	responses, err := s.queryHandlers.ListStaff.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, staffFromResponses(responses))
}
