// Package http exposes the restaurant administration API over REST.
// It translates echo requests into commands and queries, maps use case
// errors onto HTTP status codes and guards mutating routes with staff
// authentication.
package http

import (
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CommandHandlers bundles the write side use cases the server exposes.
type CommandHandlers struct {
	CreateOrder           commands.CreateOrderCommandHandler
	ChangeOrderStatus     commands.ChangeOrderStatusCommandHandler
	UpdateOrderPayment    commands.UpdateOrderPaymentCommandHandler
	DeleteOrder           commands.DeleteOrderCommandHandler
	AssignDelivery        commands.AssignDeliveryCommandHandler
	ChangeDeliveryStatus  commands.ChangeDeliveryStatusCommandHandler
	ReassignDriver        commands.ReassignDeliveryDriverCommandHandler
	CancelDelivery        commands.CancelDeliveryCommandHandler
	UpdateDeliveryDetails commands.UpdateDeliveryDetailsCommandHandler
	CreateProduct         commands.CreateProductCommandHandler
	UpdateProduct         commands.UpdateProductCommandHandler
	CreateStaff           commands.CreateStaffCommandHandler
}

// QueryHandlers bundles the read side use cases the server exposes.
type QueryHandlers struct {
	GetOrder        queries.GetOrderQueryHandler
	ListOrders      queries.ListOrdersQueryHandler
	ListDeliveries  queries.ListDeliveriesQueryHandler
	ListProducts    queries.ListProductsQueryHandler
	ListStaff       queries.ListStaffQueryHandler
	GetStaffByLogin queries.GetStaffByLoginQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commandHandlers CommandHandlers
	queryHandlers   QueryHandlers
	tokens          TokenIssuer
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, tokens TokenIssuer) *Server {
	return &Server{
		commandHandlers: commandHandlers,
		queryHandlers:   queryHandlers,
		tokens:          tokens,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance. Reads are open,
// mutations require an authenticated staff member, catalog and staff
// directory changes require a manager.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/login", s.Login)

	api := e.Group("/api/v1")

	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders", s.CreateOrder, s.requireStaff)
	api.POST("/orders/:id/status", s.ChangeOrderStatus, s.requireStaff)
	api.POST("/orders/:id/payment", s.UpdateOrderPayment, s.requireStaff)
	api.DELETE("/orders/:id", s.DeleteOrder, s.requireStaff)

	api.GET("/deliveries", s.ListDeliveries)
	api.POST("/deliveries", s.AssignDelivery, s.requireStaff)
	api.POST("/deliveries/:id/status", s.ChangeDeliveryStatus, s.requireStaff)
	api.POST("/deliveries/:id/driver", s.ReassignDriver, s.requireStaff)
	api.PUT("/deliveries/:id", s.UpdateDeliveryDetails, s.requireStaff)
	api.DELETE("/deliveries/:id", s.CancelDelivery, s.requireStaff)

	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct, s.requireManager)
	api.PUT("/products/:id", s.UpdateProduct, s.requireManager)

	api.GET("/staff", s.ListStaff)
	api.POST("/staff", s.CreateStaff, s.requireManager)
}
