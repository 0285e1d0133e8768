package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
)

// Error is the JSON payload returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is the JSON payload returned when a resource was created and the
// server knows its identifier.
type Created struct {
	ID string `json:"id"`
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	StaffID   string    `json:"staffId"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
}

type CreateOrderRequest struct {
	Type            string             `json:"type"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Notes           string             `json:"notes"`
	PaymentMethod   string             `json:"paymentMethod"`
	Items           []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

type UpdatePaymentRequest struct {
	IsPaid        bool   `json:"isPaid"`
	PaymentMethod string `json:"paymentMethod"`
}

type AssignDeliveryRequest struct {
	OrderID  string `json:"orderId"`
	DriverID string `json:"driverId"`
	Address  string `json:"address"`
	Notes    string `json:"notes"`
}

type ReassignDriverRequest struct {
	DriverID string `json:"driverId"`
}

type UpdateDeliveryDetailsRequest struct {
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	IsAvailable bool   `json:"isAvailable"`
}

type CreateStaffRequest struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Order is the full read model of a single order, including its lines and
// the attached delivery when one exists.
type Order struct {
	ID              string      `json:"id"`
	Type            string      `json:"type"`
	Status          string      `json:"status"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone,omitempty"`
	DeliveryAddress string      `json:"deliveryAddress,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	TotalPrice      string      `json:"totalPrice"`
	IsPaid          bool        `json:"isPaid"`
	PaymentMethod   string      `json:"paymentMethod"`
	Version         int         `json:"version"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	Items           []OrderItem `json:"items"`
	Delivery        *Delivery   `json:"delivery,omitempty"`
}

type OrderItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

type Delivery struct {
	ID           string     `json:"id"`
	DriverID     string     `json:"driverId"`
	Status       string     `json:"status"`
	Address      string     `json:"address"`
	Notes        string     `json:"notes,omitempty"`
	DispatchedAt *time.Time `json:"dispatchedAt,omitempty"`
	DeliveredAt  *time.Time `json:"deliveredAt,omitempty"`
}

// OrderSummary is one row of the order list.
type OrderSummary struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customerName"`
	TotalPrice    string    `json:"totalPrice"`
	IsPaid        bool      `json:"isPaid"`
	PaymentMethod string    `json:"paymentMethod"`
	ItemCount     int       `json:"itemCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DeliveryBoardEntry is one row of the dispatcher's delivery board.
type DeliveryBoardEntry struct {
	ID           string     `json:"id"`
	OrderID      string     `json:"orderId"`
	DriverID     string     `json:"driverId"`
	DriverName   string     `json:"driverName"`
	Status       string     `json:"status"`
	Address      string     `json:"address"`
	Notes        string     `json:"notes,omitempty"`
	DispatchedAt *time.Time `json:"dispatchedAt,omitempty"`
	DeliveredAt  *time.Time `json:"deliveredAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	IsAvailable bool      `json:"isAvailable"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type StaffMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Login     string    `json:"login"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func orderFromResponse(response queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, len(response.Items))
	for i, item := range response.Items {
		items[i] = OrderItem{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Quantity:  item.Quantity,
		}
	}

	var attached *Delivery
	if response.Delivery != nil {
		attached = &Delivery{
			ID:           response.Delivery.ID.String(),
			DriverID:     response.Delivery.DriverID.String(),
			Status:       response.Delivery.Status,
			Address:      response.Delivery.Address,
			Notes:        response.Delivery.Notes,
			DispatchedAt: response.Delivery.DispatchedAt,
			DeliveredAt:  response.Delivery.DeliveredAt,
		}
	}

	return Order{
		ID:              response.ID.String(),
		Type:            response.Type,
		Status:          response.Status,
		CustomerName:    response.CustomerName,
		CustomerPhone:   response.CustomerPhone,
		DeliveryAddress: response.DeliveryAddress,
		Notes:           response.Notes,
		TotalPrice:      response.TotalPrice.StringFixed(2),
		IsPaid:          response.IsPaid,
		PaymentMethod:   response.PaymentMethod,
		Version:         response.Version,
		CreatedAt:       response.CreatedAt,
		UpdatedAt:       response.UpdatedAt,
		Items:           items,
		Delivery:        attached,
	}
}

func orderSummariesFromResponses(responses []queries.ListOrdersQueryResponse) []OrderSummary {
	summaries := make([]OrderSummary, len(responses))
	for i, response := range responses {
		summaries[i] = OrderSummary{
			ID:            response.ID.String(),
			Type:          response.Type,
			Status:        response.Status,
			CustomerName:  response.CustomerName,
			TotalPrice:    response.TotalPrice.StringFixed(2),
			IsPaid:        response.IsPaid,
			PaymentMethod: response.PaymentMethod,
			ItemCount:     response.ItemCount,
			CreatedAt:     response.CreatedAt,
		}
	}
	return summaries
}

func deliveryBoardFromResponses(responses []queries.ListDeliveriesQueryResponse) []DeliveryBoardEntry {
	entries := make([]DeliveryBoardEntry, len(responses))
	for i, response := range responses {
		entries[i] = DeliveryBoardEntry{
			ID:           response.ID.String(),
			OrderID:      response.OrderID.String(),
			DriverID:     response.DriverID.String(),
			DriverName:   response.DriverName,
			Status:       response.Status,
			Address:      response.Address,
			Notes:        response.Notes,
			DispatchedAt: response.DispatchedAt,
			DeliveredAt:  response.DeliveredAt,
			CreatedAt:    response.CreatedAt,
		}
	}
	return entries
}

func productsFromResponses(responses []queries.ListProductsQueryResponse) []Product {
	products := make([]Product, len(responses))
	for i, response := range responses {
		products[i] = Product{
			ID:          response.ID.String(),
			Name:        response.Name,
			Description: response.Description,
			Price:       response.Price.StringFixed(2),
			IsAvailable: response.IsAvailable,
			UpdatedAt:   response.UpdatedAt,
		}
	}
	return products
}

func staffFromResponses(responses []queries.ListStaffQueryResponse) []StaffMember {
	members := make([]StaffMember, len(responses))
	for i, response := range responses {
		members[i] = StaffMember{
			ID:        response.ID.String(),
			Name:      response.Name,
			Login:     response.Login,
			Role:      response.Role,
			IsActive:  response.IsActive,
			CreatedAt: response.CreatedAt,
		}
	}
	return members
}
