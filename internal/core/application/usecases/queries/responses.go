// Package queries contains the read side of the order lifecycle service.
// Query handlers bypass the aggregate and read straight from the database
// with raw SQL, returning flat response structs shaped for the REST
// boundary. All list queries paginate and sort newest first.
package queries

import (
	"time"
)

// OrderItemResponse is one line item of an order detail response.
type OrderItemResponse struct {
	MenuItemID     string
	Name           string
	Quantity       int
	UnitPrice      int64
	Subtotal       int64
	Customizations []string
}

// OrderResponse is the full order detail returned by GetOrder and, without
// items, by the list queries. Money fields are minor currency units.
type OrderResponse struct {
	ID              string
	OrderNumber     string
	Status          string
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	TotalAmount     int64
	PaymentMethod   string
	PaymentStatus   string
	DriverID        *string
	DriverPhone     *string
	EstimatedTime   *int
	RejectionReason string
	CreatedAt       time.Time
	AcceptedAt      *time.Time
	ReadyAt         *time.Time
	DeliveredAt     *time.Time
	Items           []OrderItemResponse
}

// PagedOrdersResponse is a single page of list results.
type PagedOrdersResponse struct {
	Orders     []OrderResponse
	Page       int
	PageSize   int
	TotalCount int64
	HasMore    bool
}
