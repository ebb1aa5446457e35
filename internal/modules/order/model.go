package order

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusCompleted  OrderStatus = "Completed"
	StatusCancelled  OrderStatus = "Cancelled"
)

// Order is a customer's parts order. TotalAmount is fixed when the order is
// placed; status transitions never recompute it.
type Order struct {
	ID          uuid.UUID    `json:"id"`
	CustomerID  uuid.UUID    `json:"customer_id"`
	Items       []*OrderItem `json:"items"`
	TotalAmount float64      `json:"total_amount"`
	Status      OrderStatus  `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// OrderItem is a single line item within an order. It references a part but
// does not own it.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	PartID    uuid.UUID `json:"part_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
}

// CartItem describes one requested part when placing an order.
type CartItem struct {
	PartID   string  `json:"part_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// PlaceOrderRequest is the payload for creating a new order.
type PlaceOrderRequest struct {
	CustomerID string     `json:"customer_id"`
	Items      []CartItem `json:"items"`
}

// UpdateOrderRequest is the payload for moving an order to a new status.
type UpdateOrderRequest struct {
	Status string `json:"status"`
}
