package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Type classifies what a transaction records.
type Type string

const (
	TypeSale     Type = "Sale"
	TypePurchase Type = "Purchase"
	TypeExpense  Type = "Expense"
)

// Status is the financial outcome mirrored from the linked order, when one
// exists. Purchases and expenses recorded by hand carry it too.
type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Transaction is a single financial record, optionally tied to an order.
type Transaction struct {
	ID          uuid.UUID  `json:"id"`
	OrderID     *uuid.UUID `json:"order_id,omitempty"`
	Type        Type       `json:"type"`
	Amount      float64    `json:"amount"`
	Status      Status     `json:"status"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateTransactionRequest is the payload for recording a transaction by hand.
type CreateTransactionRequest struct {
	OrderID     string  `json:"order_id,omitempty"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// OverrideStatusRequest is the payload for the administrative status
// override. It is not coordinated with the order lifecycle.
type OverrideStatusRequest struct {
	Status string `json:"status"`
}
