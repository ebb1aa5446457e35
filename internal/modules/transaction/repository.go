package transaction

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a transaction does not exist.
var ErrNotFound = errors.New("transaction not found")

// Repository defines data access for transactions.
type Repository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, t *Transaction) error

	// GetByID retrieves a transaction by UUID.
	GetByID(ctx context.Context, id string) (*Transaction, error)

	// GetByOrderID retrieves the transaction referencing a given order.
	GetByOrderID(ctx context.Context, orderID string) (*Transaction, error)

	// List returns all transactions, newest first.
	List(ctx context.Context) ([]*Transaction, error)

	// UpdateStatus overwrites a transaction's status.
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Delete removes a transaction.
	Delete(ctx context.Context, id string) error
}
