package order

import "context"

// Repository defines data access for orders.
type Repository interface {
	// Create persists the order, its line items, and the order's pending
	// sale transaction atomically.
	Create(ctx context.Context, o *Order) error

	// GetByID retrieves an order with its items by UUID.
	GetByID(ctx context.Context, id string) (*Order, error)

	// List returns all orders, newest first.
	List(ctx context.Context) ([]*Order, error)

	// ListByCustomer returns all orders placed by a customer.
	ListByCustomer(ctx context.Context, customerID string) ([]*Order, error)

	// ApplyTransition applies a status transition and its side effects in a
	// single database transaction: the per-item stock adjustment, the
	// order's new status, and the linked transaction's new status. A stock
	// reduction aborts the whole transition with
	// *part.InsufficientStockError when any item's part holds fewer units
	// than required; nothing is mutated in that case. The transition also
	// aborts with ErrStatusChanged when the order's stored status no longer
	// matches o.Status, so effects are never applied from a stale read. An
	// order without a transaction row is tolerated.
	ApplyTransition(ctx context.Context, o *Order, newStatus OrderStatus, effect Effect) error

	// Delete removes the order record and its items. Stock and the linked
	// transaction are left untouched.
	Delete(ctx context.Context, id string) error
}
