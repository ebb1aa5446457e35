package part

import "context"

// Repository defines data access for parts and their stock ledger.
type Repository interface {
	// Create persists a new part.
	Create(ctx context.Context, p *Part) error

	// GetByID retrieves a part by UUID.
	GetByID(ctx context.Context, id string) (*Part, error)

	// List returns all parts, optionally filtered by supplier.
	List(ctx context.Context, supplierID string) ([]*Part, error)

	// Update overwrites a part's catalogue fields and stock level.
	Update(ctx context.Context, p *Part) error

	// Delete removes a part.
	Delete(ctx context.Context, id string) error

	// SetStock overwrites a part's stock level.
	SetStock(ctx context.Context, id string, stock int) error

	// IncrementStock adds delta units to a part's stock.
	IncrementStock(ctx context.Context, id string, delta int) error

	// DecrementStock removes delta units from a part's stock. The decrement
	// is conditional: it is rejected with *InsufficientStockError when the
	// part holds fewer than delta units.
	DecrementStock(ctx context.Context, id string, delta int) error
}
