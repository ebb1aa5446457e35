package supplier

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a supplier does not exist.
var ErrNotFound = errors.New("supplier not found")

// Repository defines data access for suppliers.
type Repository interface {
	Create(ctx context.Context, s *Supplier) error
	GetByID(ctx context.Context, id string) (*Supplier, error)
	List(ctx context.Context) ([]*Supplier, error)
	Update(ctx context.Context, s *Supplier) error
	Delete(ctx context.Context, id string) error
}
