package vehicle

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a vehicle does not exist.
var ErrNotFound = errors.New("vehicle not found")

// Repository defines data access for vehicles.
type Repository interface {
	Create(ctx context.Context, v *Vehicle) error
	GetByID(ctx context.Context, id string) (*Vehicle, error)
	List(ctx context.Context) ([]*Vehicle, error)
	Update(ctx context.Context, v *Vehicle) error
	Delete(ctx context.Context, id string) error
}
