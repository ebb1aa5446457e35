package part

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a part does not exist.
var ErrNotFound = errors.New("part not found")

// InsufficientStockError is returned when a guarded decrement would take a
// part's stock below zero.
type InsufficientStockError struct {
	Name      string
	Required  int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: required %d, available %d",
		e.Name, e.Required, e.Available)
}
