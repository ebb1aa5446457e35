package order

import "errors"

var (
	// ErrNotFound is returned when an order does not exist.
	ErrNotFound = errors.New("order not found")

	// ErrInvalidStatus is returned when a requested status is not one of
	// Pending, Processing, Completed, Cancelled.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrInvalidInput marks malformed create payloads: missing items, bad
	// ids, non-positive quantities, negative prices.
	ErrInvalidInput = errors.New("invalid order payload")

	// ErrStatusChanged is returned when the order's status moved between the
	// read that resolved a transition and the transaction applying it.
	ErrStatusChanged = errors.New("order status changed")
)
