package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tmwansa/gearparts-backend/internal/modules/part"
)

// PartStore is the slice of the part repository the order engine needs.
type PartStore interface {
	GetByID(ctx context.Context, id string) (*part.Part, error)
}

// Service defines the order lifecycle business logic.
type Service interface {
	// PlaceOrder validates every item against the part catalogue and its
	// stock level before any mutation, then persists the order (Pending)
	// together with its pending sale transaction. Stock is only checked at
	// this point, never decremented.
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error)

	// GetOrder retrieves a full order with its items.
	GetOrder(ctx context.Context, id string) (*Order, error)

	// ListOrders returns all orders.
	ListOrders(ctx context.Context) ([]*Order, error)

	// ListCustomerOrders returns all orders placed by a customer.
	ListCustomerOrders(ctx context.Context, customerID string) ([]*Order, error)

	// UpdateStatus moves an order to a new status, cascading the stock and
	// transaction effects the transition carries.
	UpdateStatus(ctx context.Context, id string, req UpdateOrderRequest) (*Order, error)

	// DeleteOrder removes the order record only. Stock and the linked
	// transaction are deliberately left as they are.
	DeleteOrder(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	parts PartStore
}

// NewService creates a new order service.
func NewService(repo Repository, parts PartStore) Service {
	return &service{repo: repo, parts: parts}
}

func (s *service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrInvalidInput)
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid customer_id", ErrInvalidInput)
	}

	// The validation pass must complete for every item before anything is
	// persisted, so a failing item leaves no partial effects. Quantities are
	// accumulated per part, so several line items for the same part are
	// checked against its stock jointly, not each in isolation.
	var items []*OrderItem
	var total float64
	required := map[uuid.UUID]int{}
	for _, ci := range req.Items {
		if ci.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be greater than 0 for part %s", ErrInvalidInput, ci.PartID)
		}
		if ci.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative for part %s", ErrInvalidInput, ci.PartID)
		}
		p, err := s.parts.GetByID(ctx, ci.PartID)
		if err != nil {
			return nil, err
		}
		required[p.ID] += ci.Quantity
		if p.Stock < required[p.ID] {
			return nil, &part.InsufficientStockError{
				Name:      p.Name,
				Required:  required[p.ID],
				Available: p.Stock,
			}
		}

		total += ci.Price * float64(ci.Quantity)
		items = append(items, &OrderItem{
			ID:        uuid.New(),
			PartID:    p.ID,
			Quantity:  ci.Quantity,
			UnitPrice: ci.Price,
		})
	}

	o := &Order{
		ID:          uuid.New(),
		CustomerID:  customerID,
		Items:       items,
		TotalAmount: total,
		Status:      StatusPending,
	}
	for _, item := range o.Items {
		item.OrderID = o.ID
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.List(ctx)
}

func (s *service) ListCustomerOrders(ctx context.Context, customerID string) ([]*Order, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateOrderRequest) (*Order, error) {
	newStatus := OrderStatus(req.Status)
	if !validStatus(newStatus) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Same status: no stock effect, no transaction update.
	if o.Status == newStatus {
		return o, nil
	}

	effect, ok := resolveTransition(o.Status, newStatus)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if err := s.repo.ApplyTransition(ctx, o, newStatus, effect); err != nil {
		return nil, err
	}
	o.Status = newStatus
	return o, nil
}

func (s *service) DeleteOrder(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
