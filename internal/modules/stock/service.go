package stock

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tmwansa/gearparts-backend/internal/modules/part"
)

// Item is the stock-level view of a part.
type Item struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Stock    int       `json:"stock"`
	Price    float64   `json:"price"`
	Category string    `json:"category,omitempty"`
}

// RestockRequest is the payload for adding stock to a part.
type RestockRequest struct {
	PartID   string `json:"part_id"`
	Quantity int    `json:"quantity"`
}

// SetStockRequest is the payload for overwriting a part's stock level.
type SetStockRequest struct {
	Stock int `json:"stock"`
}

// Ledger is the slice of the part repository the stock module needs.
type Ledger interface {
	GetByID(ctx context.Context, id string) (*part.Part, error)
	List(ctx context.Context, supplierID string) ([]*part.Part, error)
	SetStock(ctx context.Context, id string, stock int) error
	IncrementStock(ctx context.Context, id string, delta int) error
}

// Service defines stock-level business logic.
type Service interface {
	ListStock(ctx context.Context) ([]*Item, error)
	GetStock(ctx context.Context, partID string) (*Item, error)
	SetStock(ctx context.Context, partID string, req SetStockRequest) (*Item, error)
	Restock(ctx context.Context, req RestockRequest) (*Item, error)
}

type service struct {
	ledger Ledger
}

// NewService creates a new stock service over the part ledger.
func NewService(ledger Ledger) Service {
	return &service{ledger: ledger}
}

func (s *service) ListStock(ctx context.Context) ([]*Item, error) {
	parts, err := s.ledger.List(ctx, "")
	if err != nil {
		return nil, err
	}
	items := make([]*Item, 0, len(parts))
	for _, p := range parts {
		items = append(items, toItem(p))
	}
	return items, nil
}

func (s *service) GetStock(ctx context.Context, partID string) (*Item, error) {
	p, err := s.ledger.GetByID(ctx, partID)
	if err != nil {
		return nil, err
	}
	return toItem(p), nil
}

func (s *service) SetStock(ctx context.Context, partID string, req SetStockRequest) (*Item, error) {
	if req.Stock < 0 {
		return nil, fmt.Errorf("stock must not be negative")
	}
	if err := s.ledger.SetStock(ctx, partID, req.Stock); err != nil {
		return nil, err
	}
	return s.GetStock(ctx, partID)
}

func (s *service) Restock(ctx context.Context, req RestockRequest) (*Item, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be greater than 0")
	}
	if err := s.ledger.IncrementStock(ctx, req.PartID, req.Quantity); err != nil {
		return nil, err
	}
	return s.GetStock(ctx, req.PartID)
}

func toItem(p *part.Part) *Item {
	return &Item{
		ID:       p.ID,
		Name:     p.Name,
		Stock:    p.Stock,
		Price:    p.Price,
		Category: p.Category,
	}
}
