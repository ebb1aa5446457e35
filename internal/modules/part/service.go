package part

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines catalogue business logic for parts.
type Service interface {
	CreatePart(ctx context.Context, req SavePartRequest) (*Part, error)
	GetPart(ctx context.Context, id string) (*Part, error)
	ListParts(ctx context.Context, supplierID string) ([]*Part, error)
	UpdatePart(ctx context.Context, id string, req SavePartRequest) (*Part, error)
	DeletePart(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new part service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePart(ctx context.Context, req SavePartRequest) (*Part, error) {
	p, err := buildPart(uuid.New(), req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetPart(ctx context.Context, id string) (*Part, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListParts(ctx context.Context, supplierID string) ([]*Part, error) {
	return s.repo.List(ctx, supplierID)
}

func (s *service) UpdatePart(ctx context.Context, id string, req SavePartRequest) (*Part, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := buildPart(existing.ID, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) DeletePart(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func buildPart(id uuid.UUID, req SavePartRequest) (*Part, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("stock must not be negative")
	}

	p := &Part{
		ID:       id,
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Stock:    req.Stock,
	}
	if req.SupplierID != "" {
		sid, err := uuid.Parse(req.SupplierID)
		if err != nil {
			return nil, fmt.Errorf("invalid supplier_id: %w", err)
		}
		p.SupplierID = &sid
	}
	for _, v := range req.CompatibleVehicles {
		vid, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("invalid compatible vehicle id %q: %w", v, err)
		}
		p.CompatibleVehicles = append(p.CompatibleVehicles, vid)
	}
	return p, nil
}
