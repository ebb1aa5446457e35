package supplier

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines supplier business logic.
type Service interface {
	CreateSupplier(ctx context.Context, req SaveSupplierRequest) (*Supplier, error)
	GetSupplier(ctx context.Context, id string) (*Supplier, error)
	ListSuppliers(ctx context.Context) ([]*Supplier, error)
	UpdateSupplier(ctx context.Context, id string, req SaveSupplierRequest) (*Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new supplier service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateSupplier(ctx context.Context, req SaveSupplierRequest) (*Supplier, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	sup := &Supplier{
		ID:      uuid.New(),
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Contact: req.Contact,
		Address: req.Address,
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *service) GetSupplier(ctx context.Context, id string) (*Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListSuppliers(ctx context.Context) ([]*Supplier, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateSupplier(ctx context.Context, id string, req SaveSupplierRequest) (*Supplier, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = req.Name
	existing.Company = req.Company
	existing.Email = req.Email
	existing.Contact = req.Contact
	existing.Address = req.Address
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *service) DeleteSupplier(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
