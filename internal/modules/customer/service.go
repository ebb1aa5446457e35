package customer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines customer business logic.
type Service interface {
	CreateCustomer(ctx context.Context, req SaveCustomerRequest) (*Customer, error)
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	ListCustomers(ctx context.Context) ([]*Customer, error)
	UpdateCustomer(ctx context.Context, id string, req SaveCustomerRequest) (*Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new customer service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateCustomer(ctx context.Context, req SaveCustomerRequest) (*Customer, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	c := &Customer{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListCustomers(ctx context.Context) ([]*Customer, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateCustomer(ctx context.Context, id string, req SaveCustomerRequest) (*Customer, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *service) DeleteCustomer(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
