package vehicle

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines vehicle business logic.
type Service interface {
	CreateVehicle(ctx context.Context, req SaveVehicleRequest) (*Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*Vehicle, error)
	ListVehicles(ctx context.Context) ([]*Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, req SaveVehicleRequest) (*Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new vehicle service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateVehicle(ctx context.Context, req SaveVehicleRequest) (*Vehicle, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	v := &Vehicle{
		ID:           uuid.New(),
		Name:         req.Name,
		Model:        req.Model,
		Type:         req.Type,
		EngineNumber: req.EngineNumber,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) GetVehicle(ctx context.Context, id string) (*Vehicle, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListVehicles(ctx context.Context) ([]*Vehicle, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateVehicle(ctx context.Context, id string, req SaveVehicleRequest) (*Vehicle, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = req.Name
	existing.Model = req.Model
	existing.Type = req.Type
	existing.EngineNumber = req.EngineNumber
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *service) DeleteVehicle(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
