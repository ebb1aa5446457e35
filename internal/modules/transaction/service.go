package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines transaction business logic.
type Service interface {
	// RecordTransaction creates a standalone transaction (a purchase or an
	// expense, typically). Sale transactions linked to orders are created by
	// the order engine, not here.
	RecordTransaction(ctx context.Context, req CreateTransactionRequest) (*Transaction, error)

	GetTransaction(ctx context.Context, id string) (*Transaction, error)
	GetOrderTransaction(ctx context.Context, orderID string) (*Transaction, error)
	ListTransactions(ctx context.Context) ([]*Transaction, error)

	// OverrideStatus is the administrative status override. It writes the
	// status directly, without consulting the linked order.
	OverrideStatus(ctx context.Context, id string, req OverrideStatusRequest) (*Transaction, error)

	DeleteTransaction(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new transaction service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) RecordTransaction(ctx context.Context, req CreateTransactionRequest) (*Transaction, error) {
	txType := Type(req.Type)
	switch txType {
	case TypeSale, TypePurchase, TypeExpense:
	default:
		return nil, fmt.Errorf("invalid transaction type %q", req.Type)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than 0")
	}

	t := &Transaction{
		ID:          uuid.New(),
		Type:        txType,
		Amount:      req.Amount,
		Status:      StatusPending,
		Description: req.Description,
	}
	if req.OrderID != "" {
		oid, err := uuid.Parse(req.OrderID)
		if err != nil {
			return nil, fmt.Errorf("invalid order_id: %w", err)
		}
		t.OrderID = &oid
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetOrderTransaction(ctx context.Context, orderID string) (*Transaction, error) {
	return s.repo.GetByOrderID(ctx, orderID)
}

func (s *service) ListTransactions(ctx context.Context) ([]*Transaction, error) {
	return s.repo.List(ctx)
}

func (s *service) OverrideStatus(ctx context.Context, id string, req OverrideStatusRequest) (*Transaction, error) {
	status := Status(req.Status)
	switch status {
	case StatusPending, StatusSuccess, StatusFailed:
	default:
		return nil, fmt.Errorf("invalid transaction status %q", req.Status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) DeleteTransaction(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
