package order

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmwansa/gearparts-backend/internal/modules/part"
	"github.com/tmwansa/gearparts-backend/internal/modules/transaction"
)

// ── in-memory fakes ───────────────────────────────────────────────────────────

type memParts struct {
	parts map[uuid.UUID]*part.Part
}

func (m *memParts) GetByID(ctx context.Context, id string) (*part.Part, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, part.ErrNotFound
	}
	p, ok := m.parts[uid]
	if !ok {
		return nil, part.ErrNotFound
	}
	return p, nil
}

type memOrders struct {
	parts      *memParts
	orders     map[uuid.UUID]*Order
	txns       map[uuid.UUID]transaction.Status
	txnUpdates int
}

func (m *memOrders) Create(ctx context.Context, o *Order) error {
	m.orders[o.ID] = o
	m.txns[o.ID] = transaction.StatusPending
	return nil
}

func (m *memOrders) GetByID(ctx context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	o, ok := m.orders[uid]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *memOrders) List(ctx context.Context) ([]*Order, error) {
	var out []*Order
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, nil
}

func (m *memOrders) ListByCustomer(ctx context.Context, customerID string) ([]*Order, error) {
	var out []*Order
	for _, o := range m.orders {
		if o.CustomerID.String() == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

// ApplyTransition mirrors the postgres implementation: the stored status
// must still match the caller's read, duplicate line items for one part are
// checked against its stock jointly, and the whole transition either applies
// or leaves every entity untouched.
func (m *memOrders) ApplyTransition(ctx context.Context, o *Order, newStatus OrderStatus, effect Effect) error {
	stored, ok := m.orders[o.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Status != o.Status {
		return fmt.Errorf("%w: order is now %s", ErrStatusChanged, stored.Status)
	}

	switch effect.Stock {
	case StockReduce:
		required := map[uuid.UUID]int{}
		for _, item := range o.Items {
			p, ok := m.parts.parts[item.PartID]
			if !ok {
				return part.ErrNotFound
			}
			required[item.PartID] += item.Quantity
			if p.Stock < required[item.PartID] {
				return &part.InsufficientStockError{
					Name:      p.Name,
					Required:  required[item.PartID],
					Available: p.Stock,
				}
			}
		}
		for _, item := range o.Items {
			m.parts.parts[item.PartID].Stock -= item.Quantity
		}
	case StockRestore:
		for _, item := range o.Items {
			m.parts.parts[item.PartID].Stock += item.Quantity
		}
	}

	m.orders[o.ID].Status = newStatus
	if _, ok := m.txns[o.ID]; ok {
		m.txns[o.ID] = effect.Txn
		m.txnUpdates++
	}
	return nil
}

func (m *memOrders) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	if _, ok := m.orders[uid]; !ok {
		return ErrNotFound
	}
	delete(m.orders, uid)
	return nil
}

// ── fixture ───────────────────────────────────────────────────────────────────

type fixture struct {
	repo   *memOrders
	svc    Service
	partA  *part.Part
	partB  *part.Part
	custID uuid.UUID
}

func newFixture() *fixture {
	partA := &part.Part{ID: uuid.New(), Name: "Brake Pad", Price: 25, Stock: 5}
	partB := &part.Part{ID: uuid.New(), Name: "Oil Filter", Price: 8, Stock: 10}
	parts := &memParts{parts: map[uuid.UUID]*part.Part{
		partA.ID: partA,
		partB.ID: partB,
	}}
	repo := &memOrders{
		parts:  parts,
		orders: map[uuid.UUID]*Order{},
		txns:   map[uuid.UUID]transaction.Status{},
	}
	return &fixture{
		repo:   repo,
		svc:    NewService(repo, parts),
		partA:  partA,
		partB:  partB,
		custID: uuid.New(),
	}
}

func (f *fixture) place(t *testing.T, items ...CartItem) *Order {
	t.Helper()
	o, err := f.svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		CustomerID: f.custID.String(),
		Items:      items,
	})
	require.NoError(t, err)
	return o
}

func (f *fixture) move(t *testing.T, id string, status OrderStatus) *Order {
	t.Helper()
	o, err := f.svc.UpdateStatus(context.Background(), id, UpdateOrderRequest{Status: string(status)})
	require.NoError(t, err)
	return o
}

// ── PlaceOrder ────────────────────────────────────────────────────────────────

func TestPlaceOrder_CreatesPendingOrderWithoutTouchingStock(t *testing.T) {
	f := newFixture()

	o := f.place(t,
		CartItem{PartID: f.partA.ID.String(), Quantity: 2, Price: 25},
		CartItem{PartID: f.partB.ID.String(), Quantity: 1, Price: 8},
	)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, 58.0, o.TotalAmount)
	assert.Len(t, o.Items, 2)
	assert.Equal(t, transaction.StatusPending, f.repo.txns[o.ID])

	// Stock is validated at creation, never decremented.
	assert.Equal(t, 5, f.partA.Stock)
	assert.Equal(t, 10, f.partB.Stock)
}

func TestPlaceOrder_InsufficientStockLeavesEverythingUnchanged(t *testing.T) {
	f := newFixture()

	_, err := f.svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		CustomerID: f.custID.String(),
		Items:      []CartItem{{PartID: f.partA.ID.String(), Quantity: 6, Price: 25}},
	})

	var stockErr *part.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Brake Pad", stockErr.Name)
	assert.Equal(t, 6, stockErr.Required)
	assert.Equal(t, 5, stockErr.Available)

	assert.Empty(t, f.repo.orders)
	assert.Empty(t, f.repo.txns)
	assert.Equal(t, 5, f.partA.Stock)
}

func TestPlaceOrder_CombinedQuantityAcrossLineItemsExceedsStock(t *testing.T) {
	f := newFixture()

	// 3 + 3 of the same part against a stock of 5: each line fits on its
	// own, the order as a whole does not.
	_, err := f.svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		CustomerID: f.custID.String(),
		Items: []CartItem{
			{PartID: f.partA.ID.String(), Quantity: 3, Price: 25},
			{PartID: f.partA.ID.String(), Quantity: 3, Price: 25},
		},
	})

	var stockErr *part.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 6, stockErr.Required)
	assert.Equal(t, 5, stockErr.Available)
	assert.Empty(t, f.repo.orders)
	assert.Equal(t, 5, f.partA.Stock)
}

func TestPlaceOrder_AcceptsDuplicatePartWithinStock(t *testing.T) {
	f := newFixture()

	o := f.place(t,
		CartItem{PartID: f.partA.ID.String(), Quantity: 2, Price: 25},
		CartItem{PartID: f.partA.ID.String(), Quantity: 2, Price: 25},
	)

	assert.Equal(t, StatusPending, o.Status)
	assert.Len(t, o.Items, 2)
	assert.Equal(t, 100.0, o.TotalAmount)
}

func TestPlaceOrder_UnknownPart(t *testing.T) {
	f := newFixture()

	_, err := f.svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		CustomerID: f.custID.String(),
		Items:      []CartItem{{PartID: uuid.New().String(), Quantity: 1, Price: 10}},
	})

	assert.ErrorIs(t, err, part.ErrNotFound)
	assert.Empty(t, f.repo.orders)
}

func TestPlaceOrder_RejectsInvalidPayloads(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	tests := []struct {
		name string
		req  PlaceOrderRequest
	}{
		{"no items", PlaceOrderRequest{CustomerID: f.custID.String()}},
		{"bad customer id", PlaceOrderRequest{
			CustomerID: "not-a-uuid",
			Items:      []CartItem{{PartID: f.partA.ID.String(), Quantity: 1, Price: 25}},
		}},
		{"zero quantity", PlaceOrderRequest{
			CustomerID: f.custID.String(),
			Items:      []CartItem{{PartID: f.partA.ID.String(), Quantity: 0, Price: 25}},
		}},
		{"negative price", PlaceOrderRequest{
			CustomerID: f.custID.String(),
			Items:      []CartItem{{PartID: f.partA.ID.String(), Quantity: 1, Price: -1}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.PlaceOrder(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Empty(t, f.repo.orders)
}

// ── UpdateStatus ──────────────────────────────────────────────────────────────

func TestUpdateStatus_CompletingReducesStockAndSettlesTransaction(t *testing.T) {
	f := newFixture()
	o := f.place(t, CartItem{PartID: f.partA.ID.String(), Quantity: 2, Price: 25})

	updated := f.move(t, o.ID.String(), StatusCompleted)

	assert.Equal(t, StatusCompleted, updated.Status)
	assert.Equal(t, 3, f.partA.Stock)
	assert.Equal(t, transaction.StatusSuccess, f.repo.txns[o.ID])
	// Total amount is fixed at creation.
	assert.Equal(t, 50.0, f.repo.orders[o.ID].TotalAmount)
}

func TestUpdateStatus_CancellingCompletedOrderRestoresStock(t *testing.T) {
	f := newFixture()
	o := f.place(t, CartItem{PartID: f.partA.ID.String(), Quantity: 2, Price: 25})
	f.move(t, o.ID.String(), StatusCompleted)
	require.Equal(t, 3, f.partA.Stock)

	f.move(t, o.ID.String(), StatusCancelled)

	assert.Equal(t, 5, f.partA.Stock)
	assert.Equal(t, transaction.StatusFailed, f.repo.txns[o.ID])
}

func TestUpdateStatus_RecompletingWithInsufficientStockAborts(t *testing.T) {
	f := newFixture()
	o := f.place(t, CartItem{PartID: f.partA.ID.String(), Quantity: 2, Price: 25})
	f.move(t, o.ID.String(), StatusCompleted)
	f.move(t, o.ID.String(), StatusCancelled)

	// Another order drained the shelf in the meantime.
	f.partA.Stock = 1

	_, err := f.svc.UpdateStatus(context.Background(), o.ID.String(),
		UpdateOrderRequest{Status: string(StatusCompleted)})

	var stockErr *part.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Required)
	assert.Equal(t, 1, stockErr.Available)

	assert.Equal(t, StatusCancelled, f.repo.orders[o.ID].Status)
	assert.Equal(t, 1, f.partA.Stock)
}

func TestUpdateStatus_MultiItemShortfallLeavesNoPartialDecrement(t *testing.T) {
	f := newFixture()
	o := f.place(t,
		CartItem{PartID: f.partA.ID.String(), Quantity: 2, Price: 25},
		CartItem{PartID: f.partB.ID.String(), Quantity: 4, Price: 8},
	)
	f.partB.Stock = 3 // second item will fall short

	_, err := f.svc.UpdateStatus(context.Background(), o.ID.String(),
		UpdateOrderRequest{Status: string(StatusCompleted)})

	var stockErr *part.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Oil Filter", stockErr.Name)

	// The first item must not have been decremented.
	assert.Equal(t, 5, f.partA.Stock)
	assert.Equal(t, 3, f.partB.Stock)
	assert.Equal(t, StatusPending, f.repo.orders[o.ID].Status)
}

func TestUpdateStatus_DuplicatePartShortfallAborts(t *testing.T) {
	f := newFixture()
	o := f.place(t,
		CartItem{PartID: f.partA.ID.String(), Quantity: 2, Price: 25},
		CartItem{PartID: f.partA.ID.String(), Quantity: 2, Price: 25},
	)

	// Stock shrank after placement: 2 still fits, 2+2 does not.
	f.partA.Stock = 3

	_, err := f.svc.UpdateStatus(context.Background(), o.ID.String(),
		UpdateOrderRequest{Status: string(StatusCompleted)})

	var stockErr *part.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 4, stockErr.Required)
	assert.Equal(t, 3, stockErr.Available)

	assert.Equal(t, 3, f.partA.Stock)
	assert.Equal(t, StatusPending, f.repo.orders[o.ID].Status)
}

func TestApplyTransition_RejectsStaleStatus(t *testing.T) {
	f := newFixture()
	o := f.place(t, CartItem{PartID: f.partA.ID.String(), Quantity: 2, Price: 25})

	// A concurrent transition moved the order after this caller read it.
	stale, err := f.repo.GetByID(context.Background(), o.ID.String())
	require.NoError(t, err)
	f.repo.orders[o.ID].Status = StatusCancelled

	effect, ok := resolveTransition(StatusPending, StatusCompleted)
	require.True(t, ok)
	err = f.repo.ApplyTransition(context.Background(), stale, StatusCompleted, effect)

	assert.ErrorIs(t, err, ErrStatusChanged)
	assert.Equal(t, StatusCancelled, f.repo.orders[o.ID].Status)
	assert.Equal(t, 5, f.partA.Stock)
	assert.Zero(t, f.repo.txnUpdates)
}

func TestUpdateStatus_SameStatusIsANoOp(t *testing.T) {
	f := newFixture()
	o := f.place(t, CartItem{PartID: f.partA.ID.String(), Quantity: 2, Price: 25})

	updated := f.move(t, o.ID.String(), StatusPending)

	assert.Equal(t, StatusPending, updated.Status)
	assert.Equal(t, 5, f.partA.Stock)
	assert.Zero(t, f.repo.txnUpdates)
}

func TestUpdateStatus_CancellingPendingOrderFailsTransactionOnly(t *testing.T) {
	f := newFixture()
	o := f.place(t, CartItem{PartID: f.partA.ID.String(), Quantity: 2, Price: 25})

	f.move(t, o.ID.String(), StatusCancelled)

	// Stock was never reduced, so there is nothing to restore.
	assert.Equal(t, 5, f.partA.Stock)
	assert.Equal(t, transaction.StatusFailed, f.repo.txns[o.ID])
}

func TestUpdateStatus_InvalidStatusCausesNoMutation(t *testing.T) {
	f := newFixture()
	o := f.place(t, CartItem{PartID: f.partA.ID.String(), Quantity: 2, Price: 25})

	_, err := f.svc.UpdateStatus(context.Background(), o.ID.String(),
		UpdateOrderRequest{Status: "Shipped"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, StatusPending, f.repo.orders[o.ID].Status)
	assert.Equal(t, 5, f.partA.Stock)
	assert.Zero(t, f.repo.txnUpdates)
}

func TestUpdateStatus_OrderNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.UpdateStatus(context.Background(), uuid.New().String(),
		UpdateOrderRequest{Status: string(StatusCompleted)})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatus_ToleratesMissingTransaction(t *testing.T) {
	f := newFixture()
	o := f.place(t, CartItem{PartID: f.partA.ID.String(), Quantity: 2, Price: 25})
	delete(f.repo.txns, o.ID)

	updated := f.move(t, o.ID.String(), StatusCompleted)

	assert.Equal(t, StatusCompleted, updated.Status)
	assert.Equal(t, 3, f.partA.Stock)
	assert.Zero(t, f.repo.txnUpdates)
}

// ── DeleteOrder ───────────────────────────────────────────────────────────────

func TestDeleteOrder_RemovesOrderOnly(t *testing.T) {
	f := newFixture()
	o := f.place(t, CartItem{PartID: f.partA.ID.String(), Quantity: 2, Price: 25})
	f.move(t, o.ID.String(), StatusCompleted)
	require.Equal(t, 3, f.partA.Stock)

	require.NoError(t, f.svc.DeleteOrder(context.Background(), o.ID.String()))

	// Stock and the transaction record are deliberately untouched.
	assert.Empty(t, f.repo.orders)
	assert.Equal(t, 3, f.partA.Stock)
	assert.Equal(t, transaction.StatusSuccess, f.repo.txns[o.ID])

	err := f.svc.DeleteOrder(context.Background(), o.ID.String())
	assert.True(t, errors.Is(err, ErrNotFound))
}
