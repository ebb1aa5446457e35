package stock

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmwansa/gearparts-backend/internal/modules/part"
)

type memLedger struct {
	parts map[uuid.UUID]*part.Part
}

func (m *memLedger) GetByID(ctx context.Context, id string) (*part.Part, error) {
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

func (m *memLedger) List(ctx context.Context, supplierID string) ([]*part.Part, error) {
	var out []*part.Part
	for _, p := range m.parts {
		out = append(out, p)
	}
	return out, nil
}

func (m *memLedger) SetStock(ctx context.Context, id string, stock int) error {
	p, err := m.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Stock = stock
	return nil
}

func (m *memLedger) IncrementStock(ctx context.Context, id string, delta int) error {
	p, err := m.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Stock += delta
	return nil
}

func newLedger() (*memLedger, *part.Part) {
	p := &part.Part{ID: uuid.New(), Name: "Spark Plug", Price: 4.5, Stock: 12, Category: "Ignition"}
	return &memLedger{parts: map[uuid.UUID]*part.Part{p.ID: p}}, p
}

func TestRestock_AddsQuantity(t *testing.T) {
	ledger, p := newLedger()
	svc := NewService(ledger)

	item, err := svc.Restock(context.Background(), RestockRequest{PartID: p.ID.String(), Quantity: 8})

	require.NoError(t, err)
	assert.Equal(t, 20, item.Stock)
	assert.Equal(t, "Spark Plug", item.Name)
	assert.Equal(t, 20, p.Stock)
}

func TestRestock_RejectsNonPositiveQuantity(t *testing.T) {
	ledger, p := newLedger()
	svc := NewService(ledger)

	for _, qty := range []int{0, -3} {
		_, err := svc.Restock(context.Background(), RestockRequest{PartID: p.ID.String(), Quantity: qty})
		assert.Error(t, err)
	}
	assert.Equal(t, 12, p.Stock)
}

func TestRestock_UnknownPart(t *testing.T) {
	ledger, _ := newLedger()
	svc := NewService(ledger)

	_, err := svc.Restock(context.Background(), RestockRequest{PartID: uuid.New().String(), Quantity: 1})
	assert.ErrorIs(t, err, part.ErrNotFound)
}

func TestSetStock_OverwritesLevel(t *testing.T) {
	ledger, p := newLedger()
	svc := NewService(ledger)

	item, err := svc.SetStock(context.Background(), p.ID.String(), SetStockRequest{Stock: 0})

	require.NoError(t, err)
	assert.Equal(t, 0, item.Stock)
	assert.Equal(t, 0, p.Stock)
}

func TestSetStock_RejectsNegative(t *testing.T) {
	ledger, p := newLedger()
	svc := NewService(ledger)

	_, err := svc.SetStock(context.Background(), p.ID.String(), SetStockRequest{Stock: -1})

	assert.Error(t, err)
	assert.Equal(t, 12, p.Stock)
}

func TestListStock_MapsPartFields(t *testing.T) {
	ledger, p := newLedger()
	svc := NewService(ledger)

	items, err := svc.ListStock(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, p.ID, items[0].ID)
	assert.Equal(t, p.Stock, items[0].Stock)
	assert.Equal(t, p.Category, items[0].Category)
}
