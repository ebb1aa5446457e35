package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmwansa/gearparts-backend/internal/modules/transaction"
)

func TestResolveTransition(t *testing.T) {
	tests := []struct {
		name     string
		from, to OrderStatus
		stock    StockAction
		txn      transaction.Status
	}{
		{"complete pending order", StatusPending, StatusCompleted, StockReduce, transaction.StatusSuccess},
		{"complete processing order", StatusProcessing, StatusCompleted, StockReduce, transaction.StatusSuccess},
		{"cancel completed order", StatusCompleted, StatusCancelled, StockRestore, transaction.StatusFailed},
		{"re-complete cancelled order", StatusCancelled, StatusCompleted, StockReduce, transaction.StatusSuccess},
		{"cancel pending order", StatusPending, StatusCancelled, StockKeep, transaction.StatusFailed},
		{"reopen completed order", StatusCompleted, StatusProcessing, StockKeep, transaction.StatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effect, ok := resolveTransition(tt.from, tt.to)
			require.True(t, ok)
			assert.Equal(t, tt.stock, effect.Stock)
			assert.Equal(t, tt.txn, effect.Txn)
		})
	}
}

// Every distinct status pair must have an entry; a missing pair would make
// UpdateStatus reject a legitimate transition.
func TestTransitionTableIsComplete(t *testing.T) {
	all := []OrderStatus{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}
	for _, from := range all {
		for _, to := range all {
			if from == to {
				continue
			}
			_, ok := resolveTransition(from, to)
			assert.True(t, ok, "missing transition %s -> %s", from, to)
		}
	}
}
