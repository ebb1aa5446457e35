package order

import (
	"github.com/tmwansa/gearparts-backend/internal/modules/transaction"
)

// StockAction is the stock side effect a status transition carries.
type StockAction int

const (
	// StockKeep leaves every part's stock untouched.
	StockKeep StockAction = iota
	// StockReduce decrements each line item's part stock by its quantity.
	StockReduce
	// StockRestore increments each line item's part stock by its quantity.
	StockRestore
)

// Effect pairs a transition's stock action with the status its transaction
// is moved to.
type Effect struct {
	Stock StockAction
	Txn   transaction.Status
}

type pair struct{ from, to OrderStatus }

// transitions enumerates every distinct (previous, new) status pair and its
// effect. An explicit table rather than nested conditionals, so no pair can
// fall through unnoticed. Same-status updates are a no-op and never reach
// the table.
var transitions = map[pair]Effect{
	{StatusPending, StatusProcessing}: {StockKeep, transaction.StatusPending},
	{StatusPending, StatusCompleted}:  {StockReduce, transaction.StatusSuccess},
	{StatusPending, StatusCancelled}:  {StockKeep, transaction.StatusFailed},

	{StatusProcessing, StatusPending}:   {StockKeep, transaction.StatusPending},
	{StatusProcessing, StatusCompleted}: {StockReduce, transaction.StatusSuccess},
	{StatusProcessing, StatusCancelled}: {StockKeep, transaction.StatusFailed},

	{StatusCompleted, StatusPending}:    {StockKeep, transaction.StatusPending},
	{StatusCompleted, StatusProcessing}: {StockKeep, transaction.StatusPending},
	{StatusCompleted, StatusCancelled}:  {StockRestore, transaction.StatusFailed},

	{StatusCancelled, StatusPending}:    {StockKeep, transaction.StatusPending},
	{StatusCancelled, StatusProcessing}: {StockKeep, transaction.StatusPending},
	{StatusCancelled, StatusCompleted}:  {StockReduce, transaction.StatusSuccess},
}

func resolveTransition(from, to OrderStatus) (Effect, bool) {
	e, ok := transitions[pair{from, to}]
	return e, ok
}

func validStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
