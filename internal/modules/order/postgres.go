package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tmwansa/gearparts-backend/internal/modules/part"
	"github.com/tmwansa/gearparts-backend/internal/modules/transaction"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// Create inserts the order, its items, and the pending sale transaction
// inside a single database transaction.
func (r *postgresRepo) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_id, total_amount, status)
		VALUES ($1,$2,$3,$4)`,
		o.ID, o.CustomerID, o.TotalAmount, o.Status)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, part_id, quantity, unit_price)
			VALUES ($1,$2,$3,$4,$5)`,
			item.ID, o.ID, item.PartID, item.Quantity, item.UnitPrice)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO transactions (id, order_id, type, amount, status)
		VALUES ($1,$2,$3,$4,$5)`,
		uuid.New(), o.ID, transaction.TypeSale, o.TotalAmount, transaction.StatusPending)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	return tx.Commit()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	o := &Order{}
	err = r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, total_amount, status, created_at, updated_at
		FROM orders WHERE id=$1`, uid).
		Scan(&o.ID, &o.CustomerID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	o.Items, err = r.listItems(ctx, o.ID)
	return o, err
}

func (r *postgresRepo) List(ctx context.Context) ([]*Order, error) {
	return r.queryOrders(ctx, `
		SELECT id, customer_id, total_amount, status, created_at, updated_at
		FROM orders ORDER BY created_at DESC`)
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID string) ([]*Order, error) {
	return r.queryOrders(ctx, `
		SELECT id, customer_id, total_amount, status, created_at, updated_at
		FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`, customerID)
}

// ApplyTransition runs the whole reconciliation as one database transaction:
// guarded per-item stock adjustments, the order's status, and the linked
// transaction's status either all commit or none do. Part rows are locked
// before the sufficiency check so concurrent completions cannot jointly
// overdraw stock.
func (r *postgresRepo) ApplyTransition(ctx context.Context, o *Order, newStatus OrderStatus, effect Effect) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Lock the order and make sure no concurrent transition moved it since
	// the caller resolved the effect; part rows are only locked afterwards,
	// keeping the lock order consistent across transitions.
	var current OrderStatus
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM orders WHERE id=$1 FOR UPDATE`, o.ID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if current != o.Status {
		return fmt.Errorf("%w: order is now %s", ErrStatusChanged, current)
	}

	switch effect.Stock {
	case StockReduce:
		for _, item := range o.Items {
			var name string
			var stock int
			err := tx.QueryRowContext(ctx,
				`SELECT name, stock FROM parts WHERE id=$1 FOR UPDATE`, item.PartID).
				Scan(&name, &stock)
			if errors.Is(err, sql.ErrNoRows) {
				return part.ErrNotFound
			}
			if err != nil {
				return err
			}
			if stock < item.Quantity {
				return &part.InsufficientStockError{
					Name:      name,
					Required:  item.Quantity,
					Available: stock,
				}
			}
			_, err = tx.ExecContext(ctx,
				`UPDATE parts SET stock = stock - $1, updated_at=NOW() WHERE id=$2`,
				item.Quantity, item.PartID)
			if err != nil {
				return err
			}
		}
	case StockRestore:
		for _, item := range o.Items {
			_, err := tx.ExecContext(ctx,
				`UPDATE parts SET stock = stock + $1, updated_at=NOW() WHERE id=$2`,
				item.Quantity, item.PartID)
			if err != nil {
				return err
			}
		}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`, newStatus, o.ID)
	if err != nil {
		return err
	}

	// Best effort: an order without a transaction row completes silently.
	_, err = tx.ExecContext(ctx,
		`UPDATE transactions SET status=$1, updated_at=NOW() WHERE order_id=$2`,
		effect.Txn, o.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id=$1`, uid); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id=$1`, uid)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (r *postgresRepo) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o := &Order{}
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.TotalAmount, &o.Status,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.Items, err = r.listItems(ctx, o.ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *postgresRepo) listItems(ctx context.Context, orderID uuid.UUID) ([]*OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, part_id, quantity, unit_price
		FROM order_items WHERE order_id=$1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*OrderItem
	for rows.Next() {
		item := &OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.PartID,
			&item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
