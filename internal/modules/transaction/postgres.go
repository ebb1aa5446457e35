package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, t *Transaction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, order_id, type, amount, status, description)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		t.ID, t.OrderID, t.Type, t.Amount, t.Status, t.Description)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Transaction, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id,order_id,type,amount,status,description,created_at,updated_at
		FROM transactions WHERE id=$1`, uid)
	return scanTransaction(row.Scan)
}

func (r *postgresRepo) GetByOrderID(ctx context.Context, orderID string) (*Transaction, error) {
	uid, err := uuid.Parse(orderID)
	if err != nil {
		return nil, ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id,order_id,type,amount,status,description,created_at,updated_at
		FROM transactions WHERE order_id=$1`, uid)
	return scanTransaction(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,order_id,type,amount,status,description,created_at,updated_at
		FROM transactions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []*Transaction
	for rows.Next() {
		t, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET status=$1, updated_at=NOW() WHERE id=$2`, status, uid)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id=$1`, uid)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTransaction(scan func(...interface{}) error) (*Transaction, error) {
	t := &Transaction{}
	var orderID sql.NullString
	err := scan(&t.ID, &orderID, &t.Type, &t.Amount, &t.Status,
		&t.Description, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if orderID.Valid {
		uid, _ := uuid.Parse(orderID.String)
		t.OrderID = &uid
	}
	return t, nil
}
