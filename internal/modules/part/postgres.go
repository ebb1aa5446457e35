package part

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Part) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO parts
		  (id, name, category, price, stock, supplier_id, compatible_vehicles)
		VALUES ($1,$2,$3,$4,$5,$6,$7::uuid[])`,
		p.ID, p.Name, p.Category, p.Price, p.Stock, p.SupplierID,
		pq.Array(uuidsToStrings(p.CompatibleVehicles)))
	if err != nil {
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Part, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id,name,category,price,stock,supplier_id,compatible_vehicles,created_at,updated_at
		FROM parts WHERE id=$1`, uid)
	return scanPart(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context, supplierID string) ([]*Part, error) {
	query := `SELECT id,name,category,price,stock,supplier_id,compatible_vehicles,created_at,updated_at
	          FROM parts`
	args := []interface{}{}
	if supplierID != "" {
		query += ` WHERE supplier_id=$1`
		args = append(args, supplierID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parts []*Part
	for rows.Next() {
		p, err := scanPart(rows.Scan)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, p *Part) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE parts
		SET name=$1, category=$2, price=$3, stock=$4, supplier_id=$5,
		    compatible_vehicles=$6::uuid[], updated_at=NOW()
		WHERE id=$7`,
		p.Name, p.Category, p.Price, p.Stock, p.SupplierID,
		pq.Array(uuidsToStrings(p.CompatibleVehicles)), p.ID)
	if err != nil {
		return fmt.Errorf("update part: %w", err)
	}
	return checkFound(res)
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM parts WHERE id=$1`, uid)
	if err != nil {
		return err
	}
	return checkFound(res)
}

func (r *postgresRepo) SetStock(ctx context.Context, id string, stock int) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE parts SET stock=$1, updated_at=NOW() WHERE id=$2`, stock, uid)
	if err != nil {
		return err
	}
	return checkFound(res)
}

func (r *postgresRepo) IncrementStock(ctx context.Context, id string, delta int) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE parts SET stock = stock + $1, updated_at=NOW() WHERE id=$2`, delta, uid)
	if err != nil {
		return err
	}
	return checkFound(res)
}

// DecrementStock performs the decrement and its sufficiency check as a single
// conditional statement, so two concurrent decrements can never jointly take
// stock below zero.
func (r *postgresRepo) DecrementStock(ctx context.Context, id string, delta int) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE parts SET stock = stock - $1, updated_at=NOW()
		WHERE id=$2 AND stock >= $1`, delta, uid)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 1 {
		return nil
	}

	// The guard failed: distinguish a missing part from a shortfall.
	var name string
	var stock int
	err = r.db.QueryRowContext(ctx, `SELECT name, stock FROM parts WHERE id=$1`, uid).
		Scan(&name, &stock)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return &InsufficientStockError{Name: name, Required: delta, Available: stock}
}

// ── helpers ──────────────────────────────────────────────────────────────────

func scanPart(scan func(...interface{}) error) (*Part, error) {
	p := &Part{}
	var supplierID sql.NullString
	var vehicles pq.StringArray
	err := scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock,
		&supplierID, &vehicles, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if supplierID.Valid {
		uid, _ := uuid.Parse(supplierID.String)
		p.SupplierID = &uid
	}
	for _, v := range vehicles {
		uid, err := uuid.Parse(v)
		if err != nil {
			continue
		}
		p.CompatibleVehicles = append(p.CompatibleVehicles, uid)
	}
	return p, nil
}

func uuidsToStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func checkFound(res sql.Result) error {
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
