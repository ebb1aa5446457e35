package supplier

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, s *Supplier) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO suppliers (id, name, company, email, contact, address)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		s.ID, s.Name, s.Company, s.Email, s.Contact, s.Address)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Supplier, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	s := &Supplier{}
	err = r.db.QueryRowContext(ctx, `
		SELECT id, name, company, email, contact, address, created_at, updated_at
		FROM suppliers WHERE id=$1`, uid).
		Scan(&s.ID, &s.Name, &s.Company, &s.Email, &s.Contact, &s.Address,
			&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]*Supplier, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, company, email, contact, address, created_at, updated_at
		FROM suppliers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*Supplier
	for rows.Next() {
		s := &Supplier{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Company, &s.Email, &s.Contact,
			&s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, s *Supplier) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE suppliers
		SET name=$1, company=$2, email=$3, contact=$4, address=$5, updated_at=NOW()
		WHERE id=$6`,
		s.Name, s.Company, s.Email, s.Contact, s.Address, s.ID)
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id=$1`, uid)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
