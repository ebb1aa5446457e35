package vehicle

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, v *Vehicle) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vehicles (id, name, model, type, engine_number)
		VALUES ($1,$2,$3,$4,$5)`,
		v.ID, v.Name, v.Model, v.Type, v.EngineNumber)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Vehicle, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	v := &Vehicle{}
	err = r.db.QueryRowContext(ctx, `
		SELECT id, name, model, type, engine_number, created_at, updated_at
		FROM vehicles WHERE id=$1`, uid).
		Scan(&v.ID, &v.Name, &v.Model, &v.Type, &v.EngineNumber,
			&v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]*Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, model, type, engine_number, created_at, updated_at
		FROM vehicles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*Vehicle
	for rows.Next() {
		v := &Vehicle{}
		if err := rows.Scan(&v.ID, &v.Name, &v.Model, &v.Type, &v.EngineNumber,
			&v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, v *Vehicle) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vehicles
		SET name=$1, model=$2, type=$3, engine_number=$4, updated_at=NOW()
		WHERE id=$5`,
		v.Name, v.Model, v.Type, v.EngineNumber, v.ID)
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id=$1`, uid)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
