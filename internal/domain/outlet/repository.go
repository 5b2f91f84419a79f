package outlet

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines outlet data access
type Repository interface {
	Create(ctx context.Context, o *Outlet) error
	GetByID(ctx context.Context, id uuid.UUID) (*Outlet, error)
	GetByName(ctx context.Context, name string) (*Outlet, error)
	Update(ctx context.Context, o *Outlet) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, tier *int, region *string, limit, offset int) ([]*Outlet, int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates outlet repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, o *Outlet) error {
	query := `
		INSERT INTO outlets (id, name, url, region, tier, topics, contact_email,
			reach_score, created_at, updated_at)
		VALUES (:id, :name, :url, :region, :tier, :topics, :contact_email,
			:reach_score, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, o)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Outlet, error) {
	var o Outlet
	query := `SELECT * FROM outlets WHERE id = $1`

	err := r.db.GetContext(ctx, &o, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*Outlet, error) {
	var o Outlet
	query := `SELECT * FROM outlets WHERE LOWER(name) = LOWER($1)`

	err := r.db.GetContext(ctx, &o, query, name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) Update(ctx context.Context, o *Outlet) error {
	query := `
		UPDATE outlets
		SET name = :name, url = :url, region = :region, tier = :tier,
			topics = :topics, contact_email = :contact_email,
			reach_score = :reach_score, updated_at = NOW()
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, o)
	return err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM outlets WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *repository) List(ctx context.Context, tier *int, region *string, limit, offset int) ([]*Outlet, int, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if tier != nil {
		where += fmt.Sprintf(" AND tier = $%d", argIdx)
		args = append(args, *tier)
		argIdx++
	}
	if region != nil {
		where += fmt.Sprintf(" AND region = $%d", argIdx)
		args = append(args, *region)
		argIdx++
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM outlets"+where, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT * FROM outlets%s ORDER BY tier ASC, reach_score DESC LIMIT $%d OFFSET $%d",
		where, argIdx, argIdx+1,
	)
	args = append(args, limit, offset)

	outlets := []*Outlet{}
	if err := r.db.SelectContext(ctx, &outlets, query, args...); err != nil {
		return nil, 0, err
	}
	return outlets, total, nil
}
