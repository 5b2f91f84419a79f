package sale

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ListFilter narrows the sale list query
type ListFilter struct {
	GameID     *uuid.UUID
	PlatformID *uuid.UUID
	Status     *Status
	From       *time.Time
	To         *time.Time
}

// Repository defines sale data access
type Repository interface {
	Create(ctx context.Context, s *Sale) error
	CreateBatch(ctx context.Context, sales []*Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	Update(ctx context.Context, s *Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Sale, int, error)
	ListActiveForSchedule(ctx context.Context, gameID, platformID uuid.UUID, excludeID *uuid.UUID) ([]*Sale, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates sale repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Sale) error {
	query := `
		INSERT INTO sales (id, game_id, platform_id, name, start_date, end_date,
			discount_pct, sale_type, is_event, event_name, status, created_at, updated_at)
		VALUES (:id, :game_id, :platform_id, :name, :start_date, :end_date,
			:discount_pct, :sale_type, :is_event, :event_name, :status, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, s)
	return err
}

func (r *repository) CreateBatch(ctx context.Context, sales []*Sale) error {
	if len(sales) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO sales (id, game_id, platform_id, name, start_date, end_date,
			discount_pct, sale_type, is_event, event_name, status, created_at, updated_at)
		VALUES (:id, :game_id, :platform_id, :name, :start_date, :end_date,
			:discount_pct, :sale_type, :is_event, :event_name, :status, :created_at, :updated_at)
	`
	for _, s := range sales {
		if _, err := tx.NamedExecContext(ctx, query, s); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Sale, error) {
	var s Sale
	query := `SELECT * FROM sales WHERE id = $1`

	err := r.db.GetContext(ctx, &s, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Update(ctx context.Context, s *Sale) error {
	s.UpdatedAt = time.Now()
	query := `
		UPDATE sales
		SET name = :name, start_date = :start_date, end_date = :end_date,
			discount_pct = :discount_pct, status = :status, updated_at = :updated_at
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, s)
	return err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM sales WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *repository) List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Sale, int, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.GameID != nil {
		where += fmt.Sprintf(" AND game_id = $%d", argIdx)
		args = append(args, *filter.GameID)
		argIdx++
	}
	if filter.PlatformID != nil {
		where += fmt.Sprintf(" AND platform_id = $%d", argIdx)
		args = append(args, *filter.PlatformID)
		argIdx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND end_date >= $%d", argIdx)
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND start_date <= $%d", argIdx)
		args = append(args, *filter.To)
		argIdx++
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM sales"+where, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT * FROM sales%s ORDER BY start_date ASC LIMIT $%d OFFSET $%d",
		where, argIdx, argIdx+1,
	)
	args = append(args, limit, offset)

	sales := []*Sale{}
	if err := r.db.SelectContext(ctx, &sales, query, args...); err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

func (r *repository) ListActiveForSchedule(ctx context.Context, gameID, platformID uuid.UUID, excludeID *uuid.UUID) ([]*Sale, error) {
	query := `
		SELECT * FROM sales
		WHERE game_id = $1 AND platform_id = $2 AND status != $3
	`
	args := []interface{}{gameID, platformID, StatusCancelled}

	if excludeID != nil {
		query += " AND id != $4"
		args = append(args, *excludeID)
	}
	query += " ORDER BY start_date ASC"

	sales := []*Sale{}
	if err := r.db.SelectContext(ctx, &sales, query, args...); err != nil {
		return nil, err
	}
	return sales, nil
}
