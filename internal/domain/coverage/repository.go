package coverage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ListFilter narrows the coverage list query
type ListFilter struct {
	GameID       *uuid.UUID
	OutletID     *uuid.UUID
	CoverageType *Type
	Sentiment    *Sentiment
}

// Repository defines coverage data access
type Repository interface {
	Create(ctx context.Context, c *Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	GetByExternalID(ctx context.Context, externalID string) (*Item, error)
	Update(ctx context.Context, c *Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Item, int, error)
	Summary(ctx context.Context, gameID uuid.UUID) (*Summary, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates coverage repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Item) error {
	query := `
		INSERT INTO coverage (id, game_id, outlet_id, url, headline, author,
			published_at, coverage_type, score, sentiment, source, external_id,
			created_at, updated_at)
		VALUES (:id, :game_id, :outlet_id, :url, :headline, :author,
			:published_at, :coverage_type, :score, :sentiment, :source, :external_id,
			:created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, c)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	var c Item
	query := `SELECT * FROM coverage WHERE id = $1`

	err := r.db.GetContext(ctx, &c, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) GetByExternalID(ctx context.Context, externalID string) (*Item, error) {
	var c Item
	query := `SELECT * FROM coverage WHERE external_id = $1`

	err := r.db.GetContext(ctx, &c, query, externalID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Item) error {
	query := `
		UPDATE coverage
		SET url = :url, headline = :headline, author = :author,
			published_at = :published_at, coverage_type = :coverage_type,
			score = :score, sentiment = :sentiment, updated_at = NOW()
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, c)
	return err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM coverage WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *repository) List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Item, int, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.GameID != nil {
		where += fmt.Sprintf(" AND game_id = $%d", argIdx)
		args = append(args, *filter.GameID)
		argIdx++
	}
	if filter.OutletID != nil {
		where += fmt.Sprintf(" AND outlet_id = $%d", argIdx)
		args = append(args, *filter.OutletID)
		argIdx++
	}
	if filter.CoverageType != nil {
		where += fmt.Sprintf(" AND coverage_type = $%d", argIdx)
		args = append(args, *filter.CoverageType)
		argIdx++
	}
	if filter.Sentiment != nil {
		where += fmt.Sprintf(" AND sentiment = $%d", argIdx)
		args = append(args, *filter.Sentiment)
		argIdx++
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM coverage"+where, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT * FROM coverage%s ORDER BY published_at DESC LIMIT $%d OFFSET $%d",
		where, argIdx, argIdx+1,
	)
	args = append(args, limit, offset)

	items := []*Item{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repository) Summary(ctx context.Context, gameID uuid.UUID) (*Summary, error) {
	rows := []struct {
		CoverageType Type      `db:"coverage_type"`
		Sentiment    Sentiment `db:"sentiment"`
		Score        sql.NullInt64
	}{}

	query := `SELECT coverage_type, sentiment, score FROM coverage WHERE game_id = $1`
	if err := r.db.SelectContext(ctx, &rows, query, gameID); err != nil {
		return nil, err
	}

	summary := &Summary{
		ByType:      map[Type]int{},
		BySentiment: map[Sentiment]int{},
	}

	var scoreSum int64
	for _, row := range rows {
		summary.Total++
		summary.ByType[row.CoverageType]++
		summary.BySentiment[row.Sentiment]++
		if row.Score.Valid {
			summary.Scored++
			scoreSum += row.Score.Int64
		}
	}
	if summary.Scored > 0 {
		avg := float64(scoreSum) / float64(summary.Scored)
		summary.AvgScore = &avg
	}

	return summary, nil
}
