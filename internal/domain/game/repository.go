package game

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines game data access
type Repository interface {
	Create(ctx context.Context, g *Game) error
	GetByID(ctx context.Context, id uuid.UUID) (*Game, error)
	GetBySlug(ctx context.Context, slug string) (*Game, error)
	Update(ctx context.Context, g *Game) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, clientID *uuid.UUID, status *Status, limit, offset int) ([]*Game, int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates game repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, g *Game) error {
	query := `
		INSERT INTO games (
			id, client_id, title, slug, genres, release_date,
			press_kit_url, default_discount_pct, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		g.ID, g.ClientID, g.Title, g.Slug, g.Genres, g.ReleaseDate,
		g.PressKitURL, g.DefaultDiscountPct, g.Status, g.CreatedAt, g.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Game, error) {
	query := `SELECT * FROM games WHERE id = $1`
	var g Game
	err := r.db.GetContext(ctx, &g, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Game, error) {
	query := `SELECT * FROM games WHERE slug = $1`
	var g Game
	err := r.db.GetContext(ctx, &g, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) Update(ctx context.Context, g *Game) error {
	query := `
		UPDATE games SET
			title = $2, genres = $3, release_date = $4, press_kit_url = $5,
			default_discount_pct = $6, status = $7, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		g.ID, g.Title, g.Genres, g.ReleaseDate, g.PressKitURL,
		g.DefaultDiscountPct, g.Status,
	)
	return err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM games WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *repository) List(ctx context.Context, clientID *uuid.UUID, status *Status, limit, offset int) ([]*Game, int, error) {
	var args []interface{}
	where := ""
	argIdx := 1

	if clientID != nil {
		where = fmt.Sprintf(" WHERE client_id = $%d", argIdx)
		args = append(args, *clientID)
		argIdx++
	}
	if status != nil {
		if where == "" {
			where = fmt.Sprintf(" WHERE status = $%d", argIdx)
		} else {
			where += fmt.Sprintf(" AND status = $%d", argIdx)
		}
		args = append(args, *status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM games" + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT * FROM games %s
		ORDER BY title ASC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	var games []*Game
	if err := r.db.SelectContext(ctx, &games, query, args...); err != nil {
		return nil, 0, err
	}

	return games, total, nil
}
