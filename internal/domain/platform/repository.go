package platform

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines platform and event data access
type Repository interface {
	Create(ctx context.Context, p *Platform) error
	GetByID(ctx context.Context, id uuid.UUID) (*Platform, error)
	GetBySlug(ctx context.Context, slug string) (*Platform, error)
	GetByPartnerCode(ctx context.Context, code string) (*Platform, error)
	Update(ctx context.Context, p *Platform) error
	List(ctx context.Context, activeOnly bool) ([]*Platform, error)

	CreateEvent(ctx context.Context, e *Event) error
	GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error)
	GetEventByExternalID(ctx context.Context, externalID string) (*Event, error)
	UpdateEvent(ctx context.Context, e *Event) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	ListEvents(ctx context.Context, platformID *uuid.UUID, from, to *time.Time) ([]*Event, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates platform repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Platform) error {
	query := `
		INSERT INTO platforms (
			id, name, slug, color, cooldown_days, max_sale_days,
			partner_code, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Slug, p.Color, p.CooldownDays, p.MaxSaleDays,
		p.PartnerCode, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Platform, error) {
	var p Platform
	err := r.db.GetContext(ctx, &p, `SELECT * FROM platforms WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Platform, error) {
	var p Platform
	err := r.db.GetContext(ctx, &p, `SELECT * FROM platforms WHERE slug = $1`, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByPartnerCode(ctx context.Context, code string) (*Platform, error) {
	var p Platform
	err := r.db.GetContext(ctx, &p, `SELECT * FROM platforms WHERE partner_code = $1`, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Platform) error {
	query := `
		UPDATE platforms SET
			name = $2, color = $3, cooldown_days = $4, max_sale_days = $5,
			partner_code = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Color, p.CooldownDays, p.MaxSaleDays,
		p.PartnerCode, p.IsActive,
	)
	return err
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]*Platform, error) {
	query := `SELECT * FROM platforms ORDER BY name ASC`
	if activeOnly {
		query = `SELECT * FROM platforms WHERE is_active ORDER BY name ASC`
	}
	var platforms []*Platform
	if err := r.db.SelectContext(ctx, &platforms, query); err != nil {
		return nil, err
	}
	return platforms, nil
}

func (r *repository) CreateEvent(ctx context.Context, e *Event) error {
	query := `
		INSERT INTO platform_events (
			id, platform_id, name, start_date, end_date,
			requires_cooldown, is_recurring, source, external_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.PlatformID, e.Name, e.StartDate, e.EndDate,
		e.RequiresCooldown, e.IsRecurring, e.Source, e.ExternalID, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *repository) GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var e Event
	err := r.db.GetContext(ctx, &e, `SELECT * FROM platform_events WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) GetEventByExternalID(ctx context.Context, externalID string) (*Event, error) {
	var e Event
	err := r.db.GetContext(ctx, &e, `SELECT * FROM platform_events WHERE external_id = $1`, externalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) UpdateEvent(ctx context.Context, e *Event) error {
	query := `
		UPDATE platform_events SET
			name = $2, start_date = $3, end_date = $4,
			requires_cooldown = $5, is_recurring = $6, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Name, e.StartDate, e.EndDate, e.RequiresCooldown, e.IsRecurring,
	)
	return err
}

func (r *repository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM platform_events WHERE id = $1`, id)
	return err
}

func (r *repository) ListEvents(ctx context.Context, platformID *uuid.UUID, from, to *time.Time) ([]*Event, error) {
	query := `SELECT * FROM platform_events WHERE 1=1`
	var args []interface{}
	argIdx := 1

	if platformID != nil {
		query += fmt.Sprintf(" AND platform_id = $%d", argIdx)
		args = append(args, *platformID)
		argIdx++
	}
	if from != nil {
		query += fmt.Sprintf(" AND end_date >= $%d", argIdx)
		args = append(args, *from)
		argIdx++
	}
	if to != nil {
		query += fmt.Sprintf(" AND start_date <= $%d", argIdx)
		args = append(args, *to)
		argIdx++
	}
	query += ` ORDER BY start_date ASC`

	var events []*Event
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, err
	}
	return events, nil
}
