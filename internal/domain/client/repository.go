package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines client data access
type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*Client, error)
	GetByEmail(ctx context.Context, email string) (*Client, error)
	Update(ctx context.Context, c *Client) error
	Archive(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status *Status, limit, offset int) ([]*Client, int, error)
	CountByStatus(ctx context.Context) (map[Status]int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates client repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Client) error {
	query := `
		INSERT INTO clients (
			id, company_name, contact_name, contact_email, contact_phone,
			website, notes, status, tags, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.CompanyName, c.ContactName, c.ContactEmail, c.ContactPhone,
		c.Website, c.Notes, c.Status, c.Tags, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	query := `SELECT * FROM clients WHERE id = $1`
	var c Client
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Client, error) {
	query := `SELECT * FROM clients WHERE contact_email = $1 ORDER BY created_at DESC LIMIT 1`
	var c Client
	err := r.db.GetContext(ctx, &c, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Client) error {
	query := `
		UPDATE clients SET
			company_name = $2, contact_name = $3, contact_email = $4,
			contact_phone = $5, website = $6, notes = $7, status = $8,
			tags = $9, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.CompanyName, c.ContactName, c.ContactEmail,
		c.ContactPhone, c.Website, c.Notes, c.Status, c.Tags,
	)
	return err
}

func (r *repository) Archive(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE clients SET status = 'archived', updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *repository) List(ctx context.Context, status *Status, limit, offset int) ([]*Client, int, error) {
	var args []interface{}
	where := ""
	argIdx := 1

	if status != nil {
		where = " WHERE status = $1"
		args = append(args, *status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM clients" + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT * FROM clients %s
		ORDER BY company_name ASC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	var clients []*Client
	if err := r.db.SelectContext(ctx, &clients, query, args...); err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

func (r *repository) CountByStatus(ctx context.Context) (map[Status]int, error) {
	query := `SELECT status, COUNT(*) as count FROM clients GROUP BY status`

	type row struct {
		Status Status `db:"status"`
		Count  int    `db:"count"`
	}

	var rows []row
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	result := make(map[Status]int)
	for _, r := range rows {
		result[r.Status] = r.Count
	}
	return result, nil
}
