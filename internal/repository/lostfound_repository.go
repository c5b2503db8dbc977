package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/campus-portal/internal/model"
)

type LostFoundRepository interface {
	Create(ctx context.Context, item *model.LostFoundItem) error
	GetByID(ctx context.Context, id int64) (*model.LostFoundItem, error)
	// List returns items newest first; itemType narrows to "lost" or
	// "found", empty string means everything.
	List(ctx context.Context, itemType model.LostFoundType) ([]*model.LostFoundItem, error)
	Update(ctx context.Context, item *model.LostFoundItem) error
}

type PgLostFoundRepository struct {
	pool *pgxpool.Pool
}

func NewPgLostFoundRepository(pool *pgxpool.Pool) *PgLostFoundRepository {
	return &PgLostFoundRepository{pool: pool}
}

const lostFoundColumns = `id, user_id, name, description, category, location, submission_location, date, type, status, image, contact_info, other_location, created_at`

func (r *PgLostFoundRepository) Create(ctx context.Context, item *model.LostFoundItem) error {
	query := `
		INSERT INTO lost_found_items (user_id, name, description, category, location, submission_location, date, type, status, image, contact_info, other_location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		item.UserID,
		item.Name,
		item.Description,
		item.Category,
		item.Location,
		item.SubmissionLocation,
		item.Date,
		item.Type,
		item.Status,
		item.Image,
		item.ContactInfo,
		item.OtherLocation,
	).Scan(&item.ID, &item.CreatedAt)

	if err != nil {
		return fmt.Errorf("create lost/found item: %w", err)
	}

	return nil
}

func (r *PgLostFoundRepository) GetByID(ctx context.Context, id int64) (*model.LostFoundItem, error) {
	query := `SELECT ` + lostFoundColumns + ` FROM lost_found_items WHERE id = $1`

	item, err := scanLostFoundItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get lost/found item: %w", err)
	}

	return item, nil
}

func (r *PgLostFoundRepository) List(ctx context.Context, itemType model.LostFoundType) ([]*model.LostFoundItem, error) {
	query := `SELECT ` + lostFoundColumns + ` FROM lost_found_items`
	args := []any{}
	if itemType != "" {
		query += ` WHERE type = $1`
		args = append(args, itemType)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lost/found items: %w", err)
	}
	defer rows.Close()

	var items []*model.LostFoundItem
	for rows.Next() {
		item, err := scanLostFoundItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lost/found item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *PgLostFoundRepository) Update(ctx context.Context, item *model.LostFoundItem) error {
	query := `
		UPDATE lost_found_items
		SET name = $2, description = $3, category = $4, location = $5,
		    submission_location = $6, date = $7, type = $8, status = $9,
		    image = $10, contact_info = $11, other_location = $12
		WHERE id = $1
	`

	tag, err := r.pool.Exec(
		ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Category,
		item.Location,
		item.SubmissionLocation,
		item.Date,
		item.Type,
		item.Status,
		item.Image,
		item.ContactInfo,
		item.OtherLocation,
	)
	if err != nil {
		return fmt.Errorf("update lost/found item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lost/found item %d not found", item.ID)
	}

	return nil
}

func scanLostFoundItem(row pgx.Row) (*model.LostFoundItem, error) {
	var item model.LostFoundItem
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.Description,
		&item.Category,
		&item.Location,
		&item.SubmissionLocation,
		&item.Date,
		&item.Type,
		&item.Status,
		&item.Image,
		&item.ContactInfo,
		&item.OtherLocation,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
