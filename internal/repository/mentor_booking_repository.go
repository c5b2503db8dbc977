package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/campus-portal/internal/model"
)

type MentorBookingRepository interface {
	// Create inserts a pending booking. ErrDuplicate means another active
	// booking already holds the (mentor, date, time) slot.
	Create(ctx context.Context, booking *model.MentorBooking) error
	GetByID(ctx context.Context, id int64) (*model.MentorBooking, error)
	ListByUser(ctx context.Context, userID int64) ([]*model.MentorBooking, error)
	// ListByMentorDate returns every booking for a mentor on a date,
	// regardless of status.
	ListByMentorDate(ctx context.Context, mentorID int64, date string) ([]*model.MentorBooking, error)
	// ListPendingByMentor returns the mentor's approval inbox with the
	// requesting student joined in.
	ListPendingByMentor(ctx context.Context, mentorID int64) ([]*model.MentorBooking, error)
	UpdateStatus(ctx context.Context, id int64, status model.BookingStatus, rejectionReason *string) error
}

type PgMentorBookingRepository struct {
	pool *pgxpool.Pool
}

func NewPgMentorBookingRepository(pool *pgxpool.Pool) *PgMentorBookingRepository {
	return &PgMentorBookingRepository{pool: pool}
}

const mentorBookingColumns = `id, user_id, mentor_id, date, time, purpose, status, rejection_reason, created_at`

func (r *PgMentorBookingRepository) Create(ctx context.Context, booking *model.MentorBooking) error {
	query := `
		INSERT INTO mentor_bookings (user_id, mentor_id, date, time, purpose, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		booking.UserID,
		booking.MentorID,
		booking.Date,
		booking.Time,
		booking.Purpose,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create mentor booking: %w", err)
	}

	return nil
}

func (r *PgMentorBookingRepository) GetByID(ctx context.Context, id int64) (*model.MentorBooking, error) {
	query := `SELECT ` + mentorBookingColumns + ` FROM mentor_bookings WHERE id = $1`

	booking, err := scanMentorBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get mentor booking by id: %w", err)
	}

	return booking, nil
}

func (r *PgMentorBookingRepository) ListByUser(ctx context.Context, userID int64) ([]*model.MentorBooking, error) {
	query := `
		SELECT ` + mentorBookingColumns + `
		FROM mentor_bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *PgMentorBookingRepository) ListByMentorDate(ctx context.Context, mentorID int64, date string) ([]*model.MentorBooking, error) {
	query := `
		SELECT ` + mentorBookingColumns + `
		FROM mentor_bookings
		WHERE mentor_id = $1 AND date = $2
		ORDER BY time
	`
	return r.list(ctx, query, mentorID, date)
}

func (r *PgMentorBookingRepository) ListPendingByMentor(ctx context.Context, mentorID int64) ([]*model.MentorBooking, error) {
	query := `
		SELECT mb.id, mb.user_id, mb.mentor_id, mb.date, mb.time, mb.purpose, mb.status, mb.rejection_reason, mb.created_at,
		       u.username, u.email, u.full_name, u.role
		FROM mentor_bookings mb
		JOIN users u ON mb.user_id = u.id
		WHERE mb.mentor_id = $1 AND mb.status = 'pending'
		ORDER BY mb.created_at
	`

	rows, err := r.pool.Query(ctx, query, mentorID)
	if err != nil {
		return nil, fmt.Errorf("list pending bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.MentorBooking
	for rows.Next() {
		var booking model.MentorBooking
		var student model.Identity
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.MentorID,
			&booking.Date,
			&booking.Time,
			&booking.Purpose,
			&booking.Status,
			&booking.RejectionReason,
			&booking.CreatedAt,
			&student.Username,
			&student.Email,
			&student.FullName,
			&student.Role,
		)
		if err != nil {
			return nil, fmt.Errorf("scan pending booking: %w", err)
		}
		student.ID = booking.UserID
		booking.Student = &student
		bookings = append(bookings, &booking)
	}

	return bookings, rows.Err()
}

func (r *PgMentorBookingRepository) UpdateStatus(ctx context.Context, id int64, status model.BookingStatus, rejectionReason *string) error {
	query := `
		UPDATE mentor_bookings
		SET status = $2, rejection_reason = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, status, rejectionReason)
	if err != nil {
		return fmt.Errorf("update mentor booking status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mentor booking %d not found", id)
	}

	return nil
}

func (r *PgMentorBookingRepository) list(ctx context.Context, query string, args ...any) ([]*model.MentorBooking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mentor bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.MentorBooking
	for rows.Next() {
		booking, err := scanMentorBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mentor booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func scanMentorBooking(row pgx.Row) (*model.MentorBooking, error) {
	var booking model.MentorBooking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.MentorID,
		&booking.Date,
		&booking.Time,
		&booking.Purpose,
		&booking.Status,
		&booking.RejectionReason,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
