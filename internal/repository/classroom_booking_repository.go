package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/campus-portal/internal/model"
)

type ClassroomBookingRepository interface {
	// Create inserts a pending booking. ErrDuplicate means another active
	// booking already holds the (classroom, date, timeSlot) slot.
	Create(ctx context.Context, booking *model.ClassroomBooking) error
	GetByID(ctx context.Context, id int64) (*model.ClassroomBooking, error)
	ListByUser(ctx context.Context, userID int64) ([]*model.ClassroomBooking, error)
	// BookedClassrooms returns rooms holding an active (pending or
	// approved) booking for the given date and slot.
	BookedClassrooms(ctx context.Context, date, timeSlot string) ([]string, error)
	UpdateStatus(ctx context.Context, id int64, status model.BookingStatus, rejectionReason *string) error
}

type PgClassroomBookingRepository struct {
	pool *pgxpool.Pool
}

func NewPgClassroomBookingRepository(pool *pgxpool.Pool) *PgClassroomBookingRepository {
	return &PgClassroomBookingRepository{pool: pool}
}

const classroomBookingColumns = `id, user_id, classroom, date, time_slot, alternative_name, alternative_id, purpose, status, rejection_reason, created_at`

func (r *PgClassroomBookingRepository) Create(ctx context.Context, booking *model.ClassroomBooking) error {
	query := `
		INSERT INTO classroom_bookings (user_id, classroom, date, time_slot, alternative_name, alternative_id, purpose, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		booking.UserID,
		booking.Classroom,
		booking.Date,
		booking.TimeSlot,
		booking.AlternativeName,
		booking.AlternativeID,
		booking.Purpose,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create classroom booking: %w", err)
	}

	return nil
}

func (r *PgClassroomBookingRepository) GetByID(ctx context.Context, id int64) (*model.ClassroomBooking, error) {
	query := `SELECT ` + classroomBookingColumns + ` FROM classroom_bookings WHERE id = $1`

	booking, err := scanClassroomBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get classroom booking by id: %w", err)
	}

	return booking, nil
}

func (r *PgClassroomBookingRepository) ListByUser(ctx context.Context, userID int64) ([]*model.ClassroomBooking, error) {
	query := `
		SELECT ` + classroomBookingColumns + `
		FROM classroom_bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list classroom bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.ClassroomBooking
	for rows.Next() {
		booking, err := scanClassroomBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan classroom booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *PgClassroomBookingRepository) BookedClassrooms(ctx context.Context, date, timeSlot string) ([]string, error) {
	query := `
		SELECT classroom
		FROM classroom_bookings
		WHERE date = $1 AND time_slot = $2 AND status IN ('pending', 'approved')
	`

	rows, err := r.pool.Query(ctx, query, date, timeSlot)
	if err != nil {
		return nil, fmt.Errorf("booked classrooms: %w", err)
	}
	defer rows.Close()

	var rooms []string
	for rows.Next() {
		var room string
		if err := rows.Scan(&room); err != nil {
			return nil, fmt.Errorf("scan classroom: %w", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (r *PgClassroomBookingRepository) UpdateStatus(ctx context.Context, id int64, status model.BookingStatus, rejectionReason *string) error {
	query := `
		UPDATE classroom_bookings
		SET status = $2, rejection_reason = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, status, rejectionReason)
	if err != nil {
		return fmt.Errorf("update classroom booking status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("classroom booking %d not found", id)
	}

	return nil
}

func scanClassroomBooking(row pgx.Row) (*model.ClassroomBooking, error) {
	var booking model.ClassroomBooking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.Classroom,
		&booking.Date,
		&booking.TimeSlot,
		&booking.AlternativeName,
		&booking.AlternativeID,
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
