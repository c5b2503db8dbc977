package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/campus-portal/internal/model"
)

type MentorRepository interface {
	Create(ctx context.Context, mentor *model.FacultyMentor) error
	List(ctx context.Context) ([]*model.FacultyMentor, error)
	GetByID(ctx context.Context, id int64) (*model.FacultyMentor, error)
	GetByEmail(ctx context.Context, email string) (*model.FacultyMentor, error)
}

type PgMentorRepository struct {
	pool *pgxpool.Pool
}

func NewPgMentorRepository(pool *pgxpool.Pool) *PgMentorRepository {
	return &PgMentorRepository{pool: pool}
}

const mentorColumns = `id, name, department, email, office, specialization, availability, COALESCE(avatar, '')`

func (r *PgMentorRepository) Create(ctx context.Context, mentor *model.FacultyMentor) error {
	query := `
		INSERT INTO faculty_mentors (name, department, email, office, specialization, availability, avatar)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.pool.QueryRow(
		ctx, query,
		mentor.Name,
		mentor.Department,
		mentor.Email,
		mentor.Office,
		mentor.Specialization,
		mentor.Availability,
		mentor.Avatar,
	).Scan(&mentor.ID)

	if err != nil {
		return fmt.Errorf("create mentor: %w", err)
	}

	return nil
}

func (r *PgMentorRepository) List(ctx context.Context) ([]*model.FacultyMentor, error) {
	query := `SELECT ` + mentorColumns + ` FROM faculty_mentors ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}
	defer rows.Close()

	var mentors []*model.FacultyMentor
	for rows.Next() {
		mentor, err := scanMentor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mentor: %w", err)
		}
		mentors = append(mentors, mentor)
	}

	return mentors, rows.Err()
}

func (r *PgMentorRepository) GetByID(ctx context.Context, id int64) (*model.FacultyMentor, error) {
	query := `SELECT ` + mentorColumns + ` FROM faculty_mentors WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *PgMentorRepository) GetByEmail(ctx context.Context, email string) (*model.FacultyMentor, error) {
	query := `SELECT ` + mentorColumns + ` FROM faculty_mentors WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *PgMentorRepository) getOne(ctx context.Context, query string, arg any) (*model.FacultyMentor, error) {
	mentor, err := scanMentor(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get mentor: %w", err)
	}
	return mentor, nil
}

func scanMentor(row pgx.Row) (*model.FacultyMentor, error) {
	var mentor model.FacultyMentor
	err := row.Scan(
		&mentor.ID,
		&mentor.Name,
		&mentor.Department,
		&mentor.Email,
		&mentor.Office,
		&mentor.Specialization,
		&mentor.Availability,
		&mentor.Avatar,
	)
	if err != nil {
		return nil, err
	}
	return &mentor, nil
}
