package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/campus-portal/internal/model"
)

type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id int64) (*model.Course, error)
	// List returns courses, optionally narrowed to one semester.
	List(ctx context.Context, semester string) ([]*model.Course, error)
	// Enroll inserts an enrollment. ErrDuplicate means the student is
	// already enrolled in the course.
	Enroll(ctx context.Context, enrollment *model.StudentEnrollment) error
	ListEnrollments(ctx context.Context, userID int64) ([]*model.StudentEnrollment, error)
	ListEnrolledCourses(ctx context.Context, userID int64) ([]*model.Course, error)
}

type PgCourseRepository struct {
	pool *pgxpool.Pool
}

func NewPgCourseRepository(pool *pgxpool.Pool) *PgCourseRepository {
	return &PgCourseRepository{pool: pool}
}

const courseColumns = `id, course_code, name, department, credits, description, semester, faculty_id, schedule, room`

func (r *PgCourseRepository) Create(ctx context.Context, course *model.Course) error {
	query := `
		INSERT INTO courses (course_code, name, department, credits, description, semester, faculty_id, schedule, room)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.pool.QueryRow(
		ctx, query,
		course.CourseCode,
		course.Name,
		course.Department,
		course.Credits,
		course.Description,
		course.Semester,
		course.FacultyID,
		course.Schedule,
		course.Room,
	).Scan(&course.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create course: %w", err)
	}

	return nil
}

func (r *PgCourseRepository) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get course: %w", err)
	}

	return course, nil
}

func (r *PgCourseRepository) List(ctx context.Context, semester string) ([]*model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses`
	args := []any{}
	if semester != "" {
		query += ` WHERE semester = $1`
		args = append(args, semester)
	}
	query += ` ORDER BY course_code`

	return r.listCourses(ctx, query, args...)
}

func (r *PgCourseRepository) Enroll(ctx context.Context, enrollment *model.StudentEnrollment) error {
	query := `
		INSERT INTO student_enrollments (user_id, course_id, grade, status)
		VALUES ($1, $2, $3, $4)
		RETURNING enrolled_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		enrollment.UserID,
		enrollment.CourseID,
		enrollment.Grade,
		enrollment.Status,
	).Scan(&enrollment.EnrolledAt)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("enroll student: %w", err)
	}

	return nil
}

func (r *PgCourseRepository) ListEnrollments(ctx context.Context, userID int64) ([]*model.StudentEnrollment, error) {
	query := `
		SELECT user_id, course_id, enrolled_at, grade, status
		FROM student_enrollments
		WHERE user_id = $1
		ORDER BY enrolled_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*model.StudentEnrollment
	for rows.Next() {
		var e model.StudentEnrollment
		err := rows.Scan(&e.UserID, &e.CourseID, &e.EnrolledAt, &e.Grade, &e.Status)
		if err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		enrollments = append(enrollments, &e)
	}

	return enrollments, rows.Err()
}

func (r *PgCourseRepository) ListEnrolledCourses(ctx context.Context, userID int64) ([]*model.Course, error) {
	query := `
		SELECT c.id, c.course_code, c.name, c.department, c.credits, c.description, c.semester, c.faculty_id, c.schedule, c.room
		FROM courses c
		JOIN student_enrollments se ON se.course_id = c.id
		WHERE se.user_id = $1
		ORDER BY c.course_code
	`
	return r.listCourses(ctx, query, userID)
}

func (r *PgCourseRepository) listCourses(ctx context.Context, query string, args ...any) ([]*model.Course, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []*model.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

func scanCourse(row pgx.Row) (*model.Course, error) {
	var course model.Course
	err := row.Scan(
		&course.ID,
		&course.CourseCode,
		&course.Name,
		&course.Department,
		&course.Credits,
		&course.Description,
		&course.Semester,
		&course.FacultyID,
		&course.Schedule,
		&course.Room,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}
