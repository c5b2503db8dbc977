package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/campusdesk/campus-portal/internal/apperr"
	"github.com/campusdesk/campus-portal/internal/model"
	"github.com/campusdesk/campus-portal/internal/repository"
)

// CourseService covers the course catalog and student enrollment.
type CourseService struct {
	courseRepo repository.CourseRepository
	logger     *zap.Logger
}

func NewCourseService(courseRepo repository.CourseRepository, logger *zap.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

func (s *CourseService) List(ctx context.Context, semester string) ([]*model.Course, error) {
	return s.courseRepo.List(ctx, semester)
}

func (s *CourseService) Get(ctx context.Context, id int64) (*model.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	if course == nil {
		return nil, apperr.NotFoundf("course not found")
	}
	return course, nil
}

// Create adds a course to the catalog. Admin only.
func (s *CourseService) Create(ctx context.Context, actor model.Identity, course *model.Course) (*model.Course, error) {
	if actor.Role != model.RoleAdmin {
		return nil, apperr.Forbiddenf("only admins can create courses")
	}

	for field, value := range map[string]string{
		"courseCode": course.CourseCode,
		"name":       course.Name,
		"department": course.Department,
		"semester":   course.Semester,
		"room":       course.Room,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, apperr.Validationf("%s is required", field)
		}
	}
	if course.Credits <= 0 {
		return nil, apperr.Validationf("credits must be positive")
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		if err == repository.ErrDuplicate {
			return nil, apperr.Conflictf("course code %s already exists", course.CourseCode)
		}
		return nil, fmt.Errorf("create course: %w", err)
	}

	s.logger.Info("Course created",
		zap.Int64("course_id", course.ID),
		zap.String("course_code", course.CourseCode),
		zap.Int64("admin_id", actor.ID),
	)

	return course, nil
}

// Enroll registers a student in a course. Enrollment is keyed on
// (student, course), so enrolling twice is a conflict.
func (s *CourseService) Enroll(ctx context.Context, userID, courseID int64) (*model.StudentEnrollment, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	if course == nil {
		return nil, apperr.NotFoundf("course not found")
	}

	enrollment := &model.StudentEnrollment{
		UserID:   userID,
		CourseID: courseID,
		Status:   model.EnrollmentStatusActive,
	}

	if err := s.courseRepo.Enroll(ctx, enrollment); err != nil {
		if err == repository.ErrDuplicate {
			return nil, apperr.Conflictf("already enrolled in this course")
		}
		return nil, fmt.Errorf("enroll: %w", err)
	}

	s.logger.Info("Student enrolled",
		zap.Int64("user_id", userID),
		zap.Int64("course_id", courseID),
		zap.String("course_code", course.CourseCode),
	)

	return enrollment, nil
}

func (s *CourseService) Enrollments(ctx context.Context, userID int64) ([]*model.StudentEnrollment, error) {
	return s.courseRepo.ListEnrollments(ctx, userID)
}

func (s *CourseService) EnrolledCourses(ctx context.Context, userID int64) ([]*model.Course, error) {
	return s.courseRepo.ListEnrolledCourses(ctx, userID)
}
