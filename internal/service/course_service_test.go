package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusdesk/campus-portal/internal/apperr"
	"github.com/campusdesk/campus-portal/internal/model"
	"github.com/campusdesk/campus-portal/internal/testutil"
)

func newCourseFixture(t *testing.T) (*CourseService, *testutil.FakeCourseRepo) {
	t.Helper()
	repo := &testutil.FakeCourseRepo{}
	return NewCourseService(repo, zap.NewNop()), repo
}

func sampleCourse() *model.Course {
	return &model.Course{
		CourseCode: "CS301",
		Name:       "Operating Systems",
		Department: "Computer Science",
		Credits:    4,
		Semester:   "Fall 2025",
		FacultyID:  1,
		Schedule:   `{"Mon":"10:00","Wed":"10:00"}`,
		Room:       "ECR 7",
	}
}

func TestCreateCourseAdminOnly(t *testing.T) {
	svc, _ := newCourseFixture(t)
	ctx := context.Background()

	student := model.Identity{ID: 1, Role: model.RoleStudent}
	_, err := svc.Create(ctx, student, sampleCourse())
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	created, err := svc.Create(ctx, adminActor, sampleCourse())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.Create(ctx, adminActor, sampleCourse())
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestCreateCourseValidation(t *testing.T) {
	svc, _ := newCourseFixture(t)

	course := sampleCourse()
	course.CourseCode = " "
	_, err := svc.Create(context.Background(), adminActor, course)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	course = sampleCourse()
	course.Credits = 0
	_, err = svc.Create(context.Background(), adminActor, course)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestEnroll(t *testing.T) {
	svc, _ := newCourseFixture(t)
	ctx := context.Background()

	course, err := svc.Create(ctx, adminActor, sampleCourse())
	require.NoError(t, err)

	enrollment, err := svc.Enroll(ctx, 5, course.ID)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentStatusActive, enrollment.Status)

	// Enrolling twice is a conflict.
	_, err = svc.Enroll(ctx, 5, course.ID)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// Unknown course is not found.
	_, err = svc.Enroll(ctx, 5, course.ID+100)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	courses, err := svc.EnrolledCourses(ctx, 5)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "CS301", courses[0].CourseCode)
}

func TestListCoursesBySemester(t *testing.T) {
	svc, _ := newCourseFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, adminActor, sampleCourse())
	require.NoError(t, err)

	spring := sampleCourse()
	spring.CourseCode = "CS302"
	spring.Semester = "Spring 2026"
	_, err = svc.Create(ctx, adminActor, spring)
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	fall, err := svc.List(ctx, "Fall 2025")
	require.NoError(t, err)
	require.Len(t, fall, 1)
	assert.Equal(t, "CS301", fall[0].CourseCode)
}
