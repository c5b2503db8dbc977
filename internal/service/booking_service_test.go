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

func newBookingFixture(t *testing.T) (*BookingService, *testutil.FakeMentorRepo, *testutil.FakeMentorBookingRepo) {
	t.Helper()
	mentorRepo := &testutil.FakeMentorRepo{}
	bookingRepo := &testutil.FakeMentorBookingRepo{}
	svc := NewBookingService(mentorRepo, bookingRepo, zap.NewNop())
	return svc, mentorRepo, bookingRepo
}

func seedMentor(t *testing.T, repo *testutil.FakeMentorRepo) *model.FacultyMentor {
	t.Helper()
	mentor := &model.FacultyMentor{
		Name:         "Dr. Rajesh Kumar",
		Department:   "Computer Science",
		Email:        "r.kumar@university.ac.in",
		Office:       "CS Block, Room 204",
		Availability: []byte(`[]`),
	}
	require.NoError(t, repo.Create(context.Background(), mentor))
	return mentor
}

func facultyActor(mentor *model.FacultyMentor) model.Identity {
	return model.Identity{ID: 99, Email: mentor.Email, Role: model.RoleFaculty}
}

func TestCreateMentorBooking(t *testing.T) {
	svc, mentorRepo, _ := newBookingFixture(t)
	mentor := seedMentor(t, mentorRepo)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, mentor.ID, "2025-06-01", "09:00 AM", "Project guidance")
	require.NoError(t, err)

	assert.Equal(t, model.BookingStatusPending, booking.Status)
	assert.Equal(t, "2025-06-01", booking.Date)
	assert.NotZero(t, booking.ID)
}

func TestCreateMentorBookingConflict(t *testing.T) {
	svc, mentorRepo, _ := newBookingFixture(t)
	mentor := seedMentor(t, mentorRepo)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, mentor.ID, "2025-06-01", "09:00 AM", "Project guidance")
	require.NoError(t, err)

	_, err = svc.Create(ctx, 2, mentor.ID, "2025-06-01", "09:00 AM", "Thesis discussion")
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// A different time on the same day is fine.
	_, err = svc.Create(ctx, 2, mentor.ID, "2025-06-01", "10:00 AM", "Thesis discussion")
	assert.NoError(t, err)
}

func TestCreateMentorBookingValidation(t *testing.T) {
	svc, mentorRepo, _ := newBookingFixture(t)
	mentor := seedMentor(t, mentorRepo)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, mentor.ID, "2025-06-01", "09:00 AM", "hi")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Create(ctx, 1, mentor.ID, "2025-06-01", "09:15 AM", "Project guidance")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Create(ctx, 1, mentor.ID, "June 1st", "09:00 AM", "Project guidance")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Create(ctx, 1, mentor.ID+100, "2025-06-01", "09:00 AM", "Project guidance")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateMentorBookingNormalizesDate(t *testing.T) {
	svc, mentorRepo, _ := newBookingFixture(t)
	mentor := seedMentor(t, mentorRepo)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, mentor.ID, "2025/06/01", "09:00 AM", "Project guidance")
	require.NoError(t, err)

	// Same day in the canonical format must collide.
	_, err = svc.Create(ctx, 2, mentor.ID, "2025-06-01", "09:00 AM", "Thesis discussion")
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestRejectionReopensSlot(t *testing.T) {
	svc, mentorRepo, _ := newBookingFixture(t)
	mentor := seedMentor(t, mentorRepo)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, mentor.ID, "2025-06-01", "09:00 AM", "Project guidance")
	require.NoError(t, err)

	_, err = svc.Transition(ctx, facultyActor(mentor), booking.ID, model.BookingStatusRejected, "Schedule conflict")
	require.NoError(t, err)

	// The triple is bookable again by a third party.
	rebooked, err := svc.Create(ctx, 3, mentor.ID, "2025-06-01", "09:00 AM", "Internship advice")
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusPending, rebooked.Status)
}

func TestTransitionApprove(t *testing.T) {
	svc, mentorRepo, _ := newBookingFixture(t)
	mentor := seedMentor(t, mentorRepo)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, mentor.ID, "2025-06-01", "09:00 AM", "Project guidance")
	require.NoError(t, err)

	updated, err := svc.Transition(ctx, facultyActor(mentor), booking.ID, model.BookingStatusApproved, "")
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusApproved, updated.Status)

	times, err := svc.AvailableTimes(ctx, mentor.ID, "2025-06-01")
	require.NoError(t, err)
	assert.NotContains(t, times, "09:00 AM")
	assert.Contains(t, times, "10:00 AM")
}

func TestTransitionRejectRequiresReason(t *testing.T) {
	svc, mentorRepo, bookingRepo := newBookingFixture(t)
	mentor := seedMentor(t, mentorRepo)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, mentor.ID, "2025-06-01", "09:00 AM", "Project guidance")
	require.NoError(t, err)

	_, err = svc.Transition(ctx, facultyActor(mentor), booking.ID, model.BookingStatusRejected, "   ")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	// The record must be untouched.
	stored, err := bookingRepo.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusPending, stored.Status)
	assert.Nil(t, stored.RejectionReason)
}

func TestTransitionRejectPersistsReason(t *testing.T) {
	svc, mentorRepo, bookingRepo := newBookingFixture(t)
	mentor := seedMentor(t, mentorRepo)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, mentor.ID, "2025-06-01", "09:00 AM", "Project guidance")
	require.NoError(t, err)

	updated, err := svc.Transition(ctx, facultyActor(mentor), booking.ID, model.BookingStatusRejected, "Schedule conflict")
	require.NoError(t, err)
	require.NotNil(t, updated.RejectionReason)
	assert.Equal(t, "Schedule conflict", *updated.RejectionReason)

	stored, err := bookingRepo.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusRejected, stored.Status)
}

func TestTransitionTerminalIsConflict(t *testing.T) {
	svc, mentorRepo, _ := newBookingFixture(t)
	mentor := seedMentor(t, mentorRepo)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, mentor.ID, "2025-06-01", "09:00 AM", "Project guidance")
	require.NoError(t, err)

	_, err = svc.Transition(ctx, facultyActor(mentor), booking.ID, model.BookingStatusRejected, "Schedule conflict")
	require.NoError(t, err)

	_, err = svc.Transition(ctx, facultyActor(mentor), booking.ID, model.BookingStatusApproved, "")
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestTransitionCompleted(t *testing.T) {
	svc, mentorRepo, _ := newBookingFixture(t)
	mentor := seedMentor(t, mentorRepo)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, mentor.ID, "2025-06-01", "09:00 AM", "Project guidance")
	require.NoError(t, err)

	// Completion is only reachable from approved.
	_, err = svc.Transition(ctx, facultyActor(mentor), booking.ID, model.BookingStatusCompleted, "")
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = svc.Transition(ctx, facultyActor(mentor), booking.ID, model.BookingStatusApproved, "")
	require.NoError(t, err)

	updated, err := svc.Transition(ctx, facultyActor(mentor), booking.ID, model.BookingStatusCompleted, "")
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCompleted, updated.Status)

	// A completed meeting no longer blocks the slot.
	_, err = svc.Create(ctx, 4, mentor.ID, "2025-06-01", "09:00 AM", "Follow-up meeting")
	assert.NoError(t, err)
}

func TestTransitionAuthorization(t *testing.T) {
	svc, mentorRepo, _ := newBookingFixture(t)
	mentor := seedMentor(t, mentorRepo)
	other := &model.FacultyMentor{Name: "Dr. Meena Iyer", Email: "m.iyer@university.ac.in", Availability: []byte(`[]`)}
	require.NoError(t, mentorRepo.Create(context.Background(), other))
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, mentor.ID, "2025-06-01", "09:00 AM", "Project guidance")
	require.NoError(t, err)

	// Students cannot transition at all.
	student := model.Identity{ID: 1, Role: model.RoleStudent}
	_, err = svc.Transition(ctx, student, booking.ID, model.BookingStatusApproved, "")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// Another mentor cannot decide someone else's booking.
	_, err = svc.Transition(ctx, facultyActor(other), booking.ID, model.BookingStatusApproved, "")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// Faculty without a mentor profile has nothing to act as.
	stranger := model.Identity{ID: 7, Email: "ghost@university.ac.in", Role: model.RoleFaculty}
	_, err = svc.Transition(ctx, stranger, booking.ID, model.BookingStatusApproved, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestTransitionUnknownBooking(t *testing.T) {
	svc, mentorRepo, _ := newBookingFixture(t)
	mentor := seedMentor(t, mentorRepo)

	_, err := svc.Transition(context.Background(), facultyActor(mentor), 404, model.BookingStatusApproved, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAvailableTimesIdempotent(t *testing.T) {
	svc, mentorRepo, _ := newBookingFixture(t)
	mentor := seedMentor(t, mentorRepo)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, mentor.ID, "2025-06-01", "11:00 AM", "Project guidance")
	require.NoError(t, err)

	first, err := svc.AvailableTimes(ctx, mentor.ID, "2025-06-01")
	require.NoError(t, err)
	second, err := svc.AvailableTimes(ctx, mentor.ID, "2025-06-01")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 8)
}
