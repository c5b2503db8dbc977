package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/campusdesk/campus-portal/internal/apperr"
	"github.com/campusdesk/campus-portal/internal/catalog"
	"github.com/campusdesk/campus-portal/internal/model"
	"github.com/campusdesk/campus-portal/internal/repository"
)

// minMentorPurposeLen matches the booking form's validation.
const minMentorPurposeLen = 5

// BookingService mediates mentor appointment bookings: it decides slot
// availability and guards the rule that a (mentor, date, time) triple holds
// at most one pending or approved booking at a time.
type BookingService struct {
	mentorRepo  repository.MentorRepository
	bookingRepo repository.MentorBookingRepository
	logger      *zap.Logger
}

func NewBookingService(
	mentorRepo repository.MentorRepository,
	bookingRepo repository.MentorBookingRepository,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		mentorRepo:  mentorRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create books a mentor slot for a student. The booking always starts
// pending; the mentor approves or rejects it later.
func (s *BookingService) Create(ctx context.Context, userID, mentorID int64, date, timeLabel, purpose string) (*model.MentorBooking, error) {
	if len(strings.TrimSpace(purpose)) < minMentorPurposeLen {
		return nil, apperr.Validationf("purpose must be at least %d characters", minMentorPurposeLen)
	}
	if !catalog.ValidMentorTime(timeLabel) {
		return nil, apperr.Validationf("time %q is not a bookable meeting time", timeLabel)
	}

	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	mentor, err := s.mentorRepo.GetByID(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("get mentor: %w", err)
	}
	if mentor == nil {
		return nil, apperr.NotFoundf("mentor not found")
	}

	// Re-derive the active set at call time. The partial unique index is
	// the real guard; this check just produces the friendly answer first.
	existing, err := s.bookingRepo.ListByMentorDate(ctx, mentorID, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	for _, b := range existing {
		if b.Time == timeLabel && b.Status.Active() {
			return nil, apperr.Conflictf("this time slot is already booked")
		}
	}

	booking := &model.MentorBooking{
		UserID:   userID,
		MentorID: mentorID,
		Date:     date,
		Time:     timeLabel,
		Purpose:  strings.TrimSpace(purpose),
		Status:   model.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if err == repository.ErrDuplicate {
			// Lost the insert race to a concurrent request.
			return nil, apperr.Conflictf("this time slot is already booked")
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("Mentor booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("user_id", userID),
		zap.Int64("mentor_id", mentorID),
		zap.String("date", date),
		zap.String("time", timeLabel),
	)

	return booking, nil
}

// BookedSlots returns every booking for a mentor on a date, so the client
// can grey out taken times.
func (s *BookingService) BookedSlots(ctx context.Context, mentorID int64, date string) ([]*model.MentorBooking, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByMentorDate(ctx, mentorID, date)
}

// AvailableTimes returns the meeting times still open for a mentor on a
// date: the fixed time catalog minus active bookings.
func (s *BookingService) AvailableTimes(ctx context.Context, mentorID int64, date string) ([]string, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByMentorDate(ctx, mentorID, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	taken := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if b.Status.Active() {
			taken[b.Time] = true
		}
	}

	all := catalog.MentorTimes()
	times := make([]string, 0, len(all))
	for _, t := range all {
		if !taken[t] {
			times = append(times, t)
		}
	}

	return times, nil
}

// ListForUser returns the student's own bookings, newest first.
func (s *BookingService) ListForUser(ctx context.Context, userID int64) ([]*model.MentorBooking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// PendingForMentor returns the approval inbox of the faculty member whose
// mentor profile matches the actor's email.
func (s *BookingService) PendingForMentor(ctx context.Context, actor model.Identity) ([]*model.MentorBooking, error) {
	mentor, err := s.mentorOf(ctx, actor)
	if err != nil {
		return nil, err
	}
	return s.bookingRepo.ListPendingByMentor(ctx, mentor.ID)
}

// Transition moves a booking through its state machine. Only the owning
// mentor may act: pending -> approved | rejected, approved -> completed.
// Rejection requires a reason. Acting on an already-finalized booking is a
// conflict, not a silent overwrite.
func (s *BookingService) Transition(ctx context.Context, actor model.Identity, bookingID int64, newStatus model.BookingStatus, rejectionReason string) (*model.MentorBooking, error) {
	mentor, err := s.mentorOf(ctx, actor)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, apperr.NotFoundf("booking not found")
	}
	if booking.MentorID != mentor.ID {
		return nil, apperr.Forbiddenf("you can only update bookings assigned to you")
	}

	var reason *string
	switch newStatus {
	case model.BookingStatusApproved:
		if booking.Status != model.BookingStatusPending {
			return nil, apperr.Conflictf("booking is already %s", booking.Status)
		}
	case model.BookingStatusRejected:
		if booking.Status != model.BookingStatusPending {
			return nil, apperr.Conflictf("booking is already %s", booking.Status)
		}
		trimmed := strings.TrimSpace(rejectionReason)
		if trimmed == "" {
			return nil, apperr.Validationf("rejection reason is required")
		}
		reason = &trimmed
	case model.BookingStatusCompleted:
		if booking.Status != model.BookingStatusApproved {
			return nil, apperr.Conflictf("only approved bookings can be completed")
		}
	default:
		return nil, apperr.Validationf("status %q is not a valid transition target", newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus, reason); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.logger.Info("Mentor booking transitioned",
		zap.Int64("booking_id", bookingID),
		zap.Int64("mentor_id", mentor.ID),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(newStatus)),
	)

	booking.Status = newStatus
	booking.RejectionReason = reason
	return booking, nil
}

func (s *BookingService) mentorOf(ctx context.Context, actor model.Identity) (*model.FacultyMentor, error) {
	if actor.Role != model.RoleFaculty {
		return nil, apperr.Forbiddenf("faculty only")
	}

	mentor, err := s.mentorRepo.GetByEmail(ctx, actor.Email)
	if err != nil {
		return nil, fmt.Errorf("get mentor by email: %w", err)
	}
	if mentor == nil {
		return nil, apperr.NotFoundf("faculty mentor profile not found")
	}

	return mentor, nil
}
