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

// minClassroomPurposeLen matches the reservation form's validation.
const minClassroomPurposeLen = 10

// ClassroomService resolves room availability and mediates reservations.
// The invariant matches mentor bookings: one active booking per
// (classroom, date, timeSlot).
type ClassroomService struct {
	bookingRepo repository.ClassroomBookingRepository
	logger      *zap.Logger
}

func NewClassroomService(bookingRepo repository.ClassroomBookingRepository, logger *zap.Logger) *ClassroomService {
	return &ClassroomService{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Available returns the rooms bookable for a date and slot. Slots with a
// declared override expose exactly the override subset, regardless of
// booking state; every other slot is the full inventory minus rooms with
// an active booking.
func (s *ClassroomService) Available(ctx context.Context, date, timeSlot string) ([]string, error) {
	if !catalog.ValidClassroomSlot(timeSlot) {
		return nil, apperr.Validationf("time slot %q is not a bookable slot", timeSlot)
	}

	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	eligible, overridden := catalog.EligibleClassrooms(timeSlot)
	if overridden {
		return eligible, nil
	}

	booked, err := s.bookingRepo.BookedClassrooms(ctx, date, timeSlot)
	if err != nil {
		return nil, fmt.Errorf("booked classrooms: %w", err)
	}

	taken := make(map[string]bool, len(booked))
	for _, room := range booked {
		taken[room] = true
	}

	available := make([]string, 0, len(eligible))
	for _, room := range eligible {
		if !taken[room] {
			available = append(available, room)
		}
	}

	return available, nil
}

// Book reserves a classroom. The booking starts pending and waits for an
// administrator decision.
func (s *ClassroomService) Book(ctx context.Context, userID int64, classroom, date, timeSlot, purpose string, alternativeName, alternativeID *string) (*model.ClassroomBooking, error) {
	if len(strings.TrimSpace(purpose)) < minClassroomPurposeLen {
		return nil, apperr.Validationf("purpose must be at least %d characters", minClassroomPurposeLen)
	}
	if !catalog.ValidClassroomSlot(timeSlot) {
		return nil, apperr.Validationf("time slot %q is not a bookable slot", timeSlot)
	}
	if !catalog.ValidClassroom(classroom) {
		return nil, apperr.NotFoundf("classroom %q does not exist", classroom)
	}

	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	eligible, _ := catalog.EligibleClassrooms(timeSlot)
	if !containsString(eligible, classroom) {
		return nil, apperr.Validationf("classroom %q is not bookable in the %s slot", classroom, timeSlot)
	}

	booked, err := s.bookingRepo.BookedClassrooms(ctx, date, timeSlot)
	if err != nil {
		return nil, fmt.Errorf("booked classrooms: %w", err)
	}
	if containsString(booked, classroom) {
		return nil, apperr.Conflictf("this classroom is already booked for the selected time slot")
	}

	booking := &model.ClassroomBooking{
		UserID:          userID,
		Classroom:       classroom,
		Date:            date,
		TimeSlot:        timeSlot,
		AlternativeName: alternativeName,
		AlternativeID:   alternativeID,
		Purpose:         strings.TrimSpace(purpose),
		Status:          model.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if err == repository.ErrDuplicate {
			return nil, apperr.Conflictf("this classroom is already booked for the selected time slot")
		}
		return nil, fmt.Errorf("create classroom booking: %w", err)
	}

	s.logger.Info("Classroom booked",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("user_id", userID),
		zap.String("classroom", classroom),
		zap.String("date", date),
		zap.String("time_slot", timeSlot),
	)

	return booking, nil
}

// ListForUser returns the requester's own reservations, newest first.
func (s *ClassroomService) ListForUser(ctx context.Context, userID int64) ([]*model.ClassroomBooking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// Transition approves or rejects a reservation. Classroom decisions are an
// administrator responsibility; pending is the only state that can move,
// and rejection requires a reason.
func (s *ClassroomService) Transition(ctx context.Context, actor model.Identity, bookingID int64, newStatus model.BookingStatus, rejectionReason string) (*model.ClassroomBooking, error) {
	if actor.Role != model.RoleAdmin {
		return nil, apperr.Forbiddenf("administrators only")
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get classroom booking: %w", err)
	}
	if booking == nil {
		return nil, apperr.NotFoundf("booking not found")
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
	default:
		return nil, apperr.Validationf("status %q is not a valid transition target", newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus, reason); err != nil {
		return nil, fmt.Errorf("update classroom booking status: %w", err)
	}

	s.logger.Info("Classroom booking transitioned",
		zap.Int64("booking_id", bookingID),
		zap.Int64("admin_id", actor.ID),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(newStatus)),
	)

	booking.Status = newStatus
	booking.RejectionReason = reason
	return booking, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
