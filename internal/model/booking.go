package model

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed" // mentor bookings only
)

// Active reports whether the status counts against the one-active-booking
// rule for a slot. Rejected and completed bookings free the slot.
func (s BookingStatus) Active() bool {
	return s == BookingStatusPending || s == BookingStatusApproved
}

// Terminal reports whether no further transition is allowed.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusApproved || s == BookingStatusRejected || s == BookingStatusCompleted
}

// MentorBooking is an appointment request against a faculty mentor.
// Date is "YYYY-MM-DD", Time is a clock label such as "09:00 AM".
type MentorBooking struct {
	ID              int64         `json:"id"`
	UserID          int64         `json:"userId"`
	MentorID        int64         `json:"mentorId"`
	Date            string        `json:"date"`
	Time            string        `json:"time"`
	Purpose         string        `json:"purpose"`
	Status          BookingStatus `json:"status"`
	RejectionReason *string       `json:"rejectionReason"`
	CreatedAt       time.Time     `json:"createdAt"`

	// Joined for the faculty inbox, nil elsewhere.
	Student *Identity `json:"student,omitempty"`
}

// ClassroomBooking is a room reservation. TimeSlot is a label from the
// fixed slot catalog, e.g. "08:30-09:30".
type ClassroomBooking struct {
	ID              int64         `json:"id"`
	UserID          int64         `json:"userId"`
	Classroom       string        `json:"classroom"`
	Date            string        `json:"date"`
	TimeSlot        string        `json:"timeSlot"`
	AlternativeName *string       `json:"alternativeName"`
	AlternativeID   *string       `json:"alternativeId"`
	Purpose         string        `json:"purpose"`
	Status          BookingStatus `json:"status"`
	RejectionReason *string       `json:"rejectionReason"`
	CreatedAt       time.Time     `json:"createdAt"`
}
