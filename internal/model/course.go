package model

import "time"

type Course struct {
	ID          int64   `json:"id"`
	CourseCode  string  `json:"courseCode"`
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Credits     int     `json:"credits"`
	Description *string `json:"description"`
	Semester    string  `json:"semester"` // e.g. "Fall 2025"
	FacultyID   int64   `json:"facultyId"`
	Schedule    string  `json:"schedule"` // JSON string of weekly schedule
	Room        string  `json:"room"`
}

type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
)

// StudentEnrollment links a student to a course. (UserID, CourseID) is the
// primary key, so a student cannot enroll in the same course twice.
type StudentEnrollment struct {
	UserID     int64            `json:"userId"`
	CourseID   int64            `json:"courseId"`
	EnrolledAt time.Time        `json:"enrolledAt"`
	Grade      *string          `json:"grade"`
	Status     EnrollmentStatus `json:"status"`
}
