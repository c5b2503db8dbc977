package model

import "encoding/json"

// FacultyMentor is a bookable mentor from the faculty catalog.
type FacultyMentor struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Department     string          `json:"department"`
	Email          string          `json:"email"`
	Office         string          `json:"office"`
	Specialization string          `json:"specialization"`
	Availability   json.RawMessage `json:"availability"` // weekly slots, stored as JSON
	Avatar         string          `json:"avatar,omitempty"`
}
