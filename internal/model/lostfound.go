package model

import "time"

type LostFoundType string

const (
	LostFoundTypeLost  LostFoundType = "lost"
	LostFoundTypeFound LostFoundType = "found"
)

type LostFoundStatus string

const (
	LostFoundStatusActive   LostFoundStatus = "active"
	LostFoundStatusClaimed  LostFoundStatus = "claimed"
	LostFoundStatusResolved LostFoundStatus = "resolved"
)

type LostFoundItem struct {
	ID                 int64           `json:"id"`
	UserID             int64           `json:"userId"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Category           string          `json:"category"`
	Location           string          `json:"location"`
	SubmissionLocation *string         `json:"submissionLocation"` // Ecole or Library
	Date               string          `json:"date"`
	Type               LostFoundType   `json:"type"`
	Status             LostFoundStatus `json:"status"`
	Image              *string         `json:"image"` // data URL
	ContactInfo        string          `json:"contactInfo"`
	OtherLocation      *string         `json:"otherLocation"`
	CreatedAt          time.Time       `json:"createdAt"`
}
