package service

import (
	"strings"
	"time"

	"github.com/campusdesk/campus-portal/internal/apperr"
)

var acceptedDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"02-01-2006",
}

// normalizeDate canonicalizes a calendar day to "YYYY-MM-DD". Slot
// uniqueness compares dates as strings, so every write and lookup must go
// through the same canonical form.
func normalizeDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", apperr.Validationf("date is required")
	}
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", apperr.Validationf("date %q is not a valid calendar date", raw)
}
