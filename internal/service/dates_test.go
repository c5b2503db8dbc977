package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusdesk/campus-portal/internal/apperr"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-06-01", "2025-06-01"},
		{"2025/06/01", "2025-06-01"},
		{"01-06-2025", "2025-06-01"},
		{"2025-06-01T09:00:00Z", "2025-06-01"},
		{"  2025-06-01  ", "2025-06-01"},
	}

	for _, tt := range tests {
		got, err := normalizeDate(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNormalizeDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "June 1st", "2025-13-45", "tomorrow"} {
		_, err := normalizeDate(in)
		assert.ErrorIs(t, err, apperr.ErrValidation, in)
	}
}
