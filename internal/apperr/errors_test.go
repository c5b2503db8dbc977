package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapHelpers(t *testing.T) {
	err := Validationf("purpose must be at least %d characters", 10)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "purpose must be at least 10 characters", Message(err))

	err = Conflictf("this time slot is already booked")
	assert.ErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Equal(t, "this time slot is already booked", Message(err))
}

func TestSentinelSurvivesFurtherWrapping(t *testing.T) {
	err := fmt.Errorf("create booking: %w", NotFoundf("mentor not found"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMessagePassesThroughPlainErrors(t *testing.T) {
	err := errors.New("connection reset")
	assert.Equal(t, "connection reset", Message(err))
}
