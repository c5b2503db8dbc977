package apperr

import "strings"

// Message returns the caller-facing part of a taxonomy error, without the
// sentinel prefix added by the wrap helpers.
func Message(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrValidation, ErrConflict, ErrNotFound, ErrForbidden} {
		if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
			return rest
		}
	}
	return msg
}
