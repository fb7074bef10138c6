package kova

import (
	"errors"
	"strings"
)

// ValidationError is the error returned by Validate for a failed run. It
// exposes the full ordered message list of the validation.
type ValidationError struct {
	Messages []Message
}

// Error implements the error interface, summarizing every violation with
// its path.
func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Messages))
	for i, m := range e.Messages {
		if name := m.Path.FullName(); name != "" {
			parts[i] = name + ": " + m.Text()
			continue
		}
		parts[i] = m.Text()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError extracts a *ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
