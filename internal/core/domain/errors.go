package domain

import "errors"

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation error")

// ValidationError reports a malformed campaign or partial update. Section
// is empty for top-level fields.
type ValidationError struct {
	Section string
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	path := e.Field
	if e.Section != "" {
		path = e.Section
		if e.Field != "" {
			path += "." + e.Field
		}
	}
	if path == "" {
		return "invalid campaign: " + e.Reason
	}
	return "invalid " + path + ": " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
