package config

import "fmt"

// ValidationError reports input the user can fix: an unknown platform, a bad
// flag value, a missing argument. The CLI maps it to exit code 2 so scripts
// can tell usage mistakes apart from runtime failures.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a ValidationError with the given message and
// optional underlying cause.
func NewValidationError(message string, cause error) *ValidationError {
	return &ValidationError{Message: message, Cause: cause}
}
