package installer

import "fmt"

// PrereqError reports a required tool that is missing and could not be
// installed. The CLI maps it to exit code 2.
type PrereqError struct {
	Message string
	Cause   error
}

func (e *PrereqError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PrereqError) Unwrap() error {
	return e.Cause
}

// NewPrereqError creates a PrereqError with the given message and optional
// underlying cause.
func NewPrereqError(message string, cause error) *PrereqError {
	return &PrereqError{Message: message, Cause: cause}
}
