package domain

import "fmt"

// UsageError reports malformed or unsupported installer arguments.
// It is always raised before any destination is touched.
type UsageError struct {
	Message string
}

// NewUsageError formats a UsageError.
func NewUsageError(format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

func (e *UsageError) Error() string {
	return e.Message
}
