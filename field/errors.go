package field

import "fmt"

// ValidationError reports a field-level value problem, either raised while
// coercing an assignment or by an explicit required-check.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (f *Field) invalid(format string, args ...any) error {
	return ValidationError{Field: f.name, Message: fmt.Sprintf(format, args...)}
}
