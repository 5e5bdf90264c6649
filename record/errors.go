package record

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownField   = errors.New("unknown field")
	ErrIndexRange     = errors.New("index out of range")
	ErrDuplicateField = errors.New("duplicate field")
)

// MismatchError reports an access that does not fit the record's schema:
// an unknown field name, or a position past the last field.
type MismatchError struct {
	Record string
	// Field is the name as requested, empty for positional access.
	Field string
	// Index is the requested position. It is -1 for access by name.
	Index int
	// Len is the number of fields in the schema.
	Len int
	// Value is the value being assigned, nil for reads.
	Value any
	// Suggestions are known field names close to Field.
	Suggestions []string
	// Err is ErrUnknownField or ErrIndexRange.
	Err error
}

func (e *MismatchError) Error() string {
	var b strings.Builder

	b.WriteString(e.Record)
	b.WriteString(": ")

	if errors.Is(e.Err, ErrIndexRange) {
		fmt.Fprintf(&b, "index %d out of range [0, %d)", e.Index, e.Len)
	} else {
		fmt.Fprintf(&b, "unknown field %q", e.Field)
	}

	if e.Value != nil {
		fmt.Fprintf(&b, " setting value %q", fmt.Sprint(e.Value))
	}

	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}

	return b.String()
}

func (e *MismatchError) Unwrap() error {
	return e.Err
}
