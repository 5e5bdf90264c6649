package record

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/mrj0/vinyl/field"
	"github.com/mrj0/vinyl/internal/logging"
)

// Record is one row bound to a Schema. It owns its values; the schema only
// describes them. A Record is not safe for concurrent mutation.
type Record struct {
	schema *Schema
	values []field.Value
}

// Arg is a construction argument: a run of positional values or one named value.
type Arg struct {
	positional []any
	name       string
	value      any
	named      bool
}

// Positional supplies values in schema order, as split from a line of text.
func Positional(values ...any) Arg {
	return Arg{positional: values}
}

// Named supplies one value by case-insensitive field name.
func Named(name string, value any) Arg {
	return Arg{name: name, value: value, named: true}
}

// New creates a record holding every field's default and then applies args
// as Load does.
func (s *Schema) New(args ...Arg) (*Record, error) {
	r := &Record{
		schema: s,
		values: make([]field.Value, len(s.fields)),
	}
	for i, f := range s.fields {
		r.values[i] = f.Initial()
	}

	if err := r.Load(args...); err != nil {
		return nil, err
	}

	return r, nil
}

// Load assigns every positional value in order to positions 0, 1, 2, ...
// and then every named value in the order given. Values that are not
// assigned keep what the record already holds.
//
// Load stops at the first failure. Assignments made before it are kept, so a
// caller that needs all-or-nothing loading should Snapshot first and Restore
// on error.
func (r *Record) Load(args ...Arg) error {
	var (
		positional []any
		named      []Arg
	)
	for _, a := range args {
		if a.named {
			named = append(named, a)
			continue
		}
		positional = append(positional, a.positional...)
	}

	for i, v := range positional {
		if i >= len(r.values) {
			logging.L().Error().
				Str("record", r.schema.name).
				Int("index", i).
				Interface("value", v).
				Msg("positional value out of range")

			return r.schema.indexRange(i, v)
		}

		if err := r.SetAt(i, v); err != nil {
			return err
		}
	}

	for _, a := range named {
		if err := r.Set(a.name, a.value); err != nil {
			return err
		}
	}

	return nil
}

// Schema returns the record's type.
func (r *Record) Schema() *Schema { return r.schema }

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.values) }

// Get returns the value of the named field. Names are case-insensitive.
func (r *Record) Get(name string) (field.Value, error) {
	i, ok := r.schema.Index(name)
	if !ok {
		return field.Null, r.schema.unknownField(name, nil)
	}

	return r.values[i], nil
}

// At returns the value at schema position i.
func (r *Record) At(i int) (field.Value, error) {
	if i < 0 || i >= len(r.values) {
		return field.Null, r.schema.indexRange(i, nil)
	}

	return r.values[i], nil
}

// Set coerces raw through the named field's pipeline and stores the result.
// On error the stored value is unchanged.
func (r *Record) Set(name string, raw any) error {
	i, ok := r.schema.Index(name)
	if !ok {
		return r.schema.unknownField(name, raw)
	}

	return r.store(i, raw)
}

// SetAt coerces raw through the pipeline of the field at position i and
// stores the result. On error the stored value is unchanged.
func (r *Record) SetAt(i int, raw any) error {
	if i < 0 || i >= len(r.values) {
		return r.schema.indexRange(i, raw)
	}

	return r.store(i, raw)
}

func (r *Record) store(i int, raw any) error {
	v, err := r.schema.fields[i].Coerce(raw)
	if err != nil {
		return err
	}
	r.values[i] = v

	return nil
}

// Delete always fails: fields of a record cannot be removed.
func (r *Record) Delete(name string) error {
	return fmt.Errorf("%s: cannot delete field %q: %w", r.schema.name, name, errors.ErrUnsupported)
}

// Values yields the current values in schema order. Each iteration reads the
// record afresh, so it reflects assignments made since the previous one.
func (r *Record) Values() iter.Seq[field.Value] {
	return func(yield func(field.Value) bool) {
		for i := range r.values {
			if !yield(r.values[i]) {
				return
			}
		}
	}
}

// All yields field names with their current values in schema order.
func (r *Record) All() iter.Seq2[string, field.Value] {
	return func(yield func(string, field.Value) bool) {
		for i, f := range r.schema.fields {
			if !yield(f.Name(), r.values[i]) {
				return
			}
		}
	}
}

// Strings returns the current values as text, with null rendered as null.
// Joining them with a delimiter, or concatenating them for fixed-width
// layouts, reproduces the line.
func (r *Record) Strings(null string) []string {
	return lo.Map(r.values, func(v field.Value, _ int) string { return v.Or(null) })
}

// Snapshot returns a copy of the current values.
func (r *Record) Snapshot() []field.Value {
	return slices.Clone(r.values)
}

// Restore puts back values taken with Snapshot. Every value is coerced again
// before any is stored, so Restore either applies completely or not at all.
func (r *Record) Restore(values []field.Value) error {
	if len(values) != len(r.values) {
		return fmt.Errorf("%s: restore needs %d values, got %d", r.schema.name, len(r.values), len(values))
	}

	restored := make([]field.Value, len(values))
	for i, v := range values {
		c, err := r.schema.fields[i].Coerce(v)
		if err != nil {
			return err
		}
		restored[i] = c
	}
	copy(r.values, restored)

	return nil
}

// Clone returns an independent record of the same type with the same values.
func (r *Record) Clone() *Record {
	return &Record{schema: r.schema, values: slices.Clone(r.values)}
}

// Equal reports whether both records share a schema and hold equal values.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}

	return r.schema == other.schema && slices.Equal(r.values, other.values)
}

// Validate runs the required-check of every field in schema order and
// returns the first failure. It does not modify the record.
func (r *Record) Validate() error {
	for i, f := range r.schema.fields {
		if err := f.Check(r.values[i]); err != nil {
			return err
		}
	}

	return nil
}

// ValidateAll is like Validate but reports every failing field.
func (r *Record) ValidateAll() error {
	var errs []error
	for i, f := range r.schema.fields {
		if err := f.Check(r.values[i]); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// String renders name=value pairs in schema order, e.g. LeadFormat(error_code=error, comment_txt=<null>).
func (r *Record) String() string {
	parts := make([]string, 0, len(r.values))
	for name, v := range r.All() {
		parts = append(parts, name+"="+v.String())
	}

	return fmt.Sprintf("%s(%s)", r.schema.name, strings.Join(parts, ", "))
}
