package record

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/mrj0/vinyl/field"
	"github.com/mrj0/vinyl/internal/common"
	"github.com/mrj0/vinyl/internal/logging"
	"github.com/mrj0/vinyl/internal/match"
)

// maxSuggestions caps the "did you mean" list of unknown-field errors.
const maxSuggestions = 3

// Schema is the ordered, immutable field list of one record type.
// It is built once and may be shared by any number of records and goroutines.
type Schema struct {
	name   string
	parent *Schema
	fields []*field.Field
	index  map[string]int // lower-cased name -> position
}

// NewSchema builds a record type from fields in declaration order.
func NewSchema(name string, fields ...*field.Field) (*Schema, error) {
	return build(name, nil, fields)
}

// MustSchema is like NewSchema but panics on error. It is meant for
// package-level record type declarations.
func MustSchema(name string, fields ...*field.Field) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}

	return s
}

// Extend builds a derived record type: the parent's fields in the parent's
// order, then fields. A field whose name matches a parent field replaces that
// field's kind and options but keeps its position.
func (s *Schema) Extend(name string, fields ...*field.Field) (*Schema, error) {
	return build(name, s, fields)
}

func build(name string, parent *Schema, decls []*field.Field) (*Schema, error) {
	s := &Schema{
		name:   name,
		parent: parent,
		index:  make(map[string]int, len(decls)),
	}

	if parent != nil {
		s.fields = make([]*field.Field, 0, len(parent.fields)+len(decls))
		for _, f := range parent.fields {
			// each schema owns its descriptors
			own, err := f.Bind(f.Name(), f.Position())
			if err != nil {
				return nil, fmt.Errorf("%s: field %q: %w", name, f.Name(), err)
			}
			s.fields = append(s.fields, own)
		}
		maps.Copy(s.index, parent.index)
	}

	for i, decl := range decls {
		if decl == nil {
			return nil, fmt.Errorf("%s: field #%d is nil", name, i)
		}
		if match.LowerName(decl.Name()) == "" {
			return nil, fmt.Errorf("%s: field #%d has no name", name, i)
		}
	}

	dups := common.Duplicates(decls, func(f *field.Field) string { return match.LowerName(f.Name()) })
	if d, ok := common.First(dups); ok {
		return nil, fmt.Errorf("%s: field %q declared twice: %w", name, d.Name(), ErrDuplicateField)
	}

	for _, decl := range decls {
		key := match.LowerName(decl.Name())

		pos, override := s.index[key]
		if !override {
			pos = len(s.fields)
			s.fields = append(s.fields, nil)
		}

		bound, err := decl.Bind(match.LowerName(decl.Name()), pos)
		if err != nil {
			return nil, fmt.Errorf("%s: field %q: %w", name, decl.Name(), err)
		}

		s.fields[pos] = bound
		s.index[key] = pos
	}

	logging.L().Debug().
		Str("record", name).
		Int("fields", len(s.fields)).
		Bool("extends", parent != nil).
		Msg("schema built")

	return s, nil
}

// Name returns the record type name.
func (s *Schema) Name() string { return s.name }

// Parent returns the schema this one extends, or nil.
func (s *Schema) Parent() *Schema { return s.parent }

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Field returns the field at position i, or nil when i is out of range.
func (s *Schema) Field(i int) *field.Field {
	if i < 0 || i >= len(s.fields) {
		return nil
	}

	return s.fields[i]
}

// Index returns the position of the named field. Names are case-insensitive.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.index[match.LowerName(name)]
	return i, ok
}

// Lookup returns the named field. Names are case-insensitive.
func (s *Schema) Lookup(name string) (*field.Field, bool) {
	i, ok := s.Index(name)
	if !ok {
		return nil, false
	}

	return s.fields[i], true
}

// Fields returns the fields in position order.
func (s *Schema) Fields() []*field.Field {
	return slices.Clone(s.fields)
}

// Names returns the canonical field names in position order.
func (s *Schema) Names() []string {
	return lo.Map(s.fields, func(f *field.Field, _ int) string { return f.Name() })
}

func (s *Schema) String() string {
	return fmt.Sprintf("%s[%s]", s.name, strings.Join(s.Names(), ", "))
}

func (s *Schema) unknownField(name string, value any) *MismatchError {
	return &MismatchError{
		Record:      s.name,
		Field:       name,
		Index:       -1,
		Len:         len(s.fields),
		Value:       value,
		Suggestions: match.Suggest(name, s.Names(), maxSuggestions),
		Err:         ErrUnknownField,
	}
}

func (s *Schema) indexRange(i int, value any) *MismatchError {
	return &MismatchError{
		Record: s.name,
		Index:  i,
		Len:    len(s.fields),
		Value:  value,
		Err:    ErrIndexRange,
	}
}
