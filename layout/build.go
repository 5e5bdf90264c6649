package layout

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/mrj0/vinyl/field"
	"github.com/mrj0/vinyl/internal/logging"
	"github.com/mrj0/vinyl/internal/match"
	"github.com/mrj0/vinyl/record"
)

var (
	ErrInvalidLayout = errors.New("invalid layout")
	ErrUnknownRecord = errors.New("unknown record")
)

// Layout holds the record types built from one layout file.
type Layout struct {
	schemas []*record.Schema
	index   map[string]int // lower-cased record name -> position
}

// Build validates f and builds a schema for every record, parents before the
// records that extend them.
func Build(f *File) (*Layout, error) {
	diags := Validate(f)
	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}

	order, err := buildOrder(f.Records)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}

	l := &Layout{
		schemas: make([]*record.Schema, len(f.Records)),
		index:   recordIndex(f.Records),
	}

	for _, i := range order {
		rd := f.Records[i]

		fields := make([]*field.Field, 0, len(rd.Fields))
		for _, fd := range rd.Fields {
			fld, err := fd.Field()
			if err != nil {
				return nil, fmt.Errorf("%w: record %q: %w", ErrInvalidLayout, rd.Name, err)
			}
			fields = append(fields, fld)
		}

		var s *record.Schema
		if rd.Extends == "" {
			s, err = record.NewSchema(rd.Name, fields...)
		} else {
			s, err = l.schemas[l.index[match.LowerName(rd.Extends)]].Extend(rd.Name, fields...)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
		}

		l.schemas[i] = s
	}

	logging.L().Info().
		Int("records", len(l.schemas)).
		Int("warnings", len(diags.Warnings)).
		Strs("names", l.Names()).
		Msg("layout built")

	return l, nil
}

// Load reads, validates and builds a layout file.
func Load(path string) (*Layout, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return Build(f)
}

// Schema returns the named record type. Names are case-insensitive.
func (l *Layout) Schema(name string) (*record.Schema, bool) {
	i, ok := l.index[match.LowerName(name)]
	if !ok {
		return nil, false
	}

	return l.schemas[i], true
}

// New creates a record of the named type.
func (l *Layout) New(name string, args ...record.Arg) (*record.Record, error) {
	s, ok := l.Schema(name)
	if !ok {
		err := fmt.Errorf("%w %q", ErrUnknownRecord, name)
		if hint := match.Suggest(name, l.Names(), maxSuggestions); len(hint) > 0 {
			err = fmt.Errorf("%w (did you mean %s?)", err, strings.Join(hint, ", "))
		}

		return nil, err
	}

	return s.New(args...)
}

// Schemas returns the record types in file order.
func (l *Layout) Schemas() []*record.Schema {
	return slices.Clone(l.schemas)
}

// Names returns the record type names in file order.
func (l *Layout) Names() []string {
	return lo.Map(l.schemas, func(s *record.Schema, _ int) string { return s.Name() })
}

// Field declares the field described by d.
func (d FieldDef) Field() (*field.Field, error) {
	kind, err := field.ParseKind(d.Kind)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", d.Name, err)
	}

	return field.New(kind, d.Name, d.options()...), nil
}

func (d FieldDef) options() []field.Option {
	var opts []field.Option

	if d.Default.Valid {
		opts = append(opts, field.Default(d.Default.Value))
	}
	if d.MaxLength != nil {
		opts = append(opts, field.MaxLength(*d.MaxLength))
	}
	if d.ZFill != nil {
		opts = append(opts, field.ZFill(*d.ZFill))
	}
	if d.Strip {
		opts = append(opts, field.Strip())
	}
	if d.Required {
		opts = append(opts, field.Required())
	}
	if d.Length != nil {
		opts = append(opts, field.Length(*d.Length))
	}
	if d.Pad != "" {
		r, _ := utf8.DecodeRuneInString(d.Pad)
		opts = append(opts, field.PadWith(r))
	}
	if d.Justify != "" {
		opts = append(opts, field.Justify(field.Justification(strings.ToLower(d.Justify))))
	}
	if d.Min != nil {
		opts = append(opts, field.Min(*d.Min))
	}
	if d.Max != nil {
		opts = append(opts, field.Max(*d.Max))
	}
	if d.Format != "" {
		opts = append(opts, field.Format(d.Format))
	}

	return opts
}
