package field

import (
	"fmt"
	"strings"
)

// Justification selects the side a fixed-width value is aligned to.
type Justification string

const (
	JustifyLeft  Justification = "left"  // pad on the right
	JustifyRight Justification = "right" // pad on the left
)

// DefaultPad is the pad character of fixed-width fields.
const DefaultPad = ' '

type limit struct {
	n   int
	set bool
}

type bound struct {
	n   int64
	set bool
}

// Field is the immutable description of one column: its kind, its options and,
// once bound into a schema, its canonical name and position. A Field never
// holds a record's value.
type Field struct {
	name string
	kind KindEnum

	def     any
	initial Value

	maxLength limit
	zfill     limit
	strip     bool
	required  bool

	length  limit
	pad     rune
	justify Justification

	min bound
	max bound

	format string

	position int
}

// Option configures a Field at declaration time. Options only take effect
// through New and the kind constructors.
type Option struct {
	apply func(*Field)
}

func option(fn func(*Field)) Option { return Option{apply: fn} }

// New declares a field of the given kind.
func New(kind KindEnum, name string, opts ...Option) *Field {
	f := &Field{
		name:     name,
		kind:     kind,
		pad:      DefaultPad,
		justify:  JustifyLeft,
		format:   kind.DefaultFormat(),
		position: -1,
	}
	for _, opt := range opts {
		if opt.apply != nil {
			opt.apply(f)
		}
	}

	return f
}

// Generic declares a field that only applies strip, zfill and silent truncation.
func Generic(name string, opts ...Option) *Field {
	return New(KindGeneric, name, opts...)
}

// VarChar declares a variable-length text field that rejects text longer than MaxLength.
func VarChar(name string, opts ...Option) *Field {
	return New(KindVarChar, name, opts...)
}

// FixedChar declares a fixed-width text field of exactly length characters.
func FixedChar(name string, length int, opts ...Option) *Field {
	return New(KindFixedChar, name, append([]Option{Length(length)}, opts...)...)
}

// Integer declares a whole-number field rendered as decimal text.
func Integer(name string, opts ...Option) *Field {
	return New(KindInteger, name, opts...)
}

// Date declares a field that formats time.Time values as a date.
func Date(name string, opts ...Option) *Field {
	return New(KindDate, name, opts...)
}

// Time declares a field that formats time.Time values as a time of day.
func Time(name string, opts ...Option) *Field {
	return New(KindTime, name, opts...)
}

// Default sets the raw value every new record starts with. It goes through
// the field's pipeline when the schema is built.
func Default(v any) Option {
	if b, ok := v.([]byte); ok {
		v = append([]byte(nil), b...)
	}

	return option(func(f *Field) { f.def = v })
}

// MaxLength limits the text length. Generic fields truncate, VarChar fields reject.
func MaxLength(n int) Option {
	return option(func(f *Field) { f.maxLength = limit{n: n, set: true} })
}

// ZFill left-pads the text with '0' to n characters.
func ZFill(n int) Option {
	return option(func(f *Field) { f.zfill = limit{n: n, set: true} })
}

// Strip trims surrounding whitespace.
func Strip() Option {
	return option(func(f *Field) { f.strip = true })
}

// Required makes explicit validation fail while the value is null or empty.
func Required() Option {
	return option(func(f *Field) { f.required = true })
}

// Length sets the width of a fixed-width field.
func Length(n int) Option {
	return option(func(f *Field) { f.length = limit{n: n, set: true} })
}

// PadWith sets the pad character of a fixed-width field.
func PadWith(r rune) Option {
	return option(func(f *Field) { f.pad = r })
}

// Justify sets the alignment of a fixed-width field.
func Justify(j Justification) Option {
	return option(func(f *Field) { f.justify = j })
}

// Min sets the inclusive lower bound of an integer field.
func Min(n int64) Option {
	return option(func(f *Field) { f.min = bound{n: n, set: true} })
}

// Max sets the inclusive upper bound of an integer field.
func Max(n int64) Option {
	return option(func(f *Field) { f.max = bound{n: n, set: true} })
}

// Format sets the strftime pattern of a date or time field.
func Format(pattern string) Option {
	return option(func(f *Field) { f.format = pattern })
}

// Bind returns a copy of f carrying its canonical name and schema position,
// with the default value coerced through the copy's pipeline.
func (f *Field) Bind(name string, position int) (*Field, error) {
	if !f.kind.IsValid() {
		return nil, fmt.Errorf("field %q: invalid kind %s", name, f.kind)
	}

	if f.kind == KindFixedChar && f.length.set && f.length.n <= 0 {
		return nil, fmt.Errorf("length must be positive, got %d", f.length.n)
	}

	b := *f
	b.name = name
	b.position = position

	initial, err := b.Coerce(b.def)
	if err != nil {
		return nil, fmt.Errorf("default value: %w", err)
	}
	b.initial = initial

	return &b, nil
}

func (f *Field) Name() string { return f.name }
func (f *Field) Kind() KindEnum { return f.kind }
func (f *Field) Position() int { return f.position }
func (f *Field) IsRequired() bool { return f.required }
func (f *Field) IsStripped() bool { return f.strip }
func (f *Field) Pad() rune { return f.pad }
func (f *Field) Justify() Justification { return f.justify }
func (f *Field) Format() string { return f.format }

// Default returns the declared raw default value.
func (f *Field) Default() any { return f.def }

// Initial returns the coerced default. It is only meaningful on bound fields.
func (f *Field) Initial() Value { return f.initial }

// MaxLength returns the configured maximum length, if any.
func (f *Field) MaxLength() (int, bool) { return f.maxLength.n, f.maxLength.set }

// ZFill returns the configured zero-fill width, if any.
func (f *Field) ZFill() (int, bool) { return f.zfill.n, f.zfill.set }

// Length returns the configured fixed width, if any.
func (f *Field) Length() (int, bool) { return f.length.n, f.length.set }

// Min returns the configured lower bound, if any.
func (f *Field) Min() (int64, bool) { return f.min.n, f.min.set }

// Max returns the configured upper bound, if any.
func (f *Field) Max() (int64, bool) { return f.max.n, f.max.set }

// String describes the declaration, e.g. "customer_nbr FixedChar(26, right, '0')".
func (f *Field) String() string {
	var opts []string

	switch f.kind {
	case KindFixedChar:
		opts = append(opts, fmt.Sprintf("%d", f.length.n), string(f.justify), fmt.Sprintf("%q", f.pad))
	case KindInteger:
		if f.min.set {
			opts = append(opts, fmt.Sprintf("min=%d", f.min.n))
		}
		if f.max.set {
			opts = append(opts, fmt.Sprintf("max=%d", f.max.n))
		}
	case KindDate, KindTime:
		opts = append(opts, f.format)
	}

	if f.maxLength.set {
		opts = append(opts, fmt.Sprintf("max_length=%d", f.maxLength.n))
	}
	if f.zfill.set {
		opts = append(opts, fmt.Sprintf("zfill=%d", f.zfill.n))
	}
	if f.strip {
		opts = append(opts, "strip")
	}
	if f.required {
		opts = append(opts, "required")
	}

	kind := strings.TrimPrefix(f.kind.String(), "Kind")

	return fmt.Sprintf("%s %s(%s)", f.name, kind, strings.Join(opts, ", "))
}
