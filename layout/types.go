package layout

import (
	"fmt"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/mrj0/vinyl/internal/common"
)

// CurrentVersion is the layout file format version this package reads.
const CurrentVersion = "1"

// File is the root structure of a layout file.
type File struct {
	// Version of the layout format. Empty means CurrentVersion.
	Version string `yaml:"version,omitempty" toml:"version,omitempty"`
	// Records are the declared record types in file order.
	Records []RecordDef `yaml:"records" toml:"records"`

	// keys a TOML decode did not map to any field
	undecoded []string
}

// RecordDef declares one record type.
type RecordDef struct {
	Name    string     `yaml:"name" toml:"name"`
	Extends string     `yaml:"extends,omitempty" toml:"extends,omitempty"`
	Fields  []FieldDef `yaml:"fields" toml:"fields"`
}

// FieldDef declares one field. Kind is a name accepted by field.ParseKind;
// an empty kind means generic.
type FieldDef struct {
	Name      string `yaml:"name" toml:"name"`
	Kind      string `yaml:"kind,omitempty" toml:"kind,omitempty"`
	Default   Scalar `yaml:"default,omitempty" toml:"default,omitempty"`
	MaxLength *int   `yaml:"max_length,omitempty" toml:"max_length,omitempty"`
	ZFill     *int   `yaml:"zfill,omitempty" toml:"zfill,omitempty"`
	Strip     bool   `yaml:"strip,omitempty" toml:"strip,omitempty"`
	Required  bool   `yaml:"required,omitempty" toml:"required,omitempty"`
	Length    *int   `yaml:"length,omitempty" toml:"length,omitempty"`
	Pad       string `yaml:"pad,omitempty" toml:"pad,omitempty"`
	Justify   string `yaml:"justify,omitempty" toml:"justify,omitempty"`
	Min       *int64 `yaml:"min,omitempty" toml:"min,omitempty"`
	Max       *int64 `yaml:"max,omitempty" toml:"max,omitempty"`
	Format    string `yaml:"format,omitempty" toml:"format,omitempty"`
}

// Scalar is a default value as written in a layout file: text, or null when
// absent or written as YAML null.
type Scalar struct {
	Value string
	Valid bool
}

// Text returns a non-null Scalar.
func Text(s string) Scalar {
	return Scalar{Value: s, Valid: true}
}

// Raw returns nil for null and the text otherwise.
func (s Scalar) Raw() any {
	if !s.Valid {
		return nil
	}

	return s.Value
}

// IsZero reports a null Scalar, so omitempty drops it.
func (s Scalar) IsZero() bool {
	return !s.Valid
}

// UnmarshalYAML accepts any scalar node and keeps its text as written, so
// `default: 0042` stays "0042".
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: default must be a scalar, got %v", node.Line, kindName(node.Kind))
	}

	if node.ShortTag() == "!!null" {
		*s = Scalar{}
		return nil
	}

	*s = Text(node.Value)

	return nil
}

// MarshalYAML writes null as YAML null and text as a string.
func (s Scalar) MarshalYAML() (any, error) {
	if !s.Valid {
		return nil, nil
	}

	return s.Value, nil
}

// UnmarshalTOML converts any TOML value to its text form.
func (s *Scalar) UnmarshalTOML(data any) error {
	text, err := cast.ToStringE(data)
	if err != nil {
		return fmt.Errorf("default: %w", err)
	}

	*s = Text(text)

	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return common.UnknownStr
	}
}
