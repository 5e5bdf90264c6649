package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a layout file, choosing the format by extension:
// .yaml and .yml are YAML, .toml is TOML.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return Parse(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("layout file %s: unsupported extension %q", path, ext)
	}
}

// Parse parses YAML data into a File. Unknown keys are an error.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse layout YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// ParseTOML parses TOML data into a File. Unknown keys are kept and reported
// as warnings by Validate.
func ParseTOML(data []byte) (*File, error) {
	var f File

	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout TOML: %w", err)
	}

	for _, key := range md.Undecoded() {
		f.undecoded = append(f.undecoded, key.String())
	}

	applyDefaults(&f)

	return &f, nil
}

// MustParse is like Parse but panics on error.
func MustParse(data []byte) *File {
	f, err := Parse(data)
	if err != nil {
		panic(err)
	}

	return f
}

// applyDefaults fills in default values for optional keys.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	for i := range f.Records {
		for j := range f.Records[i].Fields {
			fd := &f.Records[i].Fields[j]
			if strings.TrimSpace(fd.Kind) == "" {
				fd.Kind = "generic"
			}
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to path as YAML.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write layout file %s: %w", path, err)
	}

	return nil
}
