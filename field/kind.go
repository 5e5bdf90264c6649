package field

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum selects the coercion pipeline of a field.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindGeneric   // strip, zfill, silent truncation
	KindVarChar   // rejects text longer than max_length
	KindFixedChar // padded and cut to exactly length characters
	KindInteger   // decimal text with optional bounds, "" is null
	KindDate      // time.Time formatted with a date pattern
	KindTime      // time.Time formatted with a time pattern

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var kindNames = map[string]KindEnum{
	"generic":   KindGeneric,
	"record":    KindGeneric,
	"base":      KindGeneric,
	"varchar":   KindVarChar,
	"fixedchar": KindFixedChar,
	"fixed":     KindFixedChar,
	"integer":   KindInteger,
	"int":       KindInteger,
	"date":      KindDate,
	"time":      KindTime,
}

// ParseKind resolves a kind name as written in layout files.
func ParseKind(s string) (KindEnum, error) {
	k, ok := kindNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown field kind %q", s)
	}

	return k, nil
}

// KindNames returns every name ParseKind accepts, sorted.
func KindNames() []string {
	return slices.Sorted(maps.Keys(kindNames))
}

// IsValid reports whether k is one of the declared kinds.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// IsText reports whether the kind stores free text.
func (k KindEnum) IsText() bool {
	switch k {
	default:
		return false
	case KindGeneric, KindVarChar, KindFixedChar:
		return true
	}
}

// IsTemporal reports whether the kind formats time.Time input.
func (k KindEnum) IsTemporal() bool {
	switch k {
	default:
		return false
	case KindDate, KindTime:
		return true
	}
}

// DefaultFormat returns the strftime pattern used when none is configured.
func (k KindEnum) DefaultFormat() string {
	switch k {
	default:
		return ""
	case KindDate:
		return "%Y-%m-%d"
	case KindTime:
		return "%H:%M:%S"
	}
}
