package field

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// ToText converts a raw input to text form: nil stays null, strings pass
// through, byte slices decode as UTF-8 dropping invalid bytes, and anything
// else uses its default text representation.
func ToText(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Null
	case Value:
		return v
	case *Value:
		if v == nil {
			return Null
		}

		return *v
	case string:
		return Text(v)
	case *string:
		if v == nil {
			return Null
		}

		return Text(*v)
	case []byte:
		return Text(strings.ToValidUTF8(string(v), ""))
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		s = fmt.Sprint(raw)
	}

	return Text(s)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}

	if runeLen(s) <= n {
		return s
	}

	return string([]rune(s)[:n])
}

// zfill left-pads s with zeros to width characters, keeping a leading sign in front.
func zfill(s string, width int) string {
	l := runeLen(s)
	if l >= width {
		return s
	}

	fill := strings.Repeat("0", width-l)
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[:1] + fill + s[1:]
	}

	return fill + s
}

func padLeft(s string, width int, pad rune) string {
	l := runeLen(s)
	if l >= width {
		return s
	}

	return strings.Repeat(string(pad), width-l) + s
}

func padRight(s string, width int, pad rune) string {
	l := runeLen(s)
	if l >= width {
		return s
	}

	return s + strings.Repeat(string(pad), width-l)
}
