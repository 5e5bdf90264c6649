package match

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LowerName returns the canonical lower-case spelling of a name. It is also
// the lookup key: two names address the same field when they lower to the
// same text. A Caser is stateful, so one is created per call.
func LowerName(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
