package field

// Value is the canonical stored form of a field: text, or null.
// The zero Value is null.
type Value struct {
	text  string
	valid bool
}

// Null is the null Value.
var Null = Value{}

// Text returns a non-null Value holding s.
func Text(s string) Value {
	return Value{text: s, valid: true}
}

// IsNull reports whether v holds no text.
func (v Value) IsNull() bool {
	return !v.valid
}

// IsEmpty reports whether v is null or empty text.
func (v Value) IsEmpty() bool {
	return !v.valid || v.text == ""
}

// Text returns the text and whether v is non-null.
func (v Value) Text() (string, bool) {
	return v.text, v.valid
}

// Or returns the text, or fallback when v is null.
func (v Value) Or(fallback string) string {
	if !v.valid {
		return fallback
	}

	return v.text
}

// Raw returns nil for null and the text otherwise.
func (v Value) Raw() any {
	if !v.valid {
		return nil
	}

	return v.text
}

// String renders the value for diagnostics; null renders as <null>.
func (v Value) String() string {
	return v.Or("<null>")
}
