package field

import (
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/spf13/cast"
)

// Coerce runs raw through the pipeline of the field's kind and returns the
// canonical value. Coercing an already coerced value returns it unchanged.
func (f *Field) Coerce(raw any) (Value, error) {
	switch f.kind {
	case KindGeneric:
		return f.clean(ToText(raw)), nil
	case KindVarChar:
		return f.coerceVarChar(raw)
	case KindFixedChar:
		return f.coerceFixedChar(raw)
	case KindInteger:
		return f.coerceInteger(raw)
	case KindDate, KindTime:
		return f.coerceTemporal(raw), nil
	default:
		return Null, f.invalid("unsupported kind %s", f.kind)
	}
}

// Check is the required-check run by explicit record validation.
func (f *Field) Check(v Value) error {
	if f.required && v.IsEmpty() {
		return f.invalid("field is required")
	}

	return nil
}

// clean is the generic tail shared by every kind: strip, then zfill, then truncate.
func (f *Field) clean(v Value) Value {
	s, ok := v.Text()
	if !ok {
		return Null
	}

	if f.strip {
		s = strings.TrimSpace(s)
	}
	if f.zfill.set {
		s = zfill(s, f.zfill.n)
	}
	if f.maxLength.set {
		s = truncate(s, f.maxLength.n)
	}

	return Text(s)
}

func (f *Field) coerceVarChar(raw any) (Value, error) {
	v := ToText(raw)
	if s, ok := v.Text(); ok && f.maxLength.set && runeLen(s) > f.maxLength.n {
		return Null, f.invalid("value too long: %s", s)
	}

	return f.clean(v), nil
}

func (f *Field) coerceFixedChar(raw any) (Value, error) {
	s := ToText(raw).Or("")
	if !f.length.set {
		return Null, f.invalid("missing field length")
	}

	switch f.justify {
	case JustifyRight:
		s = padLeft(s, f.length.n, f.pad)
	case JustifyLeft:
		s = padRight(s, f.length.n, f.pad)
	default:
		return Null, f.invalid("unknown value for justify: %s", f.justify)
	}

	return f.clean(Text(truncate(s, f.length.n))), nil
}

func (f *Field) coerceInteger(raw any) (Value, error) {
	if isEmptyText(raw) {
		return Null, nil
	}

	n, err := f.parseInteger(raw)
	if err != nil {
		return Null, err
	}
	if n == nil {
		return Null, nil
	}

	if f.min.set && n.Cmp(big.NewInt(f.min.n)) < 0 {
		return Null, f.invalid("value must be at least %d", f.min.n)
	}
	if f.max.set && n.Cmp(big.NewInt(f.max.n)) > 0 {
		return Null, f.invalid("value must be no greater than %d", f.max.n)
	}

	return f.clean(Text(n.String())), nil
}

// parseInteger returns nil for null input.
func (f *Field) parseInteger(raw any) (*big.Int, error) {
	switch v := raw.(type) {
	case *big.Int:
		if v == nil {
			return nil, nil
		}

		return new(big.Int).Set(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case float32:
		return f.parseFloat(float64(v))
	case float64:
		return f.parseFloat(v)
	case nil, Value, *Value, string, *string, []byte:
		s, ok := ToText(v).Text()
		if !ok {
			return nil, nil
		}

		n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
		if !ok {
			return nil, f.invalid("invalid integer: %q", s)
		}

		return n, nil
	}

	i, err := cast.ToInt64E(raw)
	if err != nil {
		return nil, f.invalid("invalid integer: %v", raw)
	}

	return big.NewInt(i), nil
}

// parseFloat truncates toward zero.
func (f *Field) parseFloat(v float64) (*big.Int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, f.invalid("invalid integer: %v", v)
	}

	n, _ := big.NewFloat(v).Int(nil)

	return n, nil
}

func isEmptyText(raw any) bool {
	switch v := raw.(type) {
	case string, []byte, Value, *Value, *string:
		s, ok := ToText(v).Text()
		return ok && s == ""
	}

	return false
}

func (f *Field) coerceTemporal(raw any) Value {
	switch v := raw.(type) {
	case time.Time:
		raw = strftime.Format(f.format, v)
	case *time.Time:
		if v == nil {
			return Null
		}
		raw = strftime.Format(f.format, *v)
	}

	return f.clean(ToText(raw))
}
