// Package jsonval keeps loosely typed request values as raw JSON so handlers
// can apply truthiness and numeric coercion rules without losing the
// original token.
package jsonval

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

var null = []byte("null")

// Value is a single raw JSON value. The zero Value means the key was absent.
type Value struct {
	raw json.RawMessage
}

func (v *Value) UnmarshalJSON(b []byte) error {
	v.raw = append(v.raw[:0], b...)
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if len(v.raw) == 0 {
		return null, nil
	}

	return v.raw, nil
}

// Raw returns the token as received, or nil when absent.
func (v Value) Raw() json.RawMessage {
	return v.raw
}

// IsNumber reports whether the token is a JSON number literal.
func (v Value) IsNumber() bool {
	if len(v.raw) == 0 {
		return false
	}

	c := v.raw[0]

	return c == '-' || (c >= '0' && c <= '9')
}

func (v Value) isString() bool {
	return len(v.raw) > 0 && v.raw[0] == '"'
}

// Truthy follows the usual loose rules: absent, null, false, zero and the
// empty string are false, everything else is true.
func (v Value) Truthy() bool {
	switch {
	case len(v.raw) == 0, bytes.Equal(v.raw, null), bytes.Equal(v.raw, []byte("false")):
		return false
	case v.IsNumber():
		// Out of range literals come back as ±Inf with an error; they are
		// still non-zero.
		f, _ := strconv.ParseFloat(string(v.raw), 64)
		return f != 0
	case v.isString():
		var s string
		if err := json.Unmarshal(v.raw, &s); err != nil {
			return false
		}
		return s != ""
	default:
		return true
	}
}

// Number returns the value as a float, coercing numeric strings.
// ok is false for anything that is not a finite number.
func (v Value) Number() (f float64, ok bool) {
	var err error

	switch {
	case v.IsNumber():
		f, err = strconv.ParseFloat(string(v.raw), 64)
	case v.isString():
		var s string
		if err = json.Unmarshal(v.raw, &s); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, true
		}
		f, err = strconv.ParseFloat(s, 64)
	default:
		return 0, false
	}

	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}

	return f, true
}

// Interface decodes the token into its natural Go value.
func (v Value) Interface() any {
	if len(v.raw) == 0 {
		return nil
	}

	var out any
	if err := json.Unmarshal(v.raw, &out); err != nil {
		return nil
	}

	return out
}
