package chart

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a category on the x or y axis. It is either a number or a string.
// Numeric 1 and string "1" are different categories.
type Value struct {
	str   string
	num   float64
	isNum bool
}

// Num returns a numeric category.
func Num(v float64) Value { return Value{num: v, isNum: true} }

// Str returns a string category.
func Str(s string) Value { return Value{str: s} }

// Nums converts numbers to categories.
func Nums(vs ...float64) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Num(v)
	}
	return out
}

// Strs converts strings to categories without parsing them.
func Strs(ss ...string) []Value {
	out := make([]Value, len(ss))
	for i, s := range ss {
		out[i] = Str(s)
	}
	return out
}

// ParseValue infers the kind of a raw cell: integer, then float, then string.
// Surrounding whitespace is ignored for numbers.
func ParseValue(s string) Value {
	t := strings.TrimSpace(s)
	if n, err := strconv.ParseInt(t, 10, 64); err == nil {
		return Num(float64(n))
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Num(f)
	}
	return Str(s)
}

// IsNumber reports whether v is numeric.
func (v Value) IsNumber() bool { return v.isNum }

// Float returns the numeric value and whether v is numeric.
func (v Value) Float() (float64, bool) { return v.num, v.isNum }

// String returns the tick label form. Integral numbers print without a
// fractional part.
func (v Value) String() string {
	if !v.isNum {
		return v.str
	}
	return FormatNumber(v.num)
}

// Key identifies the category for uniqueness checks.
func (v Value) Key() string {
	if v.isNum {
		return "n:" + FormatNumber(v.num)
	}
	return "s:" + v.str
}

// MarshalJSON encodes numbers as JSON numbers and strings as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isNum {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.str)
}

// UnmarshalJSON accepts the forms written by MarshalJSON. JSON strings stay
// strings even when they look numeric.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Str(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("category must be a number or a string: %s", data)
	}
	*v = Num(f)
	return nil
}

// Compare orders numbers before strings, numbers ascending, strings
// lexicographically.
func Compare(a, b Value) int {
	switch {
	case a.isNum && !b.isNum:
		return -1
	case !a.isNum && b.isNum:
		return 1
	case a.isNum:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	}
	return strings.Compare(a.str, b.str)
}

// FormatNumber formats f in the shortest form that round-trips, without an
// exponent and without a trailing ".0" for integers.
func FormatNumber(f float64) string {
	if f == 0 {
		return "0" // normalizes -0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Height is an optional bar height. Invalid heights mark missing cells.
type Height struct {
	Value float64
	Valid bool
}

// Some returns a present height.
func Some(v float64) Height { return Height{Value: v, Valid: true} }

// None returns a missing height.
func None() Height { return Height{} }

// Heights converts numbers to heights. NaN becomes a missing height.
func Heights(vs ...float64) []Height {
	out := make([]Height, len(vs))
	for i, v := range vs {
		if math.IsNaN(v) {
			out[i] = None()
			continue
		}
		out[i] = Some(v)
	}
	return out
}

// String returns the hover form of h: the number, or "None" when missing.
func (h Height) String() string {
	if !h.Valid {
		return "None"
	}
	return FormatNumber(h.Value)
}

// MarshalJSON encodes missing heights as null.
func (h Height) MarshalJSON() ([]byte, error) {
	if !h.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(h.Value)
}

// UnmarshalJSON accepts a number or null.
func (h *Height) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*h = None()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*h = Some(f)
	return nil
}
