package rules

import (
	"math"
	"strconv"
	"strings"
)

type valueKind uint8

const (
	kindAbsent valueKind = iota
	kindString
	kindNumber
)

// Value is a tagged raw input value as captured from a form field.
// A field is either absent (never supplied), a string, or a number.
// The zero Value is absent, so indexing a missing entry in a value map
// yields a well-defined absent value.
type Value struct {
	kind valueKind
	str  string
	num  float64
}

// StringValue wraps a raw string input.
func StringValue(s string) Value {
	return Value{kind: kindString, str: s}
}

// NumberValue wraps a raw numeric input.
func NumberValue(f float64) Value {
	return Value{kind: kindNumber, num: f}
}

// AbsentValue represents a field that was never supplied.
func AbsentValue() Value {
	return Value{}
}

// IsAbsent reports whether the field was never supplied.
func (v Value) IsAbsent() bool {
	return v.kind == kindAbsent
}

// IsString reports whether the value carries raw string input.
func (v Value) IsString() bool {
	return v.kind == kindString
}

// IsEmpty reports whether the value is absent or an empty string.
// A numeric value is never empty, including zero.
func (v Value) IsEmpty() bool {
	return v.kind == kindAbsent || (v.kind == kindString && v.str == "")
}

// Str returns the value in string form. Numbers are formatted with the
// shortest representation that round-trips; absent values yield "".
func (v Value) Str() string {
	switch v.kind {
	case kindString:
		return v.str
	case kindNumber:
		return formatNumber(v.num)
	default:
		return ""
	}
}

// Num returns the numeric reading of the value. Strings are parsed after
// trimming whitespace. The second return value is false for absent values,
// unparseable strings, NaN and infinities.
func (v Value) Num() (float64, bool) {
	switch v.kind {
	case kindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return 0, false
		}
		return v.num, true
	case kindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// formatNumber renders a float without a trailing ".0" for whole numbers,
// so messages read "between 66 and 440" rather than "between 66.0 and 440.0".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
