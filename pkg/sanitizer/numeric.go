package sanitizer

import (
	"math"
	"strconv"
	"strings"
)

// Numeric represents numeric types that support ordering.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp constrains a value to [min, max].
func Clamp[T Numeric](value T, min T, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampMin ensures a value is not less than min.
func ClampMin[T Numeric](value T, min T) T {
	if value < min {
		return min
	}
	return value
}

// ClampMax ensures a value is not greater than max.
func ClampMax[T Numeric](value T, max T) T {
	if value > max {
		return max
	}
	return value
}

// ToNumber coerces free-text numeric input to a float64. It trims
// whitespace and accepts a decimal comma, the usual European keyboard
// habit. NaN and infinities are rejected. This is the upstream coercion
// that range rules expect to have happened.
func ToNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// NormalizeDecimal rewrites a decimal-comma number as decimal-point text,
// leaving anything unparseable untouched.
func NormalizeDecimal(s string) string {
	if f, ok := ToNumber(s); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return s
}
