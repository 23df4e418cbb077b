// Package numeric provides the ordering and proximity
// comparators used by numeric assertions.
package numeric

import (
	"math"
	"reflect"
)

// DefaultPrecision is the decimal precision used by proximity
// checks when the caller does not supply one.
const DefaultPrecision = 2

// AsFloat extracts a numeric value as float64. It accepts every
// Go integer, unsigned integer, and float type and performs no
// coercion from non-numeric types.
func AsFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	case rv.CanFloat():
		return rv.Float(), true
	}
	return 0, false
}

// CloseTo reports whether received is within half a unit of the
// last decimal digit of expected at the given precision:
// |received-expected| < 10^(-precision) / 2. The bound is
// strict, so a difference exactly at the half-unit boundary is
// not close enough.
func CloseTo(received, expected float64, precision int) bool {
	if math.IsNaN(received) || math.IsNaN(expected) {
		return false
	}
	if received == expected {
		// Covers equal infinities, which the subtraction below
		// would turn into NaN.
		return true
	}
	threshold := math.Pow(10, -float64(precision)) / 2
	return math.Abs(received-expected) < threshold
}

// IsNaN reports whether v is precisely a floating-point NaN
// value. No other value, numeric or otherwise, qualifies.
func IsNaN(v any) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	}
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.CanFloat() {
		return math.IsNaN(rv.Float())
	}
	return false
}
