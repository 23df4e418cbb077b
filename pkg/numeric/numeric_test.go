package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.matchers/pkg/numeric"
)

func TestAsFloat(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"int", 42, 42, true},
		{"int64", int64(-7), -7, true},
		{"uint16", uint16(9), 9, true},
		{"float32", float32(1.5), 1.5, true},
		{"float64", 2.25, 2.25, true},
		{"string", "42", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
		{"slice", []int{1}, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := numeric.AsFloat(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestCloseTo_DefaultPrecisionBoundary(t *testing.T) {
	// Threshold at precision 2 is 0.005, strict.
	assert.True(t, numeric.CloseTo(0.3, 0.30004, 2))
	assert.True(t, numeric.CloseTo(
		0.1+0.2, 0.3, numeric.DefaultPrecision,
	))
	assert.False(t, numeric.CloseTo(0.3, 0.305, 2))
	assert.False(t, numeric.CloseTo(0.3, 0.31, 2))
}

func TestCloseTo_PrecisionZero(t *testing.T) {
	// Threshold is 0.5; a difference of exactly 0.05 passes.
	assert.True(t, numeric.CloseTo(0.05, 0, 0))
	assert.True(t, numeric.CloseTo(0.49, 0, 0))
	assert.False(t, numeric.CloseTo(0.5, 0, 0))
}

func TestCloseTo_HighPrecision(t *testing.T) {
	// Threshold at precision 5 is 5e-6.
	assert.True(t, numeric.CloseTo(0.000004, 0, 5))
	assert.False(t, numeric.CloseTo(0.000006, 0, 5))
}

func TestCloseTo_NaNAndInfinity(t *testing.T) {
	assert.False(t, numeric.CloseTo(math.NaN(), 1, 2))
	assert.False(t, numeric.CloseTo(1, math.NaN(), 2))

	inf := math.Inf(1)
	assert.True(t, numeric.CloseTo(inf, inf, 2))
	assert.False(t, numeric.CloseTo(inf, math.Inf(-1), 2))
	assert.False(t, numeric.CloseTo(inf, 1e300, 2))
}

func TestIsNaN(t *testing.T) {
	assert.True(t, numeric.IsNaN(math.NaN()))
	assert.True(t, numeric.IsNaN(float32(math.NaN())))

	assert.False(t, numeric.IsNaN(0.0))
	assert.False(t, numeric.IsNaN(42))
	assert.False(t, numeric.IsNaN("NaN"))
	assert.False(t, numeric.IsNaN(nil))
}
