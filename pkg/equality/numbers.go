package equality

import "reflect"

// asFloat extracts a numeric value as float64 for NaN checks
// and mixed-width comparisons. Booleans and strings are not
// numbers; no coercion happens here.
func asFloat(v reflect.Value) (float64, bool) {
	switch {
	case v.CanInt():
		return float64(v.Int()), true
	case v.CanUint():
		return float64(v.Uint()), true
	case v.CanFloat():
		return v.Float(), true
	}
	return 0, false
}

// numbersEqual compares two numeric values by mathematical
// value across Go's numeric types. Integer pairs compare
// exactly so 64-bit values beyond float64 precision are not
// conflated.
func numbersEqual(va, vb reflect.Value) bool {
	switch {
	case va.CanInt() && vb.CanInt():
		return va.Int() == vb.Int()
	case va.CanUint() && vb.CanUint():
		return va.Uint() == vb.Uint()
	case va.CanInt() && vb.CanUint():
		return va.Int() >= 0 && uint64(va.Int()) == vb.Uint()
	case va.CanUint() && vb.CanInt():
		return vb.Int() >= 0 && va.Uint() == uint64(vb.Int())
	}

	fa, aok := asFloat(va)
	fb, bok := asFloat(vb)
	return aok && bok && fa == fb
}
