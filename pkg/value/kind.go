// Package value classifies arbitrary runtime values into a small
// closed set of shape kinds and normalizes container-like values
// into iterable element sequences.
package value

import (
	"iter"
	"reflect"
	"regexp"
)

// Kind is the shape classification of a runtime value. All
// matching algorithms branch on a Kind produced by a single
// Classify call rather than scattering type checks.
type Kind int

const (
	// KindNil covers nil interfaces and nil pointers.
	KindNil Kind = iota

	// KindScalar covers booleans and all numeric types.
	KindScalar

	// KindText covers strings.
	KindText

	// KindSequence covers slices and arrays with non-numeric
	// elements.
	KindSequence

	// KindBuffer covers slices and arrays of fixed-width
	// numeric elements (byte buffers, sample buffers and the
	// like).
	KindBuffer

	// KindRecord covers maps and structs: unordered key/value
	// shapes.
	KindRecord

	// KindSet covers values implementing the Set capability.
	KindSet

	// KindPattern covers compiled regular expressions.
	KindPattern

	// KindStream covers one-shot or lazily-produced element
	// sequences: channels and iter.Seq[any] producers.
	KindStream

	// KindCustom covers values that carry their own equality
	// capability (an IsEqual or Equal method).
	KindCustom

	// KindOpaque covers everything else: funcs, unsafe
	// pointers, and values with no matchable shape.
	KindOpaque
)

// String returns the name of a kind, mainly for failure messages
// and logs.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindScalar:
		return "scalar"
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindBuffer:
		return "buffer"
	case KindRecord:
		return "record"
	case KindSet:
		return "set"
	case KindPattern:
		return "pattern"
	case KindStream:
		return "stream"
	case KindCustom:
		return "custom"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Set is the capability interface for unordered collections of
// unique elements. Each must call fn once per element and stop
// early when fn returns false.
type Set interface {
	Len() int
	Each(fn func(element any) bool)
}

// Classify determines the shape kind of a value. Pointers
// classify as their pointee; a nil pointer classifies as
// KindNil. The capability checks (Set, custom equality, pattern)
// take precedence over the generic reflection kinds so that a
// struct-backed set is a set, not a record.
func Classify(v any) Kind {
	if v == nil {
		return KindNil
	}

	if _, ok := v.(*regexp.Regexp); ok {
		return KindPattern
	}
	if _, ok := v.(Set); ok {
		return KindSet
	}
	if _, ok := v.(iter.Seq[any]); ok {
		return KindStream
	}
	if hasEqualityCapability(reflect.TypeOf(v)) {
		return KindCustom
	}

	return classifyValue(reflect.ValueOf(v))
}

func classifyValue(rv reflect.Value) Kind {
	switch rv.Kind() {
	case reflect.Invalid:
		return KindNil
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return KindScalar
	case reflect.String:
		return KindText
	case reflect.Slice, reflect.Array:
		if isNumericElem(rv.Type().Elem()) {
			return KindBuffer
		}
		return KindSequence
	case reflect.Map, reflect.Struct:
		return KindRecord
	case reflect.Chan:
		return KindStream
	case reflect.Pointer:
		if rv.IsNil() {
			return KindNil
		}
		return classifyValue(rv.Elem())
	case reflect.Interface:
		if rv.IsNil() {
			return KindNil
		}
		return classifyValue(rv.Elem())
	default:
		return KindOpaque
	}
}

// isNumericElem reports whether t is a fixed-width numeric type,
// the element type that distinguishes a buffer from a generic
// sequence.
func isNumericElem(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// hasEqualityCapability reports whether t declares a self
// equality method: either IsEqual(any) bool or Equal(T) bool for
// some single argument T (the time.Time convention).
func hasEqualityCapability(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if m, ok := t.MethodByName("IsEqual"); ok && isEqualitySignature(m.Type) {
		return true
	}
	if m, ok := t.MethodByName("Equal"); ok && isEqualitySignature(m.Type) {
		return true
	}
	return false
}

// isEqualitySignature checks for func(receiver, arg) bool.
func isEqualitySignature(ft reflect.Type) bool {
	return ft.NumIn() == 2 &&
		ft.NumOut() == 1 &&
		ft.Out(0).Kind() == reflect.Bool
}
