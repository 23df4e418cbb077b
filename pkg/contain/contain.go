// Package contain implements containment checks over
// heterogeneous container-like values.
package contain

import (
	"errors"
	"reflect"
	"strings"

	"digital.vasic.matchers/pkg/equality"
	"digital.vasic.matchers/pkg/value"
)

// ErrTextTarget reports a containment check on a text container
// with a non-text target. Text containment is substring search,
// so the target must itself be text.
var ErrTextTarget = errors.New(
	"text containment requires a text target",
)

// Contains reports whether target occurs within container.
// Under identity rules a text container uses contiguous
// substring search and requires a text target. Every other
// container, and text under structural rules, is normalized via
// value.Elements and scanned linearly, comparing each element
// to target with identity rules or, when structural is true,
// value equivalence. The scan short-circuits on the first
// match.
//
// A container that cannot be normalized propagates
// *value.NotIterableError.
func Contains(
	container, target any,
	structural bool,
) (bool, error) {
	// The substring rule belongs to identity containment only;
	// structural containment scans text character by character
	// like any other sequence.
	if !structural &&
		value.Classify(container) == value.KindText {
		s, _ := textOf(container)
		sub, ok := textOf(target)
		if !ok {
			return false, ErrTextTarget
		}
		return strings.Contains(s, sub), nil
	}

	elems, err := value.Elements(container)
	if err != nil {
		return false, err
	}

	mode := equality.Strict
	if structural {
		mode = equality.Structural
	}

	for elem := range elems {
		if equality.Equal(elem, target, mode) {
			return true, nil
		}
	}
	return false, nil
}

// textOf extracts the string form of a value whose underlying
// kind is string, following pointers.
func textOf(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}
