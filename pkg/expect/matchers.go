package expect

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"digital.vasic.matchers/pkg/contain"
	"digital.vasic.matchers/pkg/equality"
	"digital.vasic.matchers/pkg/numeric"
	"digital.vasic.matchers/pkg/value"
)

// ToBe asserts identity-aware strict equality: composite values
// must be the same reference, scalars compare by identity (NaN
// is identical to NaN).
func (e *Expectation) ToBe(expected any) error {
	pass := equality.Equal(e.subject, expected, equality.Strict)
	return e.verdict("ToBe", pass, expected)
}

// ToEqual asserts structural value equivalence, recursing
// through sequences, records, and sets, and deferring to custom
// equality capabilities. Reference identity is ignored.
func (e *Expectation) ToEqual(expected any) error {
	pass := equality.Equal(
		e.subject, expected, equality.Structural,
	)
	return e.verdict("ToEqual", pass, expected)
}

// ToBeNil asserts that the subject is nil, including typed nil
// pointers, maps, and slices.
func (e *Expectation) ToBeNil() error {
	return e.verdict("ToBeNil", isNil(e.subject), nil)
}

// ToBeNaN asserts that the subject is precisely the
// floating-point NaN value.
func (e *Expectation) ToBeNaN() error {
	return e.verdict("ToBeNaN", numeric.IsNaN(e.subject), nil)
}

// ToBeCloseTo asserts floating-point proximity: the subject is
// within half a unit of the last decimal digit of expected at
// the given precision. Precision is optional and defaults to 2.
func (e *Expectation) ToBeCloseTo(
	expected float64,
	precision ...int,
) error {
	const matcher = "ToBeCloseTo"

	if len(precision) > 1 {
		return e.usage(matcher, "at most one precision argument")
	}
	p := numeric.DefaultPrecision
	if len(precision) == 1 {
		p = precision[0]
		if p < 0 {
			return e.usage(
				matcher, "precision must be non-negative",
			)
		}
	}

	received, ok := numeric.AsFloat(e.subject)
	if !ok {
		return e.usage(matcher, nonNumericSubject(e.subject))
	}

	pass := numeric.CloseTo(received, expected, p)
	return e.verdict(matcher, pass, expected, p)
}

// ToBeGreaterThan asserts strict numeric ordering.
func (e *Expectation) ToBeGreaterThan(expected any) error {
	return e.ordering(
		"ToBeGreaterThan", expected,
		func(a, b float64) bool { return a > b },
	)
}

// ToBeGreaterThanOrEqual asserts non-strict numeric ordering.
func (e *Expectation) ToBeGreaterThanOrEqual(
	expected any,
) error {
	return e.ordering(
		"ToBeGreaterThanOrEqual", expected,
		func(a, b float64) bool { return a >= b },
	)
}

// ToBeLessThan asserts strict numeric ordering.
func (e *Expectation) ToBeLessThan(expected any) error {
	return e.ordering(
		"ToBeLessThan", expected,
		func(a, b float64) bool { return a < b },
	)
}

// ToBeLessThanOrEqual asserts non-strict numeric ordering.
func (e *Expectation) ToBeLessThanOrEqual(expected any) error {
	return e.ordering(
		"ToBeLessThanOrEqual", expected,
		func(a, b float64) bool { return a <= b },
	)
}

func (e *Expectation) ordering(
	matcher string,
	expected any,
	cmp func(a, b float64) bool,
) error {
	a, ok := numeric.AsFloat(e.subject)
	if !ok {
		return e.usage(matcher, nonNumericSubject(e.subject))
	}
	b, ok := numeric.AsFloat(expected)
	if !ok {
		return e.usage(matcher, fmt.Sprintf(
			"expected value of type %T is not a number",
			expected,
		))
	}
	return e.verdict(matcher, cmp(a, b), expected)
}

// ToMatch asserts that a text subject matches a pattern: a
// *regexp.Regexp is tested against the subject, a plain string
// is searched for as a substring.
func (e *Expectation) ToMatch(pattern any) error {
	const matcher = "ToMatch"

	s, ok := e.subject.(string)
	if !ok {
		return e.usage(matcher, fmt.Sprintf(
			"subject of type %T is not a string", e.subject,
		))
	}

	var pass bool
	switch p := pattern.(type) {
	case *regexp.Regexp:
		if p == nil {
			return e.usage(matcher, "pattern is nil")
		}
		pass = p.MatchString(s)
	case string:
		pass = strings.Contains(s, p)
	default:
		return e.usage(matcher, fmt.Sprintf(
			"pattern of type %T is neither a string nor a"+
				" compiled pattern", pattern,
		))
	}

	return e.verdict(matcher, pass, pattern)
}

// ToBeInstanceOf asserts that the subject's dynamic type is the
// expected type. Expected may be a reflect.Type or an exemplar
// value whose type is used; an interface type matches any
// subject implementing it.
func (e *Expectation) ToBeInstanceOf(expected any) error {
	const matcher = "ToBeInstanceOf"

	if expected == nil {
		return e.usage(matcher, "expected type is nil")
	}

	want, ok := expected.(reflect.Type)
	if !ok {
		want = reflect.TypeOf(expected)
	}

	got := reflect.TypeOf(e.subject)
	var pass bool
	switch {
	case got == nil:
		pass = false
	case want.Kind() == reflect.Interface:
		pass = got.Implements(want)
	default:
		pass = got == want
	}

	return e.verdict(matcher, pass, want)
}

// ToHaveLength asserts that the subject has exactly n elements.
// Subjects without a well-defined length fail with a usage
// error regardless of negation.
func (e *Expectation) ToHaveLength(n int) error {
	const matcher = "ToHaveLength"

	if n < 0 {
		return e.usage(matcher, "length must be non-negative")
	}
	length, ok := value.LengthOf(e.subject)
	if !ok {
		return e.usage(matcher, fmt.Sprintf(
			"subject of type %T has no length", e.subject,
		))
	}

	return e.verdict(matcher, length == n, n)
}

// ToContain asserts that item occurs within the subject. A text
// subject requires a text item and performs substring search;
// any other iterable subject is scanned element by element
// using identity comparison.
func (e *Expectation) ToContain(item any) error {
	return e.containment("ToContain", item, false)
}

// ToContainEqual asserts that some element of the subject is
// structurally equal to item, so a value-equal element matches
// even when no element is reference-identical. Unlike ToContain
// there is no substring rule: a text subject is scanned
// character by character.
func (e *Expectation) ToContainEqual(item any) error {
	return e.containment("ToContainEqual", item, true)
}

func (e *Expectation) containment(
	matcher string,
	item any,
	structural bool,
) error {
	pass, err := contain.Contains(e.subject, item, structural)
	if err != nil {
		var notIterable *value.NotIterableError
		if errors.As(err, &notIterable) {
			return e.usage(matcher, notIterable.Error())
		}
		return e.usage(matcher, err.Error())
	}
	return e.verdict(matcher, pass, item)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.Interface,
		reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func nonNumericSubject(subject any) string {
	return fmt.Sprintf(
		"subject of type %T is not a number", subject,
	)
}
