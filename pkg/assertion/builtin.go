package assertion

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"digital.vasic.matchers/pkg/expect"
)

// expectationFor builds the dispatcher expectation for a
// definition, applying its negation flag.
func expectationFor(
	a Definition,
	value any,
) *expect.Expectation {
	e := expect.That(value)
	if a.Negated {
		e = e.Not()
	}
	return e
}

// outcome converts a matcher verdict into the (passed, message)
// pair the engine reports. Usage errors surface as failures
// with an explanatory prefix since the declarative layer has no
// separate error channel.
func outcome(err error, passMessage string) (bool, string) {
	if err == nil {
		return true, passMessage
	}

	var usage *expect.UsageError
	if errors.As(err, &usage) {
		return false, fmt.Sprintf(
			"invalid assertion: %s", usage.Error(),
		)
	}

	var failure *expect.FailureError
	if errors.As(err, &failure) {
		return false, failure.Message()
	}
	return false, err.Error()
}

// evaluateToBe checks identity-aware strict equality.
func evaluateToBe(a Definition, value any) (bool, string) {
	err := expectationFor(a, value).ToBe(a.Value)
	return outcome(err, fmt.Sprintf("is %v", a.Value))
}

// evaluateToEqual checks structural value equivalence.
func evaluateToEqual(a Definition, value any) (bool, string) {
	err := expectationFor(a, value).ToEqual(a.Value)
	return outcome(err, fmt.Sprintf("equals %v", a.Value))
}

func evaluateIsNil(a Definition, value any) (bool, string) {
	err := expectationFor(a, value).ToBeNil()
	return outcome(err, "is nil")
}

func evaluateIsNaN(a Definition, value any) (bool, string) {
	err := expectationFor(a, value).ToBeNaN()
	return outcome(err, "is NaN")
}

// evaluateContains checks containment with identity
// comparison: substring search for text subjects, element scan
// for every other iterable.
func evaluateContains(a Definition, value any) (bool, string) {
	err := expectationFor(a, value).ToContain(a.Value)
	return outcome(err, fmt.Sprintf("contains %v", a.Value))
}

// evaluateContainsEqual checks containment with structural
// element comparison.
func evaluateContainsEqual(
	a Definition,
	value any,
) (bool, string) {
	err := expectationFor(a, value).ToContainEqual(a.Value)
	return outcome(err, fmt.Sprintf(
		"contains an element equal to %v", a.Value,
	))
}

// evaluateCloseTo checks floating-point proximity. The expected
// value comes from Value; an optional precision comes from
// Values[0].
func evaluateCloseTo(a Definition, value any) (bool, string) {
	expected, ok := toFloat64(a.Value)
	if !ok {
		return false, "expected value is not a number"
	}

	e := expectationFor(a, value)
	var err error
	if len(a.Values) > 0 {
		precision, ok := toInt(a.Values[0])
		if !ok {
			return false, "precision is not a number"
		}
		err = e.ToBeCloseTo(expected, precision)
	} else {
		err = e.ToBeCloseTo(expected)
	}
	return outcome(err, fmt.Sprintf("is close to %v", expected))
}

func evaluateGreaterThan(
	a Definition,
	value any,
) (bool, string) {
	err := expectationFor(a, value).ToBeGreaterThan(a.Value)
	return outcome(err, fmt.Sprintf("is greater than %v", a.Value))
}

func evaluateGreaterOrEqual(
	a Definition,
	value any,
) (bool, string) {
	err := expectationFor(a, value).
		ToBeGreaterThanOrEqual(a.Value)
	return outcome(err, fmt.Sprintf("is at least %v", a.Value))
}

func evaluateLessThan(a Definition, value any) (bool, string) {
	err := expectationFor(a, value).ToBeLessThan(a.Value)
	return outcome(err, fmt.Sprintf("is less than %v", a.Value))
}

func evaluateLessOrEqual(
	a Definition,
	value any,
) (bool, string) {
	err := expectationFor(a, value).ToBeLessThanOrEqual(a.Value)
	return outcome(err, fmt.Sprintf("is at most %v", a.Value))
}

// evaluateMatches compiles Value as a regular expression and
// tests the subject against it.
func evaluateMatches(a Definition, value any) (bool, string) {
	pattern, ok := a.Value.(string)
	if !ok {
		return false, "expected value is not a pattern string"
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Sprintf(
			"invalid pattern %q: %v", pattern, err,
		)
	}

	verdictErr := expectationFor(a, value).ToMatch(re)
	return outcome(verdictErr, fmt.Sprintf(
		"matches %q", pattern,
	))
}

func evaluateHasLength(a Definition, value any) (bool, string) {
	n, ok := toInt(a.Value)
	if !ok {
		return false, "expected length is not a number"
	}
	err := expectationFor(a, value).ToHaveLength(n)
	return outcome(err, fmt.Sprintf("has length %d", n))
}

// --- helpers ---

// toInt converts an any value to int. Fractional floats are
// rejected rather than truncated.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int64:
		return int(n), true
	}
	return 0, false
}

// toFloat64 converts an any value to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
