// Package expect is the assertion entry point of the matchers
// module. It wraps a subject value in an immutable Expectation
// and routes each named matcher to the underlying equality,
// containment, and numeric algorithms.
//
// Matchers return nil on success, *FailureError on a value
// mismatch, and *UsageError on malformed usage. The caller (a
// test runner) is responsible for catching and recording both.
package expect

// Expectation holds a subject value together with a negation
// flag. It is immutable: Not and WithFormatter return fresh
// instances, so expectations are safe to share and reuse.
type Expectation struct {
	subject any
	negated bool
	format  Formatter
}

// That wraps a subject value for assertion.
func That(subject any) *Expectation {
	return &Expectation{
		subject: subject,
		format:  defaultFormat,
	}
}

// Not returns a new Expectation with the negation flag flipped.
// Negation is an involution: Not().Not() behaves identically to
// the original expectation.
func (e *Expectation) Not() *Expectation {
	return &Expectation{
		subject: e.subject,
		negated: !e.negated,
		format:  e.format,
	}
}

// WithFormatter returns a new Expectation that builds failure
// messages through f instead of the default formatter.
func (e *Expectation) WithFormatter(f Formatter) *Expectation {
	return &Expectation{
		subject: e.subject,
		negated: e.negated,
		format:  f,
	}
}

// Subject returns the wrapped value.
func (e *Expectation) Subject() any {
	return e.subject
}

// Negated reports whether the expectation is negated.
func (e *Expectation) Negated() bool {
	return e.negated
}

// verdict converts a raw pass into the final outcome: success
// iff pass differs from the negation flag, otherwise a failure
// carrying a deferred message.
func (e *Expectation) verdict(
	matcher string,
	pass bool,
	expected any,
	extra ...any,
) error {
	if pass != e.negated {
		return nil
	}
	return newFailure(
		matcher, pass, e.negated,
		e.format(matcher, e.subject, expected, e.negated, extra),
	)
}

func (e *Expectation) usage(matcher, reason string) error {
	return &UsageError{Matcher: matcher, Reason: reason}
}
