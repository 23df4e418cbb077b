package expect

import "fmt"

// UsageError reports malformed assertion usage: wrong argument
// shape, a non-iterable container, a length-less subject, and
// similar caller mistakes. It is raised unconditionally,
// independent of the negation flag, and is disjoint from an
// ordinary mismatch.
type UsageError struct {
	// Matcher is the name of the assertion that was misused.
	Matcher string

	// Reason describes what was wrong with the call.
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Matcher, e.Reason)
}

// FailureError reports a failed assertion: the subject did not
// satisfy (or, under negation, did satisfy) the expected
// condition. Its message is built lazily so the formatting cost
// is never paid on the success path.
type FailureError struct {
	// Matcher is the name of the assertion that failed.
	Matcher string

	// Pass is the raw verdict before negation was applied.
	Pass bool

	// Negated reports whether the assertion was negated.
	Negated bool

	build func() string
	msg   string
	built bool
}

func newFailure(
	matcher string,
	pass, negated bool,
	build func() string,
) *FailureError {
	return &FailureError{
		Matcher: matcher,
		Pass:    pass,
		Negated: negated,
		build:   build,
	}
}

// Message returns the explanatory text, building it on first
// use.
func (e *FailureError) Message() string {
	if !e.built {
		e.msg = e.build()
		e.built = true
	}
	return e.msg
}

func (e *FailureError) Error() string {
	return e.Message()
}
