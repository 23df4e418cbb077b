// Package assertion provides a declarative assertion layer on
// top of the matching core: named assertion definitions, an
// extensible evaluation engine, and suite loading from YAML or
// JSON.
package assertion

// Definition describes a single declarative assertion to
// evaluate against a named value.
type Definition struct {
	// Type is the evaluator type (e.g., "to_equal",
	// "contains", "close_to").
	Type string `json:"type"`

	// Target is the name of the value to check.
	Target string `json:"target"`

	// Value is the expected value for single-value assertions.
	Value any `json:"value,omitempty"`

	// Values holds additional arguments for multi-argument
	// assertions (e.g., the precision of "close_to").
	Values []any `json:"values,omitempty"`

	// Negated inverts the verdict, mirroring the dispatcher's
	// negation flag. Malformed assertions still fail regardless
	// of negation.
	Negated bool `json:"negated,omitempty"`

	// Message is a human-readable description shown on
	// failure.
	Message string `json:"message,omitempty"`
}

// Result captures the outcome of evaluating a single assertion.
type Result struct {
	// Type is the assertion type that was evaluated.
	Type string `json:"type"`

	// Target is the name of the value checked.
	Target string `json:"target"`

	// Expected is the value the assertion expected.
	Expected any `json:"expected"`

	// Actual is the value that was observed.
	Actual any `json:"actual"`

	// Passed indicates whether the assertion succeeded.
	Passed bool `json:"passed"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`
}
