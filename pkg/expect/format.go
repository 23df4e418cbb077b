package expect

import (
	"fmt"
	"strings"
)

// Formatter is the boundary to the message-rendering
// collaborator. It receives the full context of a failed
// assertion and returns a thunk producing the display string.
// The dispatcher guarantees the thunk is only invoked when the
// failure is actually reported, never on a successful
// assertion.
type Formatter func(
	matcher string,
	subject, expected any,
	negated bool,
	extra []any,
) func() string

// defaultFormat is a plain formatter for standalone use. Test
// runners are expected to install their own via WithFormatter.
func defaultFormat(
	matcher string,
	subject, expected any,
	negated bool,
	extra []any,
) func() string {
	return func() string {
		verb := "to"
		if negated {
			verb = "not to"
		}
		desc := matcherPhrase(matcher)
		if expected == nil && len(extra) == 0 {
			return fmt.Sprintf(
				"expected %#v %s %s", subject, verb, desc,
			)
		}
		return fmt.Sprintf(
			"expected %#v %s %s %#v",
			subject, verb, desc, expected,
		)
	}
}

// matcherPhrase turns a matcher name like ToBeCloseTo into the
// phrase "be close to".
func matcherPhrase(matcher string) string {
	var words []string
	start := 0
	for i, r := range matcher {
		if i > 0 && r >= 'A' && r <= 'Z' {
			words = append(words, matcher[start:i])
			start = i
		}
	}
	words = append(words, matcher[start:])

	phrase := strings.ToLower(strings.Join(words, " "))
	return strings.TrimPrefix(phrase, "to ")
}
