package assertion

import "fmt"

// CompositeAllPass returns an Evaluator that runs a fixed set
// of sub-assertions against the same value and requires all to
// pass.
func CompositeAllPass(
	engine Engine,
	subAssertions []Definition,
) Evaluator {
	return func(_ Definition, value any) (bool, string) {
		for _, sub := range subAssertions {
			r := engine.Evaluate(sub, value)
			if !r.Passed {
				return false, fmt.Sprintf(
					"assertion '%s' failed: %s",
					r.Type, r.Message,
				)
			}
		}
		return true, fmt.Sprintf(
			"all %d assertions passed", len(subAssertions),
		)
	}
}

// CompositeAnyPass returns an Evaluator that runs a fixed set
// of sub-assertions against the same value and requires at
// least one to pass.
func CompositeAnyPass(
	engine Engine,
	subAssertions []Definition,
) Evaluator {
	return func(_ Definition, value any) (bool, string) {
		for _, sub := range subAssertions {
			r := engine.Evaluate(sub, value)
			if r.Passed {
				return true, fmt.Sprintf(
					"assertion '%s' passed", r.Type,
				)
			}
		}
		return false, fmt.Sprintf(
			"none of %d assertions passed",
			len(subAssertions),
		)
	}
}
