package assertion

import (
	"strconv"
	"strings"
)

// ParseAssertionString parses a compact assertion string of the
// form "type:value" into a Definition. A "not:" prefix negates
// the assertion; a value that parses as a number is carried as
// one. If no colon is present the entire string is the type and
// the value is nil.
//
// Examples:
//
//	"contains:func"      -> contains "func"
//	"not:contains:func"  -> negated contains "func"
//	"close_to:0.3"       -> close_to 0.3
//	"is_nil"             -> is_nil
func ParseAssertionString(s string) Definition {
	var def Definition

	if rest, ok := strings.CutPrefix(s, "not:"); ok {
		def.Negated = true
		s = rest
	}

	parts := strings.SplitN(s, ":", 2)
	def.Type = parts[0]

	if len(parts) > 1 {
		def.Value = parseLiteral(parts[1])
	}

	return def
}

// parseLiteral recognizes numeric and boolean literals so that
// "close_to:0.3" compares numbers, not text.
func parseLiteral(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
