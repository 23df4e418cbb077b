package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAssertionString_TypeAndValue(t *testing.T) {
	def := ParseAssertionString("contains:func")

	assert.Equal(t, "contains", def.Type)
	assert.Equal(t, "func", def.Value)
	assert.False(t, def.Negated)
}

func TestParseAssertionString_TypeOnly(t *testing.T) {
	def := ParseAssertionString("is_nil")

	assert.Equal(t, "is_nil", def.Type)
	assert.Nil(t, def.Value)
}

func TestParseAssertionString_NegationPrefix(t *testing.T) {
	def := ParseAssertionString("not:contains:func")

	assert.Equal(t, "contains", def.Type)
	assert.Equal(t, "func", def.Value)
	assert.True(t, def.Negated)
}

func TestParseAssertionString_NumericLiterals(t *testing.T) {
	def := ParseAssertionString("has_length:100")
	assert.Equal(t, 100, def.Value)

	def = ParseAssertionString("close_to:0.3")
	assert.Equal(t, 0.3, def.Value)

	def = ParseAssertionString("to_be:true")
	assert.Equal(t, true, def.Value)
}

func TestParseAssertionString_ValueKeepsColons(t *testing.T) {
	def := ParseAssertionString("contains:a:b:c")

	assert.Equal(t, "contains", def.Type)
	assert.Equal(t, "a:b:c", def.Value)
}

func TestParseAssertionString_RoundTripsThroughEngine(t *testing.T) {
	e := NewEngine()

	r := e.Evaluate(
		ParseAssertionString("not:contains:xyz"), "hello",
	)
	assert.True(t, r.Passed)

	r = e.Evaluate(
		ParseAssertionString("greater_than:3"), 5,
	)
	assert.True(t, r.Passed)
}
