package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeAllPass(t *testing.T) {
	e := NewEngine()
	all := CompositeAllPass(e, []Definition{
		{Type: "contains", Value: "hello"},
		{Type: "has_length", Value: 11},
	})

	passed, msg := all(Definition{}, "hello world")
	assert.True(t, passed)
	assert.Contains(t, msg, "all 2 assertions passed")

	passed, msg = all(Definition{}, "hello")
	assert.False(t, passed)
	assert.Contains(t, msg, "has_length")
}

func TestCompositeAnyPass(t *testing.T) {
	e := NewEngine()
	any := CompositeAnyPass(e, []Definition{
		{Type: "contains", Value: "xyz"},
		{Type: "contains", Value: "world"},
	})

	passed, msg := any(Definition{}, "hello world")
	assert.True(t, passed)
	assert.Contains(t, msg, "passed")

	passed, msg = any(Definition{}, "hello")
	assert.False(t, passed)
	assert.Contains(t, msg, "none of 2 assertions passed")
}

func TestComposite_RegistersAsCustomEvaluator(t *testing.T) {
	e := NewEngine()

	err := e.Register("looks_greeting", CompositeAnyPass(e,
		[]Definition{
			{Type: "contains", Value: "hello"},
			{Type: "contains", Value: "hi"},
		},
	))
	require.NoError(t, err)

	r := e.Evaluate(
		Definition{Type: "looks_greeting", Target: "out"},
		"well hi there",
	)
	assert.True(t, r.Passed)
}
