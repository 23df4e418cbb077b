package contain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.matchers/pkg/contain"
	"digital.vasic.matchers/pkg/value"
)

type stringSet map[string]struct{}

func (s stringSet) Len() int { return len(s) }

func (s stringSet) Each(fn func(element any) bool) {
	for e := range s {
		if !fn(e) {
			return
		}
	}
}

func TestContains_TextIsSubstringSearch(t *testing.T) {
	found, err := contain.Contains("11112111", "2", false)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = contain.Contains("11112111", "3", false)
	require.NoError(t, err)
	assert.False(t, found)

	// Multi-character targets match contiguously, unlike an
	// element-wise scan.
	found, err = contain.Contains("hello world", "lo wo", false)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestContains_StructuralTextScansPerCharacter(t *testing.T) {
	// No substring rule under structural comparison: a text
	// container yields single characters, so a multi-character
	// target never matches.
	found, err := contain.Contains("foo-bar", "o-b", true)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = contain.Contains("foo-bar", "b", true)
	require.NoError(t, err)
	assert.True(t, found)

	// A non-text target is scanned too, not rejected.
	found, err = contain.Contains("123", 2, true)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestContains_TextRequiresTextTarget(t *testing.T) {
	_, err := contain.Contains("123", 2, false)
	assert.ErrorIs(t, err, contain.ErrTextTarget)
}

func TestContains_Sequence(t *testing.T) {
	found, err := contain.Contains([]int{1, 2, 3}, 2, false)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = contain.Contains([]int{1, 2, 3}, 4, false)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestContains_IdentityVsStructural(t *testing.T) {
	target := map[string]string{"a": "b"}
	container := []any{
		map[string]string{"a": "b"},
		map[string]string{"a": "c"},
	}

	// No element is the same reference.
	found, err := contain.Contains(container, target, false)
	require.NoError(t, err)
	assert.False(t, found)

	// A value-equal element is found under structural rules.
	found, err = contain.Contains(container, target, true)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestContains_IdentityMatchesSameReference(t *testing.T) {
	elem := map[string]string{"a": "b"}
	container := []any{elem}

	found, err := contain.Contains(container, elem, false)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestContains_Set(t *testing.T) {
	s := stringSet{"a": {}, "b": {}}

	found, err := contain.Contains(s, "b", false)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = contain.Contains(s, "z", false)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestContains_OneShotChannel(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3

	found, err := contain.Contains(ch, 2, false)
	require.NoError(t, err)
	assert.True(t, found)

	// The first check consumed the sequence up to the match;
	// an exhausted one-shot behaves as an empty container.
	found, err = contain.Contains(ch, 1, false)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestContains_NotIterable(t *testing.T) {
	cases := []struct {
		name      string
		container any
	}{
		{"nil", nil},
		{"scalar", 42},
		{"record", map[string]int{"a": 1}},
		{"struct", struct{ A int }{9}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := contain.Contains(tc.container, 1, false)

			var notIterable *value.NotIterableError
			assert.ErrorAs(t, err, &notIterable)
		})
	}
}
