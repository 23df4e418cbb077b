package value_test

import (
	"iter"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

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

func TestClassify_Kinds(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want value.Kind
	}{
		{"nil", nil, value.KindNil},
		{"nil pointer", (*int)(nil), value.KindNil},
		{"bool", true, value.KindScalar},
		{"int", 42, value.KindScalar},
		{"float", 3.14, value.KindScalar},
		{"string", "hello", value.KindText},
		{"any slice", []any{1, "a"}, value.KindSequence},
		{"string slice", []string{"a"}, value.KindSequence},
		{"int slice", []int{1, 2}, value.KindSequence},
		{"byte slice", []byte("abc"), value.KindBuffer},
		{"float array", [3]float64{1, 2, 3}, value.KindBuffer},
		{"map", map[string]int{"a": 1}, value.KindRecord},
		{"struct", struct{ A int }{1}, value.KindRecord},
		{"set", stringSet{"a": {}}, value.KindSet},
		{
			"pattern",
			regexp.MustCompile(`ab+`),
			value.KindPattern,
		},
		{"channel", make(chan int), value.KindStream},
		{
			"sequence producer",
			iter.Seq[any](func(func(any) bool) {}),
			value.KindStream,
		},
		{"custom equality", time.Now(), value.KindCustom},
		{"func", func() {}, value.KindOpaque},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, value.Classify(tc.in))
		})
	}
}

func TestClassify_PointerFollowsPointee(t *testing.T) {
	n := 7
	assert.Equal(t, value.KindScalar, value.Classify(&n))

	b := []byte("abc")
	assert.Equal(t, value.KindBuffer, value.Classify(&b))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "record", value.KindRecord.String())
	assert.Equal(t, "unknown", value.Kind(99).String())
}
