package value

import (
	"fmt"
	"iter"
	"reflect"
	"unicode/utf8"
)

// NotIterableError reports that a value cannot be normalized
// into an element sequence. Containment checks treat this as a
// hard precondition failure, not a soft mismatch.
type NotIterableError struct {
	// Value is the offending container candidate.
	Value any
}

func (e *NotIterableError) Error() string {
	if e.Value == nil {
		return "nil value is not iterable"
	}
	return fmt.Sprintf(
		"value of type %T is not iterable", e.Value,
	)
}

// Elements normalizes a container-like value into a sequence of
// elements. Accepted shapes are text (iterated per character),
// sequences, buffers, sets, channels, and iter.Seq[any]
// producers. Everything else, including nil and plain records,
// fails with *NotIterableError.
//
// Channels are one-shot: only elements immediately available
// (buffered or from a closed channel) are produced, and a
// channel exhausted by a previous pass yields an empty sequence
// rather than an error.
func Elements(v any) (iter.Seq[any], error) {
	if v == nil {
		return nil, &NotIterableError{Value: v}
	}

	if s, ok := v.(Set); ok {
		return setElements(s), nil
	}
	if seq, ok := v.(iter.Seq[any]); ok {
		return seq, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return textElements(rv.String()), nil
	case reflect.Slice, reflect.Array:
		return indexedElements(rv), nil
	case reflect.Chan:
		if rv.Type().ChanDir() == reflect.SendDir {
			return nil, &NotIterableError{Value: v}
		}
		return channelElements(rv), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, &NotIterableError{Value: v}
		}
		return Elements(rv.Elem().Interface())
	}

	return nil, &NotIterableError{Value: v}
}

// textElements yields each character of s as a one-character
// string.
func textElements(s string) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, r := range s {
			if !yield(string(r)) {
				return
			}
		}
	}
}

func indexedElements(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := 0; i < rv.Len(); i++ {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	}
}

func setElements(s Set) iter.Seq[any] {
	return func(yield func(any) bool) {
		s.Each(yield)
	}
}

// channelElements drains a channel without blocking: it stops at
// the first receive that would block, so an open channel with no
// buffered elements produces an empty sequence.
func channelElements(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for {
			elem, ok := rv.TryRecv()
			if !elem.IsValid() || !ok {
				return
			}
			if !yield(elem.Interface()) {
				return
			}
		}
	}
}

// LengthOf returns the well-defined length of a value, or false
// when the value has no length concept. Text length is counted
// in characters, not bytes.
func LengthOf(v any) (int, bool) {
	if v == nil {
		return 0, false
	}

	if s, ok := v.(Set); ok {
		return s.Len(), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Array, reflect.Map,
		reflect.Chan:
		return rv.Len(), true
	case reflect.Pointer:
		if rv.IsNil() {
			return 0, false
		}
		return LengthOf(rv.Elem().Interface())
	}

	return 0, false
}
