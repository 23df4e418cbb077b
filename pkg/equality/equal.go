// Package equality implements cycle-safe polymorphic equality
// under two rule sets: identity-aware strict comparison and
// structural value equivalence.
package equality

import (
	"math"
	"reflect"
	"regexp"

	"digital.vasic.matchers/pkg/value"
)

// Mode selects the equality rule set.
type Mode int

const (
	// Strict is identity-aware: composite values are equal only
	// when they are the same reference, scalars compare by
	// identity (NaN equals NaN).
	Strict Mode = iota

	// Structural is value equivalence: composite values are
	// compared recursively by shape and content, NaN is not
	// equal to NaN.
	Structural
)

// Equal reports whether a and b are equal under the given mode.
// The comparison allocates fresh cycle-detection state per call,
// never mutates its operands, and terminates on self-referential
// structures.
func Equal(a, b any, mode Mode) bool {
	if mode == Strict {
		return strictEqual(a, b)
	}

	c := &comparer{visited: make(map[visitedPair]bool)}
	return c.equal(reflect.ValueOf(a), reflect.ValueOf(b))
}

// strictEqual compares by reference identity for composite
// kinds and by scalar identity otherwise.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)

	if fa, aok := asFloat(va); aok {
		fb, bok := asFloat(vb)
		if !bok {
			return false
		}
		// Identity semantics: NaN is the same value as NaN.
		if math.IsNaN(fa) && math.IsNaN(fb) {
			return true
		}
		return numbersEqual(va, vb)
	}

	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.UnsafePointer:
		// Identity requires the same type: nil pointers of
		// distinct types all carry address zero, and a struct
		// shares its address with its first field.
		if va.Type() != vb.Type() {
			return false
		}
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		if va.Type() != vb.Type() {
			return false
		}
		return va.Pointer() == vb.Pointer() &&
			va.Len() == vb.Len()
	}

	if va.Type() != vb.Type() || !va.Comparable() {
		return false
	}
	return a == b
}

// visitedPair identifies a (left, right) node pair currently on
// the comparison stack. Pointer identity alone is not enough:
// a struct shares an address with its first field, so the types
// participate in the key.
type visitedPair struct {
	a, b   uintptr
	ta, tb reflect.Type
}

// comparer holds the per-call visited-pair set. The set is
// discarded when the top-level Equal returns, so no state leaks
// between unrelated comparisons.
type comparer struct {
	visited map[visitedPair]bool
}

func (c *comparer) equal(va, vb reflect.Value) bool {
	va, vb = unwrap(va), unwrap(vb)

	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}

	// Custom capabilities win over generic shape recursion.
	if eq, handled := customEqual(va, vb); handled {
		return eq
	}
	if eq, handled := patternEqual(va, vb); handled {
		return eq
	}

	if fa, ok := asFloat(va); ok {
		fb, bok := asFloat(vb)
		if !bok {
			return false
		}
		// Value equivalence follows IEEE-754: NaN != NaN.
		if math.IsNaN(fa) || math.IsNaN(fb) {
			return false
		}
		return numbersEqual(va, vb)
	}

	if sa, handled := asSet(va); handled {
		sb, bok := asSet(vb)
		if !bok {
			return false
		}
		leave, cyclic := c.enter(va, vb)
		if cyclic {
			return true
		}
		if leave != nil {
			defer leave()
		}
		return c.setsEqual(sa, sb)
	}

	leave, cyclic := c.enter(va, vb)
	if cyclic {
		// Pair already on the stack: treat the cyclic branch as
		// equal and let sibling branches decide.
		return true
	}
	if leave != nil {
		defer leave()
	}

	switch va.Kind() {
	case reflect.Bool:
		return vb.Kind() == reflect.Bool &&
			va.Bool() == vb.Bool()
	case reflect.String:
		return vb.Kind() == reflect.String &&
			va.String() == vb.String()
	case reflect.Slice, reflect.Array:
		return c.sequencesEqual(va, vb)
	case reflect.Map:
		return c.mapsEqual(va, vb)
	case reflect.Struct:
		return c.structsEqual(va, vb)
	case reflect.Pointer:
		if vb.Kind() != reflect.Pointer {
			return false
		}
		return c.equal(va.Elem(), vb.Elem())
	case reflect.Chan, reflect.Func,
		reflect.UnsafePointer:
		return vb.Kind() == va.Kind() &&
			va.Pointer() == vb.Pointer()
	}

	if va.Type() == vb.Type() && va.Comparable() {
		return va.Interface() == vb.Interface()
	}
	return false
}

// enter marks a node pair as being on the comparison stack and
// reports whether it was already there, which means the walk has
// come back around a cycle. Only pointer-bearing kinds can
// participate in cycles, so only those are tracked. The returned
// leave function removes the mark again: a mark must not outlive
// the call that set it, or a failed candidate trial inside a set
// comparison would make later trials mistake the same pair for a
// cycle.
func (c *comparer) enter(
	va, vb reflect.Value,
) (leave func(), cyclic bool) {
	if !pointerish(va) || !pointerish(vb) {
		return nil, false
	}

	key := visitedPair{
		a:  va.Pointer(),
		b:  vb.Pointer(),
		ta: va.Type(),
		tb: vb.Type(),
	}
	if c.visited[key] {
		return nil, true
	}
	c.visited[key] = true
	return func() { delete(c.visited, key) }, false
}

func pointerish(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		return !v.IsNil()
	}
	return false
}

func (c *comparer) sequencesEqual(va, vb reflect.Value) bool {
	if vb.Kind() != reflect.Slice && vb.Kind() != reflect.Array {
		return false
	}
	if va.Kind() == reflect.Slice && vb.Kind() == reflect.Slice {
		if va.IsNil() != vb.IsNil() {
			return false
		}
	}
	if va.Len() != vb.Len() {
		return false
	}
	for i := 0; i < va.Len(); i++ {
		if !c.equal(va.Index(i), vb.Index(i)) {
			return false
		}
	}
	return true
}

// mapsEqual compares two maps as records: same key set and a
// recursively equal value at every key. Keys are matched by Go
// map identity; key order is irrelevant by construction.
func (c *comparer) mapsEqual(va, vb reflect.Value) bool {
	if vb.Kind() != reflect.Map {
		return false
	}
	if va.Len() != vb.Len() {
		return false
	}

	it := va.MapRange()
	for it.Next() {
		other := mapLookup(vb, it.Key())
		if !other.IsValid() {
			return false
		}
		if !c.equal(it.Value(), other) {
			return false
		}
	}
	return true
}

// mapLookup fetches m[key], tolerating a key whose static type
// differs from the map's key type.
func mapLookup(m, key reflect.Value) reflect.Value {
	kt := m.Type().Key()
	if key.Kind() == reflect.Interface {
		key = key.Elem()
	}
	if !key.IsValid() || !key.Type().AssignableTo(kt) {
		if key.IsValid() && key.Type().ConvertibleTo(kt) {
			key = key.Convert(kt)
		} else {
			return reflect.Value{}
		}
	}
	return m.MapIndex(key)
}

// structsEqual compares structs of the same dynamic type field
// by field. Distinct struct types are never structurally equal;
// a record's identity includes its declared shape.
func (c *comparer) structsEqual(va, vb reflect.Value) bool {
	if vb.Kind() != reflect.Struct || va.Type() != vb.Type() {
		return false
	}
	for i := 0; i < va.NumField(); i++ {
		if !va.Type().Field(i).IsExported() {
			continue
		}
		if !c.equal(va.Field(i), vb.Field(i)) {
			return false
		}
	}
	return true
}

// setsEqual matches two sets one-to-one: same cardinality and
// every element of a has a structurally equal, not yet claimed
// counterpart in b. Collections under test are small, so the
// quadratic scan is fine.
func (c *comparer) setsEqual(a, b value.Set) bool {
	if a.Len() != b.Len() {
		return false
	}

	elems := make([]any, 0, b.Len())
	b.Each(func(e any) bool {
		elems = append(elems, e)
		return true
	})
	used := make([]bool, len(elems))

	matched := true
	a.Each(func(e any) bool {
		for i, other := range elems {
			if used[i] {
				continue
			}
			if c.equal(
				reflect.ValueOf(e),
				reflect.ValueOf(other),
			) {
				used[i] = true
				return true
			}
		}
		matched = false
		return false
	})
	return matched
}

// unwrap strips interface wrappers so the comparison always
// sees concrete values.
func unwrap(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() == reflect.Interface && v.IsNil() {
		return reflect.Value{}
	}
	return v
}

func asSet(v reflect.Value) (value.Set, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	s, ok := v.Interface().(value.Set)
	return s, ok
}

// patternEqual compares compiled regular expressions by pattern
// text; the text includes the inline flags they were compiled
// with.
func patternEqual(va, vb reflect.Value) (eq, handled bool) {
	ra, aok := interfaceOf(va).(*regexp.Regexp)
	if !aok {
		return false, false
	}
	rb, bok := interfaceOf(vb).(*regexp.Regexp)
	if !bok {
		return false, true
	}
	return ra.String() == rb.String(), true
}

func interfaceOf(v reflect.Value) any {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	return v.Interface()
}
