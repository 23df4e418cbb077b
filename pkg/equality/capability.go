package equality

import "reflect"

// Equable is implemented by values that define their own
// equality rule. It takes precedence over generic structural
// recursion.
type Equable interface {
	IsEqual(other any) bool
}

// customEqual dispatches to a value's own equality capability:
// the Equable interface, or a conventional Equal method taking
// one argument of a compatible type and returning bool (the
// time.Time convention). The second return reports whether a
// capability was found and applied.
func customEqual(va, vb reflect.Value) (eq, handled bool) {
	a := interfaceOf(va)
	if a == nil {
		return false, false
	}

	if e, ok := a.(Equable); ok {
		return e.IsEqual(interfaceOf(vb)), true
	}

	m := va.MethodByName("Equal")
	if !m.IsValid() {
		return false, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 ||
		mt.Out(0).Kind() != reflect.Bool {
		return false, false
	}

	arg := unwrap(vb)
	if !arg.IsValid() || !arg.Type().AssignableTo(mt.In(0)) {
		// A capability exists but the counterpart does not fit
		// its argument type. Let generic recursion decide, so
		// pointer pairs still deref down to the capable values.
		return false, false
	}
	return m.Call([]reflect.Value{arg})[0].Bool(), true
}
