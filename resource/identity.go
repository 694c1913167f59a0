// Package resource discovers which types in a loaded type universe qualify
// as addressable resources and records their identity shape. Discovery runs
// once at startup; the resulting registry is read-only and safe for
// concurrent use.
package resource

import "reflect"

// Identifiable is the identity capability. A type qualifies as a resource
// when it exposes a single typed identity value through this interface.
//
// Example:
//
//	type Article struct {
//		ID    int64
//		Title string
//	}
//
//	func (a Article) ResourceID() int64 { return a.ID }
type Identifiable[ID comparable] interface {
	ResourceID() ID
}

// identityMethod is the method reflection probes for when classifying
// candidate types. It matches the single method of Identifiable.
const identityMethod = "ResourceID"

// IsIdentifiable reports whether t implements the identity capability in any
// generic form. This is the weak classification check: it only requires that
// the identity method exists with the right shape, without caring which
// identity type it is bound to.
//
// It is safe to call on every type in a large universe: non-struct kinds,
// channels, funcs and nil all simply report false.
func IsIdentifiable(t reflect.Type) bool {
	_, ok := identityMethodOf(t)
	return ok
}

// IdentityType returns the identity type bound to t's identity capability.
// The boolean is false when t does not implement the capability.
//
// Go's method sets guarantee a type implements the capability at most once,
// so the result is always deterministic.
func IdentityType(t reflect.Type) (reflect.Type, bool) {
	m, ok := identityMethodOf(t)
	if !ok {
		return nil, false
	}
	return m.Type.Out(0), true
}

// identityMethodOf locates the identity method on t, looking through the
// pointer method set for value types so pointer-receiver implementations
// are recognized.
func identityMethodOf(t reflect.Type) (reflect.Method, bool) {
	if t == nil {
		return reflect.Method{}, false
	}

	m, ok := t.MethodByName(identityMethod)
	if !ok && t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
		m, ok = reflect.PointerTo(t).MethodByName(identityMethod)
	}
	if !ok {
		return reflect.Method{}, false
	}

	// The receiver counts as an input on concrete types but not on
	// interface types.
	wantIn := 1
	if t.Kind() == reflect.Interface {
		wantIn = 0
	}
	if m.Type.NumIn() != wantIn || m.Type.NumOut() != 1 {
		return reflect.Method{}, false
	}

	// Identifiable constrains the identity type to comparable.
	if !m.Type.Out(0).Comparable() {
		return reflect.Method{}, false
	}

	return m, true
}
