// Package datacontext resolves named entity collections on an opaque data
// context object: any value exposing collections as exported struct fields
// or niladic methods, with property names corresponding 1:1 to configured
// resource collection names.
//
// Lookup misses are a valid outcome, reported through a boolean, never an
// error: request handlers branch on "none" rather than recover from
// failures.
package datacontext

import (
	"fmt"
	"reflect"
)

// identityMethod matches the resource identity capability. Member lookup
// reads identities best-effort, so the method is probed by name rather than
// through a typed interface.
const identityMethod = "ResourceID"

// Collection locates the named collection on the data context and returns
// its full contents.
//
// The collection is materialized eagerly: when the backing property is a
// lazily-populated view, reading it here forces the whole collection into
// memory. That cost is part of the contract; callers who need streaming
// should use Member or read the backing store directly.
func Collection(dataContext any, name string) ([]any, bool) {
	v, ok := property(dataContext, name)
	if !ok {
		return nil, false
	}
	return materialize(v)
}

// Member scans the named collection for the first element whose identity
// stringifies equal to id. Identities are read best-effort via the identity
// capability, falling back to an ID field, so collections with mixed or
// non-comparable identity types still resolve. No match is "none", not a
// failure.
func Member(dataContext any, name, id string) (any, bool) {
	v, ok := property(dataContext, name)
	if !ok {
		return nil, false
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, false
	}
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if key, ok := identityString(elem); ok && key == id {
			return elem.Interface(), true
		}
	}
	return nil, false
}

// property locates a named property on the data context: an exported struct
// field first, then a niladic single-result method.
func property(dataContext any, name string) (reflect.Value, bool) {
	if dataContext == nil {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(dataContext)
	return propertyOn(v, name)
}

func propertyOn(v reflect.Value, name string) (reflect.Value, bool) {
	base := v
	for base.Kind() == reflect.Pointer {
		if base.IsNil() {
			return reflect.Value{}, false
		}
		base = base.Elem()
	}

	if base.Kind() == reflect.Struct {
		if f, ok := base.Type().FieldByName(name); ok && f.IsExported() {
			return base.FieldByIndex(f.Index), true
		}
	}

	// Methods may live on the pointer receiver.
	for _, candidate := range []reflect.Value{v, base} {
		m := candidate.MethodByName(name)
		if m.IsValid() && m.Type().NumIn() == 0 && m.Type().NumOut() == 1 {
			return m.Call(nil)[0], true
		}
	}

	return reflect.Value{}, false
}

// materialize copies a sequence property into a fully-populated slice.
func materialize(v reflect.Value) ([]any, bool) {
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = v.Index(i).Interface()
	}
	return out, true
}

// identityString reads an element's identity and stringifies it.
func identityString(elem reflect.Value) (string, bool) {
	for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface {
		if elem.IsNil() {
			return "", false
		}
		elem = elem.Elem()
	}

	m := elem.MethodByName(identityMethod)
	if !m.IsValid() {
		// The capability may be declared on the pointer receiver.
		ptr := reflect.New(elem.Type())
		ptr.Elem().Set(elem)
		m = ptr.MethodByName(identityMethod)
	}
	if m.IsValid() && m.Type().NumIn() == 0 && m.Type().NumOut() == 1 {
		return fmt.Sprint(m.Call(nil)[0].Interface()), true
	}

	if elem.Kind() == reflect.Struct {
		if f := elem.FieldByName("ID"); f.IsValid() {
			return fmt.Sprint(f.Interface()), true
		}
	}

	return "", false
}
