// Package scan locates concrete implementations of open generic contracts
// inside a type universe: the full set of type definitions a bootstrap
// collaborator hands over at startup. The scanner itself never loads types.
package scan

import "reflect"

// Universe is an ordered collection of type references. Scans enumerate it
// in order, and "first match wins" policies are defined in terms of that
// order, so bootstrap code should build it deterministically.
type Universe []reflect.Type

// UniverseOf builds a universe from example values. Nil values are skipped;
// pointer types are kept as supplied.
func UniverseOf(values ...any) Universe {
	u := make(Universe, 0, len(values))
	for _, v := range values {
		t := reflect.TypeOf(v)
		if t == nil {
			continue
		}
		u = append(u, t)
	}
	return u
}

// Contains reports whether the universe holds the exact type t.
func (u Universe) Contains(t reflect.Type) bool {
	for _, candidate := range u {
		if candidate == t {
			return true
		}
	}
	return false
}
