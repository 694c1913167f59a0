package relationship

import (
	"fmt"
	"reflect"
)

// Factory materializes new entity instances during relationship writes.
// The to-many-through variant uses it to create intermediate join entities
// before assignment; the other variants accept but ignore it.
type Factory interface {
	New(t reflect.Type) (any, error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(t reflect.Type) (any, error)

// New implements Factory.
func (f FactoryFunc) New(t reflect.Type) (any, error) {
	return f(t)
}

// DefaultFactory allocates zero-valued instances with reflect.New and
// returns them as pointers.
var DefaultFactory Factory = FactoryFunc(func(t reflect.Type) (any, error) {
	if t == nil {
		return nil, fmt.Errorf("cannot materialize a nil type")
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return reflect.New(t).Interface(), nil
})
