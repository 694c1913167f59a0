package datacontext

import (
	"fmt"
	"reflect"
)

// Binder precomputes the mapping from configured collection names to typed
// accessors against one data-context shape. Binding happens once during
// registration, so a collection name that does not exist on the context
// becomes a startup configuration error instead of a per-request surprise.
//
// A built binder is read-only and safe for concurrent use.
type Binder struct {
	contextType reflect.Type
	accessors   map[string]accessor
}

// accessor reads one bound collection property off a context value.
type accessor func(v reflect.Value) (reflect.Value, bool)

// NewBinder resolves every configured collection name against the data
// context type and fails with ErrUnknownCollection for any name the context
// does not expose.
func NewBinder(contextType reflect.Type, collections ...string) (*Binder, error) {
	if contextType == nil {
		return nil, ErrInvalidContext
	}
	base := contextType
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct && contextType.NumMethod() == 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContext, contextType)
	}

	b := &Binder{
		contextType: contextType,
		accessors:   make(map[string]accessor, len(collections)),
	}
	for _, name := range collections {
		acc, err := bindProperty(contextType, base, name)
		if err != nil {
			return nil, err
		}
		b.accessors[name] = acc
	}
	return b, nil
}

// bindProperty resolves one collection name to a field or method accessor on
// the context type.
func bindProperty(contextType, base reflect.Type, name string) (accessor, error) {
	if base.Kind() == reflect.Struct {
		if f, ok := base.FieldByName(name); ok && f.IsExported() {
			index := f.Index
			return func(v reflect.Value) (reflect.Value, bool) {
				for v.Kind() == reflect.Pointer {
					if v.IsNil() {
						return reflect.Value{}, false
					}
					v = v.Elem()
				}
				return v.FieldByIndex(index), true
			}, nil
		}
	}

	for _, t := range []reflect.Type{contextType, reflect.PointerTo(base)} {
		if m, ok := t.MethodByName(name); ok && m.Type.NumIn() == 1 && m.Type.NumOut() == 1 {
			return func(v reflect.Value) (reflect.Value, bool) {
				mv := v.MethodByName(name)
				if !mv.IsValid() && v.Kind() != reflect.Pointer {
					// A method bound via the pointer receiver must
					// still resolve when the context arrives by
					// value.
					ptr := reflect.New(v.Type())
					ptr.Elem().Set(v)
					mv = ptr.MethodByName(name)
				}
				if !mv.IsValid() {
					return reflect.Value{}, false
				}
				return mv.Call(nil)[0], true
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q on %v", ErrUnknownCollection, name, contextType)
}

// Collection returns the bound collection's full contents. Names that were
// never bound report "none". Materialization cost matches the package-level
// Collection function.
func (b *Binder) Collection(dataContext any, name string) ([]any, bool) {
	v, ok := b.read(dataContext, name)
	if !ok {
		return nil, false
	}
	return materialize(v)
}

// Member scans the bound collection for the element whose identity
// stringifies equal to id.
func (b *Binder) Member(dataContext any, name, id string) (any, bool) {
	v, ok := b.read(dataContext, name)
	if !ok || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
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

// Collections returns the bound collection names, unordered.
func (b *Binder) Collections() []string {
	names := make([]string, 0, len(b.accessors))
	for name := range b.accessors {
		names = append(names, name)
	}
	return names
}

func (b *Binder) read(dataContext any, name string) (reflect.Value, bool) {
	acc, ok := b.accessors[name]
	if !ok || dataContext == nil {
		return reflect.Value{}, false
	}
	return acc(reflect.ValueOf(dataContext))
}
