package resource

import (
	"fmt"
	"reflect"

	strutil "github.com/strata-api/strata/internal/util/strings"
)

// Descriptor is the immutable record produced for every discovered resource:
// the resource type itself and the identity type bound to its identity
// capability.
//
// Descriptors compare structurally: two descriptors with the same resource
// type and identity type are equal regardless of how or when they were
// built. The zero Descriptor is the "not a resource" sentinel.
type Descriptor struct {
	// Type is the resource type, normalized to its non-pointer form.
	Type reflect.Type

	// IdentityType is the exact type argument bound to the identity
	// capability.
	IdentityType reflect.Type
}

// TryDescribe classifies t and, when it qualifies as a resource, packages it
// into a Descriptor. A type qualifies when it implements the identity
// capability in any form; the concrete identity type is then extracted from
// the capability's method signature.
//
// TryDescribe is a pure function and never panics, so it is safe to run over
// every type in a universe, including channels, funcs and scalars.
func TryDescribe(t reflect.Type) (Descriptor, bool) {
	if !IsIdentifiable(t) {
		return Descriptor{}, false
	}
	id, ok := IdentityType(t)
	if !ok {
		return Descriptor{}, false
	}
	return Descriptor{Type: indirect(t), IdentityType: id}, true
}

// IsZero reports whether d is the "not a resource" sentinel.
func (d Descriptor) IsZero() bool {
	return d.Type == nil && d.IdentityType == nil
}

// Name returns the resource's type name.
func (d Descriptor) Name() string {
	if d.Type == nil {
		return ""
	}
	return d.Type.Name()
}

// CollectionName returns the default name of the resource's collection:
// the pluralized snake_case form of the type name ("ArticleTag" ->
// "article_tags"). Callers may override it when registering.
func (d Descriptor) CollectionName() string {
	if d.Type == nil {
		return ""
	}
	return strutil.Pluralize(strutil.ToSnakeCase(d.Type.Name()))
}

// String returns a compact human-readable form, e.g. "Article[int64]".
func (d Descriptor) String() string {
	if d.IsZero() {
		return "<none>"
	}
	return fmt.Sprintf("%s[%s]", d.Type.Name(), d.IdentityType.String())
}

// indirect strips pointer layers so descriptors are keyed by the underlying
// resource type.
func indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
