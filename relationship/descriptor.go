package relationship

import (
	"fmt"
	"reflect"
)

// Descriptor captures everything needed to navigate, (de)serialize and
// mutate one declared relationship field on a resource type, independent of
// the concrete resource. One descriptor exists per declared relationship
// field; descriptors are configured during relationship scanning and must
// not be mutated once registered.
type Descriptor struct {
	kind  Kind
	left  reflect.Type // owning resource type
	right reflect.Type // target resource type (element type for to-many)
	field string       // declared field on the owning type

	linkVisibility LinkVisibility
	includable     bool
	inverse        string

	// to-many-through only
	through     reflect.Type // join entity type
	joinField   string       // field on the owning type holding join entities
	targetField string       // field on the join entity pointing at the target
}

// NewToOne builds a descriptor for a single-target relationship declared as
// field on left, pointing at right.
func NewToOne(left, right reflect.Type, field string) (*Descriptor, error) {
	d := &Descriptor{
		kind:       ToOne,
		left:       indirect(left),
		right:      indirect(right),
		field:      field,
		includable: true,
	}
	ft, err := d.declaredField(field)
	if err != nil {
		return nil, err
	}
	if indirect(ft) != d.right {
		return nil, fmt.Errorf("%w: field %s.%s is %v, not %v", ErrTypeMismatch, d.left.Name(), field, ft, d.right)
	}
	return d, nil
}

// NewToMany builds a descriptor for a collection relationship declared as
// field on left, whose elements are right.
func NewToMany(left, right reflect.Type, field string) (*Descriptor, error) {
	d := &Descriptor{
		kind:       ToMany,
		left:       indirect(left),
		right:      indirect(right),
		field:      field,
		includable: true,
	}
	ft, err := d.declaredField(field)
	if err != nil {
		return nil, err
	}
	if ft.Kind() != reflect.Slice || indirect(ft.Elem()) != d.right {
		return nil, fmt.Errorf("%w: field %s.%s is %v, not a slice of %v", ErrTypeMismatch, d.left.Name(), field, ft, d.right)
	}
	return d, nil
}

// NewToManyThrough builds a descriptor for a collection relationship that
// traverses an intermediate join entity: left declares both the skipped
// navigation (field, a slice of right) and the join navigation (joinField, a
// slice of through), and through declares targetField pointing at right.
func NewToManyThrough(left, right, through reflect.Type, field, joinField, targetField string) (*Descriptor, error) {
	d := &Descriptor{
		kind:        ToManyThrough,
		left:        indirect(left),
		right:       indirect(right),
		field:       field,
		includable:  true,
		through:     indirect(through),
		joinField:   joinField,
		targetField: targetField,
	}
	ft, err := d.declaredField(field)
	if err != nil {
		return nil, err
	}
	if ft.Kind() != reflect.Slice || indirect(ft.Elem()) != d.right {
		return nil, fmt.Errorf("%w: field %s.%s is %v, not a slice of %v", ErrTypeMismatch, d.left.Name(), field, ft, d.right)
	}
	jt, err := d.declaredField(joinField)
	if err != nil {
		return nil, err
	}
	if jt.Kind() != reflect.Slice || indirect(jt.Elem()) != d.through {
		return nil, fmt.Errorf("%w: field %s.%s is %v, not a slice of %v", ErrTypeMismatch, d.left.Name(), joinField, jt, d.through)
	}
	tf, ok := d.through.FieldByName(targetField)
	if !ok || !tf.IsExported() {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, d.through.Name(), targetField)
	}
	if indirect(tf.Type) != d.right {
		return nil, fmt.Errorf("%w: field %s.%s is %v, not %v", ErrTypeMismatch, d.through.Name(), targetField, tf.Type, d.right)
	}
	return d, nil
}

// Kind returns the relationship's cardinality variant.
func (d *Descriptor) Kind() Kind { return d.kind }

// LeftType returns the owning resource type.
func (d *Descriptor) LeftType() reflect.Type { return d.left }

// RightType returns the target resource type. For to-many variants this is
// the element type, not the slice type.
func (d *Descriptor) RightType() reflect.Type { return d.right }

// ThroughType returns the join entity type, or nil for variants that do not
// traverse a join.
func (d *Descriptor) ThroughType() reflect.Type { return d.through }

// FieldName returns the declared field name on the owning type.
func (d *Descriptor) FieldName() string { return d.field }

// LinkVisibility returns the configured link policy.
func (d *Descriptor) LinkVisibility() LinkVisibility { return d.linkVisibility }

// Includable reports whether the relationship may appear in compound
// documents. Defaults to true.
func (d *Descriptor) Includable() bool { return d.includable }

// Inverse returns the inverse-navigation hint, or "" when none was declared.
func (d *Descriptor) Inverse() string { return d.inverse }

// SetLinkVisibility assigns the link policy. The reserved paging value is
// rejected synchronously and leaves the previous policy in place.
func (d *Descriptor) SetLinkVisibility(v LinkVisibility) error {
	if v == LinksPaging {
		return fmt.Errorf("%w: %s.%s", ErrPagingLinks, d.left.Name(), d.field)
	}
	if v < LinksUnconfigured || v > LinksAll {
		return fmt.Errorf("invalid link visibility %d on %s.%s", int(v), d.left.Name(), d.field)
	}
	d.linkVisibility = v
	return nil
}

// SetIncludable configures whether the relationship may be included.
func (d *Descriptor) SetIncludable(includable bool) {
	d.includable = includable
}

// SetInverse records the inverse-navigation hint.
func (d *Descriptor) SetInverse(field string) {
	d.inverse = field
}

// Path returns the navigation path from the owning resource to the target.
// For the plain variants this is the declared field name; the through-join
// variant traverses the join navigation instead, e.g. "ArticleTags.Tag".
func (d *Descriptor) Path() string {
	if d.kind == ToManyThrough {
		return d.joinField + "." + d.targetField
	}
	return d.field
}

// GetValue reads the declared field's current value from a resource
// instance. The instance must be a non-nil value or pointer of the owning
// type.
func (d *Descriptor) GetValue(instance any) (any, error) {
	owner, err := d.ownerValue(instance)
	if err != nil {
		return nil, err
	}
	return owner.FieldByName(d.field).Interface(), nil
}

// SetValue writes a new value into the declared field of a resource
// instance. The instance must be a non-nil pointer of the owning type so the
// write is visible to the caller. The factory is required even by variants
// that do not use it, so that every descriptor satisfies the same mutator
// contract; the through-join variant uses it to materialize join entities
// before assignment.
func (d *Descriptor) SetValue(instance, value any, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("%w: setting %s.%s", ErrNilFactory, d.left.Name(), d.field)
	}
	owner, err := d.ownerValue(instance)
	if err != nil {
		return err
	}
	if !owner.CanSet() {
		return fmt.Errorf("%w: instance of %s must be a pointer for SetValue", ErrTypeMismatch, d.left.Name())
	}

	field := owner.FieldByName(d.field)
	if err := assign(field, value); err != nil {
		return fmt.Errorf("setting %s.%s: %w", d.left.Name(), d.field, err)
	}

	if d.kind == ToManyThrough {
		return d.materializeJoins(owner, factory)
	}
	return nil
}

// materializeJoins rebuilds the join navigation from the declared field so
// that persistence sees one join entity per target.
func (d *Descriptor) materializeJoins(owner reflect.Value, factory Factory) error {
	targets := owner.FieldByName(d.field)
	joinSlice := owner.FieldByName(d.joinField)
	joins := reflect.MakeSlice(joinSlice.Type(), 0, targets.Len())

	for i := 0; i < targets.Len(); i++ {
		raw, err := factory.New(d.through)
		if err != nil {
			return fmt.Errorf("materializing %s for %s.%s: %w", d.through.Name(), d.left.Name(), d.field, err)
		}
		join := reflect.ValueOf(raw)
		for join.Kind() == reflect.Pointer {
			join = join.Elem()
		}
		if join.Type() != d.through {
			return fmt.Errorf("%w: factory produced %v, want %v", ErrTypeMismatch, join.Type(), d.through)
		}
		if err := assign(join.FieldByName(d.targetField), targets.Index(i).Interface()); err != nil {
			return fmt.Errorf("setting %s.%s: %w", d.through.Name(), d.targetField, err)
		}

		elem := join
		if joinSlice.Type().Elem().Kind() == reflect.Pointer {
			ptr := reflect.New(d.through)
			ptr.Elem().Set(join)
			elem = ptr
		}
		joins = reflect.Append(joins, elem)
	}

	joinSlice.Set(joins)
	return nil
}

// Equal reports structural equality: two descriptors describing the same
// field with the same shape and policy compare equal regardless of
// construction order.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.kind == other.kind &&
		d.left == other.left &&
		d.right == other.right &&
		d.field == other.field &&
		d.through == other.through &&
		d.joinField == other.joinField &&
		d.targetField == other.targetField &&
		d.linkVisibility == other.linkVisibility &&
		d.includable == other.includable
}

// String returns a compact human-readable form, e.g.
// "Article.Author (to_one Author)".
func (d *Descriptor) String() string {
	return fmt.Sprintf("%s.%s (%s %s)", d.left.Name(), d.field, d.kind, d.right.Name())
}

// declaredField resolves a field by name on the owning type.
func (d *Descriptor) declaredField(name string) (reflect.Type, error) {
	if d.left == nil || d.left.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: owning type %v is not a struct", ErrTypeMismatch, d.left)
	}
	if d.right == nil {
		return nil, fmt.Errorf("%w: target type is nil", ErrTypeMismatch)
	}
	// Unexported fields are invisible to the accessor/mutator contract;
	// admitting one here would defer the failure to a panic in
	// GetValue/SetValue.
	f, ok := d.left.FieldByName(name)
	if !ok || !f.IsExported() {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, d.left.Name(), name)
	}
	return f.Type, nil
}

// ownerValue unwraps a resource instance down to the owning struct value,
// rejecting nil instances and foreign types.
func (d *Descriptor) ownerValue(instance any) (reflect.Value, error) {
	if instance == nil {
		return reflect.Value{}, fmt.Errorf("%w: accessing %s.%s", ErrNilResource, d.left.Name(), d.field)
	}
	v := reflect.ValueOf(instance)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: accessing %s.%s", ErrNilResource, d.left.Name(), d.field)
		}
		v = v.Elem()
	}
	if v.Type() != d.left {
		return reflect.Value{}, fmt.Errorf("%w: instance is %v, want %v", ErrTypeMismatch, v.Type(), d.left)
	}
	return v, nil
}

// assign writes value into field, converting when the types allow it. A nil
// value zeroes the field.
func assign(field reflect.Value, value any) error {
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}
	v := reflect.ValueOf(value)
	switch {
	case v.Type().AssignableTo(field.Type()):
		field.Set(v)
	case v.Kind() == reflect.Pointer && v.Type().Elem().AssignableTo(field.Type()):
		field.Set(v.Elem())
	case field.Kind() == reflect.Pointer && v.Type().AssignableTo(field.Type().Elem()):
		ptr := reflect.New(field.Type().Elem())
		ptr.Elem().Set(v)
		field.Set(ptr)
	default:
		return fmt.Errorf("%w: cannot assign %v to %v", ErrTypeMismatch, v.Type(), field.Type())
	}
	return nil
}

// indirect strips pointer layers from a type.
func indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
