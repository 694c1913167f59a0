package resource

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/strata-api/strata/relationship"
)

// Registry holds the descriptors produced by discovery, keyed both by
// resource type and by collection name. It is populated once at startup and
// treated as read-only afterwards; all lookups take the read lock only so
// unsynchronized concurrent reads are safe.
type Registry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]Descriptor
	byName map[string]Descriptor
	rels   map[reflect.Type][]*relationship.Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byType: make(map[reflect.Type]Descriptor),
		byName: make(map[string]Descriptor),
		rels:   make(map[reflect.Type][]*relationship.Descriptor),
	}
}

// Register adds a resource type to the registry under its default collection
// name. The type must implement the identity capability.
func (r *Registry) Register(t reflect.Type) (Descriptor, error) {
	desc, ok := TryDescribe(t)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %v", ErrNotAResource, t)
	}
	return desc, r.add(desc, desc.CollectionName())
}

// RegisterNamed adds a resource type under an explicit collection name,
// overriding the default naming convention.
func (r *Registry) RegisterNamed(t reflect.Type, collection string) (Descriptor, error) {
	desc, ok := TryDescribe(t)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %v", ErrNotAResource, t)
	}
	return desc, r.add(desc, collection)
}

func (r *Registry) add(desc Descriptor, collection string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byType[desc.Type]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, desc.Name())
	}
	if _, exists := r.byName[collection]; exists {
		return fmt.Errorf("%w: collection %q", ErrAlreadyRegistered, collection)
	}

	r.byType[desc.Type] = desc
	r.byName[collection] = desc
	return nil
}

// Get retrieves the descriptor for a resource type. Pointer types resolve to
// their underlying resource type.
func (r *Registry) Get(t reflect.Type) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, ok := r.byType[indirect(t)]
	return desc, ok
}

// GetByName retrieves the descriptor registered under a collection name.
func (r *Registry) GetByName(collection string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, ok := r.byName[collection]
	return desc, ok
}

// Exists reports whether a resource type is registered.
func (r *Registry) Exists(t reflect.Type) bool {
	_, ok := r.Get(t)
	return ok
}

// All returns every registered descriptor, ordered by collection name.
func (r *Registry) All() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	descs := make([]Descriptor, 0, len(names))
	for _, name := range names {
		descs = append(descs, r.byName[name])
	}
	return descs
}

// Names returns every registered collection name in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered resources.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byType)
}

// RegisterRelationships attaches relationship descriptors to a registered
// resource. The descriptors' owning type must match the resource type.
func (r *Registry) RegisterRelationships(t reflect.Type, descs ...*relationship.Descriptor) error {
	t = indirect(t)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byType[t]; !ok {
		return fmt.Errorf("%w: %v", ErrNotRegistered, t)
	}
	for _, d := range descs {
		if d.LeftType() != t {
			return fmt.Errorf("relationship %q is owned by %v, not %v", d.FieldName(), d.LeftType(), t)
		}
	}

	r.rels[t] = append(r.rels[t], descs...)
	return nil
}

// Relationships returns the relationship descriptors attached to a resource
// type, in registration order. The returned slice is a copy.
func (r *Registry) Relationships(t reflect.Type) []*relationship.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rels := r.rels[indirect(t)]
	out := make([]*relationship.Descriptor, len(rels))
	copy(out, rels)
	return out
}

// Relationship returns a single relationship descriptor by its declared
// field name.
func (r *Registry) Relationship(t reflect.Type, field string) (*relationship.Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.rels[indirect(t)] {
		if d.FieldName() == field {
			return d, true
		}
	}
	return nil, false
}

// Clear removes all registered descriptors (useful for testing).
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byType = make(map[reflect.Type]Descriptor)
	r.byName = make(map[string]Descriptor)
	r.rels = make(map[reflect.Type][]*relationship.Descriptor)
}
