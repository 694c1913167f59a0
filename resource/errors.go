package resource

import "errors"

var (
	// ErrAlreadyRegistered is returned when a resource type or collection
	// name is registered twice.
	ErrAlreadyRegistered = errors.New("resource is already registered")

	// ErrNotRegistered is returned when relationships are attached to a
	// resource the registry does not know about.
	ErrNotRegistered = errors.New("resource is not registered")

	// ErrNotAResource is returned when a type without the identity
	// capability is registered directly.
	ErrNotAResource = errors.New("type does not implement the identity capability")
)
