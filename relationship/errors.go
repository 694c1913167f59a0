package relationship

import "errors"

var (
	// ErrPagingLinks is returned when the reserved paging link policy is
	// assigned to a relationship descriptor.
	ErrPagingLinks = errors.New("paging links are not valid on a relationship")

	// ErrNilResource is returned when GetValue or SetValue is invoked
	// without a resource instance.
	ErrNilResource = errors.New("resource instance is nil")

	// ErrNilFactory is returned when SetValue is invoked without a
	// resource factory.
	ErrNilFactory = errors.New("resource factory is nil")

	// ErrUnknownField is returned at construction when the declared field
	// does not exist on the owning type.
	ErrUnknownField = errors.New("field not found on resource type")

	// ErrTypeMismatch is returned when an instance or value does not match
	// the descriptor's declared types.
	ErrTypeMismatch = errors.New("type mismatch")
)
