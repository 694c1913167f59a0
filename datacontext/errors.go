package datacontext

import "errors"

var (
	// ErrUnknownCollection is returned at bind time when a configured
	// collection name does not exist on the data context's shape.
	ErrUnknownCollection = errors.New("collection not found on data context")

	// ErrInvalidContext is returned at bind time when the data context
	// type exposes no named properties at all.
	ErrInvalidContext = errors.New("data context must be a struct or expose collection methods")
)
