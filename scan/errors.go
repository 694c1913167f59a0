package scan

import "errors"

var (
	// ErrEmptyUniverse is returned when a scan is started over a nil or
	// empty type universe.
	ErrEmptyUniverse = errors.New("type universe is empty")

	// ErrNilContract is returned when a scan is started without a
	// contract.
	ErrNilContract = errors.New("contract is nil")

	// ErrNotGeneric is returned when a contract is declared without type
	// parameters. Only open generic contracts can be scanned for.
	ErrNotGeneric = errors.New("contract is not generic")

	// ErrNotInterface is returned when a contract instantiation is bound
	// to something other than an interface type.
	ErrNotInterface = errors.New("contract instantiation is not an interface")

	// ErrNoTypeArguments is returned when a scan is started without
	// concrete type arguments.
	ErrNoTypeArguments = errors.New("no type arguments supplied")

	// ErrAmbiguousBinding is returned when two different closed interfaces
	// are bound to the same first type argument of one contract.
	ErrAmbiguousBinding = errors.New("conflicting contract instantiations for type argument")

	// ErrUnboundArgument is returned when a scan closes a contract over a
	// type argument no instantiation was registered for.
	ErrUnboundArgument = errors.New("no contract instantiation registered for type argument")
)
