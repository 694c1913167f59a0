package scan

import (
	"fmt"
	"reflect"
)

// Contract describes an open generic contract: a family of interfaces
// parameterized by a resource type, such as a Service[R] or Repository[R].
//
// Go instantiates generic interfaces at compile time, so a contract cannot
// be closed over type arguments by reflection alone. Instead, bootstrap code
// registers each compile-time instantiation with Bind, pairing a first type
// argument with the closed interface it produces. Scans then close the
// contract by instantiation lookup.
type Contract struct {
	name  string
	arity int
	insts []instantiation
}

// instantiation pairs a first type argument with the closed interface the
// contract produces for it.
type instantiation struct {
	arg    reflect.Type
	closed reflect.Type
}

// NewContract declares an open contract with the given number of type
// parameters. A contract with no type parameters is not generic and cannot
// be declared; that is a configuration mistake surfaced immediately.
func NewContract(name string, arity int) (*Contract, error) {
	if arity < 1 {
		return nil, fmt.Errorf("%w: %s declares %d type parameters", ErrNotGeneric, name, arity)
	}
	return &Contract{name: name, arity: arity}, nil
}

// Bind registers the closed interface I as the contract's instantiation for
// the first type argument firstArg.
//
// Instantiations are keyed by the first type argument only, mirroring how
// scans select them. Binding two different closed interfaces to the same
// first argument is therefore ambiguous and fails with ErrAmbiguousBinding
// at registration time, never silently at scan time. Re-binding the same
// interface is a no-op.
func Bind[I any](c *Contract, firstArg reflect.Type) error {
	if c == nil {
		return ErrNilContract
	}
	if firstArg == nil {
		return fmt.Errorf("%w: binding %s", ErrNoTypeArguments, c.name)
	}
	closed := reflect.TypeOf((*I)(nil)).Elem()
	if closed.Kind() != reflect.Interface {
		return fmt.Errorf("%w: %v bound to %s", ErrNotInterface, closed, c.name)
	}

	for _, inst := range c.insts {
		if inst.arg != firstArg {
			continue
		}
		if inst.closed == closed {
			return nil
		}
		return fmt.Errorf("%w: %s over %v is bound to both %v and %v",
			ErrAmbiguousBinding, c.name, firstArg, inst.closed, closed)
	}

	c.insts = append(c.insts, instantiation{arg: firstArg, closed: closed})
	return nil
}

// Name returns the contract's declared name.
func (c *Contract) Name() string { return c.name }

// Arity returns the contract's declared number of type parameters.
func (c *Contract) Arity() int { return c.arity }

// closedOver returns the closed interface registered for a first type
// argument.
func (c *Contract) closedOver(arg reflect.Type) (reflect.Type, bool) {
	for _, inst := range c.insts {
		if inst.arg == arg {
			return inst.closed, true
		}
	}
	return nil, false
}
