package scan

import (
	"fmt"
	"iter"
	"reflect"

	"go.uber.org/zap"
)

// Match is the result of a successful implementation scan: the concrete
// implementing type and the fully-closed contract interface it satisfies.
type Match struct {
	Implementation reflect.Type
	Contract       reflect.Type
}

// Scanner runs read-only queries over a type universe. Scans are pure reads
// and may run concurrently as long as the universe itself is not mutated;
// in the intended deployment types are fixed at load time.
type Scanner struct {
	logger *zap.Logger
}

// NewScanner creates a scanner. A nil logger disables logging.
func NewScanner(logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{logger: logger}
}

// FindImplementation locates the concrete type in the universe implementing
// the contract closed over the given type arguments.
//
// The contract is closed by instantiation lookup on the first type argument
// only; extra arguments are accepted but do not participate in selection.
// The first type in the universe's enumeration order whose method set
// satisfies the closed interface wins. No match is a valid outcome, reported
// through the boolean, not an error.
//
// Structurally invalid input — an empty universe, a nil or non-generic
// contract, no type arguments, or an argument no instantiation was bound
// for — is a configuration error and fails immediately.
func (s *Scanner) FindImplementation(universe Universe, contract *Contract, args ...reflect.Type) (Match, bool, error) {
	closed, err := s.close(universe, contract, args)
	if err != nil {
		return Match{}, false, err
	}

	for _, t := range universe {
		if implementsInterface(t, closed) {
			s.logger.Debug("contract implementation found",
				zap.String("contract", contract.name),
				zap.String("implementation", t.String()))
			return Match{Implementation: t, Contract: closed}, true, nil
		}
	}

	s.logger.Debug("no contract implementation in universe",
		zap.String("contract", contract.name),
		zap.String("argument", args[0].String()))
	return Match{}, false, nil
}

// FindDerived yields every type in the universe assignable to base, in
// enumeration order. The sequence is lazy and finite; it is a single pass
// over the universe as it is at iteration time, so re-invoke it for a fresh
// pass rather than reusing a stored sequence across universe changes.
func (s *Scanner) FindDerived(universe Universe, base reflect.Type) iter.Seq[reflect.Type] {
	return func(yield func(reflect.Type) bool) {
		if base == nil {
			return
		}
		for _, t := range universe {
			if !derivesFrom(t, base) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// FindDerivedContract closes the contract over the given type arguments and
// eagerly collects every type in the universe assignable to the closed
// interface. Callers iterate the result multiple times and count it, so it
// is materialized rather than lazy.
func (s *Scanner) FindDerivedContract(universe Universe, contract *Contract, args ...reflect.Type) ([]reflect.Type, error) {
	closed, err := s.close(universe, contract, args)
	if err != nil {
		return nil, err
	}

	derived := make([]reflect.Type, 0)
	for t := range s.FindDerived(universe, closed) {
		derived = append(derived, t)
	}
	return derived, nil
}

// close validates scan input and resolves the contract's closed interface
// for the first type argument.
func (s *Scanner) close(universe Universe, contract *Contract, args []reflect.Type) (reflect.Type, error) {
	if len(universe) == 0 {
		return nil, ErrEmptyUniverse
	}
	if contract == nil {
		return nil, ErrNilContract
	}
	if contract.arity < 1 {
		return nil, fmt.Errorf("%w: %s", ErrNotGeneric, contract.name)
	}
	if len(args) == 0 || args[0] == nil {
		return nil, fmt.Errorf("%w: closing %s", ErrNoTypeArguments, contract.name)
	}

	closed, ok := contract.closedOver(args[0])
	if !ok {
		return nil, fmt.Errorf("%w: %s over %v", ErrUnboundArgument, contract.name, args[0])
	}
	return closed, nil
}

// implementsInterface reports whether t's method set, or its pointer method
// set for value types, satisfies the interface iface.
func implementsInterface(t, iface reflect.Type) bool {
	if t.Implements(iface) {
		return true
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
		return reflect.PointerTo(t).Implements(iface)
	}
	return false
}

// derivesFrom reports whether t is assignable to base, treating interface
// bases as capability checks.
func derivesFrom(t, base reflect.Type) bool {
	if base.Kind() == reflect.Interface {
		return implementsInterface(t, base)
	}
	return t.AssignableTo(base)
}
