package csp

import (
	"errors"
	"fmt"
)

// ErrNotSatisfiable is returned when backtracking exhausts every
// assignment without satisfying all constraints. It is an ordinary
// negative outcome of a well-formed problem, not a fault.
var ErrNotSatisfiable = errors.New("csp: constraints not satisfiable")

// InvalidDomainError reports a variable declared without a domain.
type InvalidDomainError[V comparable] struct {
	Variable V
}

func (e InvalidDomainError[V]) Error() string {
	return fmt.Sprintf("csp: variable %v has no domain", e.Variable)
}

// InvalidConstraintError reports a constraint referencing a variable
// outside the problem's declared variable set.
type InvalidConstraintError[V comparable] struct {
	Variable V
}

func (e InvalidConstraintError[V]) Error() string {
	return fmt.Sprintf("csp: constraint references undeclared variable %v", e.Variable)
}
