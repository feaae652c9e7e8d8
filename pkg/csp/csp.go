package csp

import (
	"slices"

	"github.com/quest-framework/quest/internal/util"
)

// CSP is a constraint-satisfaction problem: an ordered set of variables,
// a value domain per variable, and constraints over those variables.
// The variable set and domains are fixed for the lifetime of the
// problem; only constraints may be added after construction.
type CSP[V comparable, D any] struct {
	variables   []V
	domains     map[V][]D
	constraints map[V][]Constraint[V, D]
	inorder     []Constraint[V, D]
}

// New constructs a CSP from the declared variables and their domains.
// Every variable must have a domain entry; a missing entry fails
// construction with an InvalidDomainError.
func New[V comparable, D any](variables []V, domains map[V][]D) (*CSP[V, D], error) {
	c := &CSP[V, D]{
		variables:   slices.Clone(variables),
		domains:     make(map[V][]D, len(variables)),
		constraints: make(map[V][]Constraint[V, D], len(variables)),
	}
	for _, variable := range c.variables {
		domain, ok := domains[variable]
		if !ok {
			return nil, InvalidDomainError[V]{Variable: variable}
		}
		c.domains[variable] = slices.Clone(domain)
	}
	return c, nil
}

// Variables returns the declared variables in declaration order.
func (c *CSP[V, D]) Variables() []V {
	return slices.Clone(c.variables)
}

// Domain returns the candidate values of a variable, in domain order.
func (c *CSP[V, D]) Domain(variable V) []D {
	return slices.Clone(c.domains[variable])
}

// Domains returns a copy of the full variable-to-domain mapping.
func (c *CSP[V, D]) Domains() map[V][]D {
	out := make(map[V][]D, len(c.domains))
	for variable, domain := range c.domains {
		out[variable] = slices.Clone(domain)
	}
	return out
}

// Constraints returns every attached constraint, once each, in the order
// they were added.
func (c *CSP[V, D]) Constraints() []Constraint[V, D] {
	return slices.Clone(c.inorder)
}

// AddConstraint registers a constraint under every variable it touches.
// A constraint referencing a variable not declared on the problem fails
// with an InvalidConstraintError and is not registered at all.
func (c *CSP[V, D]) AddConstraint(constraint Constraint[V, D]) error {
	for _, variable := range constraint.Variables() {
		if !util.LinearContains(c.variables, variable) {
			return InvalidConstraintError[V]{Variable: variable}
		}
	}
	for _, variable := range constraint.Variables() {
		c.constraints[variable] = append(c.constraints[variable], constraint)
	}
	c.inorder = append(c.inorder, constraint)
	return nil
}

// Consistent reports whether every constraint registered on the given
// variable holds under the assignment.
func (c *CSP[V, D]) Consistent(variable V, assignment Assignment[V, D]) bool {
	for _, constraint := range c.constraints[variable] {
		if !constraint.Satisfied(assignment) {
			return false
		}
	}
	return true
}
