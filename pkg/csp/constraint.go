package csp

// Constraint restricts the values its variables may jointly take.
//
// Satisfied must report true while any of the constraint's variables is
// still unassigned, so that partial assignments remain extendable; the
// full predicate is evaluated once every variable the constraint touches
// has a value. Implementations may reject a partial assignment early
// when it already provably violates the constraint.
type Constraint[V comparable, D any] interface {
	// Variables returns the variables the constraint is between.
	Variables() []V
	// Satisfied reports whether the (possibly partial) assignment is
	// consistent with the constraint.
	Satisfied(assignment Assignment[V, D]) bool
}

// Binding pairs a variable with one of its candidate values.
type Binding[V comparable, D any] struct {
	Variable V
	Value    D
}

// PairwiseConstraint is implemented by constraints whose meaning can be
// expressed as a finite set of forbidden binding pairs: no solution may
// contain both bindings of any returned pair. Constraints with this
// shape can be handed to alternative solver backends such as satsolver.
type PairwiseConstraint[V comparable, D any] interface {
	Constraint[V, D]
	// ForbiddenPairs enumerates the incompatible binding pairs over
	// the given domains.
	ForbiddenPairs(domains map[V][]D) [][2]Binding[V, D]
}
