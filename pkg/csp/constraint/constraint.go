// Package constraint provides reusable constraint builders for csp
// problems.
package constraint

import (
	"slices"

	"github.com/quest-framework/quest/pkg/csp"
)

// NotEqualConstraint forbids two variables from taking the same value.
type NotEqualConstraint[V comparable, D comparable] struct {
	a, b V
}

// NotEqual returns a constraint requiring the two variables to take
// different values.
func NotEqual[V comparable, D comparable](a, b V) *NotEqualConstraint[V, D] {
	return &NotEqualConstraint[V, D]{a: a, b: b}
}

func (c *NotEqualConstraint[V, D]) Variables() []V {
	return []V{c.a, c.b}
}

func (c *NotEqualConstraint[V, D]) Satisfied(assignment csp.Assignment[V, D]) bool {
	va, ok := assignment[c.a]
	if !ok {
		return true
	}
	vb, ok := assignment[c.b]
	if !ok {
		return true
	}
	return va != vb
}

func (c *NotEqualConstraint[V, D]) ForbiddenPairs(domains map[V][]D) [][2]csp.Binding[V, D] {
	var pairs [][2]csp.Binding[V, D]
	for _, da := range domains[c.a] {
		for _, db := range domains[c.b] {
			if da == db {
				pairs = append(pairs, [2]csp.Binding[V, D]{
					{Variable: c.a, Value: da},
					{Variable: c.b, Value: db},
				})
			}
		}
	}
	return pairs
}

// AllDifferentConstraint requires every covered variable to take a
// distinct value.
type AllDifferentConstraint[V comparable, D comparable] struct {
	variables []V
}

// AllDifferent returns a constraint requiring all the given variables to
// take pairwise distinct values. Partial assignments are rejected as soon
// as two assigned variables collide.
func AllDifferent[V comparable, D comparable](variables ...V) *AllDifferentConstraint[V, D] {
	return &AllDifferentConstraint[V, D]{variables: slices.Clone(variables)}
}

func (c *AllDifferentConstraint[V, D]) Variables() []V {
	return slices.Clone(c.variables)
}

func (c *AllDifferentConstraint[V, D]) Satisfied(assignment csp.Assignment[V, D]) bool {
	seen := make(map[D]struct{}, len(c.variables))
	for _, variable := range c.variables {
		value, ok := assignment[variable]
		if !ok {
			continue
		}
		if _, dup := seen[value]; dup {
			return false
		}
		seen[value] = struct{}{}
	}
	return true
}

func (c *AllDifferentConstraint[V, D]) ForbiddenPairs(domains map[V][]D) [][2]csp.Binding[V, D] {
	var pairs [][2]csp.Binding[V, D]
	for i, a := range c.variables {
		for _, b := range c.variables[i+1:] {
			for _, da := range domains[a] {
				for _, db := range domains[b] {
					if da == db {
						pairs = append(pairs, [2]csp.Binding[V, D]{
							{Variable: a, Value: da},
							{Variable: b, Value: db},
						})
					}
				}
			}
		}
	}
	return pairs
}

// FuncConstraint adapts a plain predicate over complete assignments of
// its variables.
type FuncConstraint[V comparable, D any] struct {
	variables []V
	predicate func(assignment csp.Assignment[V, D]) bool
}

// Func returns a constraint that defers to predicate once every one of
// the given variables is assigned, and reports satisfied until then.
func Func[V comparable, D any](variables []V, predicate func(assignment csp.Assignment[V, D]) bool) *FuncConstraint[V, D] {
	return &FuncConstraint[V, D]{variables: slices.Clone(variables), predicate: predicate}
}

func (c *FuncConstraint[V, D]) Variables() []V {
	return slices.Clone(c.variables)
}

func (c *FuncConstraint[V, D]) Satisfied(assignment csp.Assignment[V, D]) bool {
	for _, variable := range c.variables {
		if _, ok := assignment[variable]; !ok {
			return true
		}
	}
	return c.predicate(assignment)
}
