// Package satsolver solves csp problems through a SAT engine instead of
// backtracking. It encodes one propositional atom per candidate binding
// (variable, value), requires exactly one binding per variable, and adds
// a conflict clause per forbidden pair, so it can only serve problems
// whose constraints all implement csp.PairwiseConstraint.
package satsolver

import (
	"errors"
	"fmt"

	"github.com/quest-framework/quest/internal/sat"
	"github.com/quest-framework/quest/pkg/csp"
)

// ErrNotEncodable is returned when a constraint on the problem cannot be
// expressed as forbidden binding pairs.
var ErrNotEncodable = errors.New("satsolver: constraint cannot be expressed as forbidden pairs")

// Solve returns a complete, constraint-satisfying assignment for the
// problem, or csp.ErrNotSatisfiable when none exists. Unlike
// (*csp.CSP).Solve it explores no partial assignments and offers no
// ordering guarantees; it simply returns some model of the encoding.
func Solve[V comparable, D comparable](c *csp.CSP[V, D]) (csp.Assignment[V, D], error) {
	variables := c.Variables()
	domains := c.Domains()

	type binding struct {
		variable V
		value    D
	}
	var atoms []binding
	atomOf := make(map[V]map[D]int, len(variables))
	for _, variable := range variables {
		domain := domains[variable]
		atomOf[variable] = make(map[D]int, len(domain))
		for _, value := range domain {
			atomOf[variable][value] = len(atoms)
			atoms = append(atoms, binding{variable: variable, value: value})
		}
	}

	problem := sat.NewProblem(len(atoms))
	for _, variable := range variables {
		group := make([]int, 0, len(domains[variable]))
		for _, value := range domains[variable] {
			group = append(group, atomOf[variable][value])
		}
		problem.RequireExactlyOne(group)
	}

	for _, con := range c.Constraints() {
		pairwise, ok := con.(csp.PairwiseConstraint[V, D])
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrNotEncodable, con)
		}
		for _, pair := range pairwise.ForbiddenPairs(domains) {
			a, ok := atomOf[pair[0].Variable][pair[0].Value]
			if !ok {
				continue
			}
			b, ok := atomOf[pair[1].Variable][pair[1].Value]
			if !ok {
				continue
			}
			problem.ForbidBoth(a, b)
		}
	}

	model, err := problem.Solve()
	if err != nil {
		if errors.Is(err, sat.ErrUnsatisfiable) {
			return nil, csp.ErrNotSatisfiable
		}
		return nil, err
	}

	assignment := make(csp.Assignment[V, D], len(variables))
	for i, set := range model {
		if set {
			assignment[atoms[i].variable] = atoms[i].value
		}
	}
	return assignment, nil
}
