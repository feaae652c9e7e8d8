// Package sat solves propositional problems over an integer-indexed set
// of atoms: exactly-one groups and binary conflicts, lowered to CNF and
// handed to the gini SAT solver.
package sat

import (
	"errors"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// ErrUnsatisfiable is returned when the formula has no model. It is an
// ordinary negative outcome, not a fault.
var ErrUnsatisfiable = errors.New("sat: formula unsatisfiable")

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Problem accumulates constraints over a fixed set of atoms, then solves
// them in one shot. Atoms are identified by index in [0, n).
type Problem struct {
	c     *logic.C
	lits  []z.Lit
	gates []z.Lit
}

// NewProblem returns a Problem over n atoms.
func NewProblem(n int) *Problem {
	p := &Problem{
		c:    logic.NewC(),
		lits: make([]z.Lit, n),
	}
	for i := range p.lits {
		p.lits[i] = p.c.Lit()
	}
	return p
}

// RequireExactlyOne constrains the group so that exactly one of its
// atoms is set in any model. Empty groups make the problem unsatisfiable
// outright, which surfaces naturally from the at-least-one clause.
func (p *Problem) RequireExactlyOne(atoms []int) {
	ms := make([]z.Lit, len(atoms))
	for i, atom := range atoms {
		ms[i] = p.lits[atom]
	}
	if len(ms) == 0 {
		p.gates = append(p.gates, p.c.F)
		return
	}
	atLeast := ms[0]
	for _, m := range ms[1:] {
		atLeast = p.c.Or(atLeast, m)
	}
	p.gates = append(p.gates, atLeast)
	if len(ms) > 1 {
		p.gates = append(p.gates, p.c.CardSort(ms).Leq(1))
	}
}

// ForbidBoth rejects every model containing both atoms.
func (p *Problem) ForbidBoth(a, b int) {
	p.AddClause(Literal{Atom: a, Negated: true}, Literal{Atom: b, Negated: true})
}

// Literal refers to an atom or its negation.
type Literal struct {
	Atom    int
	Negated bool
}

// AddClause requires at least one of the literals to hold in any model.
// An empty clause makes the problem unsatisfiable outright.
func (p *Problem) AddClause(literals ...Literal) {
	if len(literals) == 0 {
		p.gates = append(p.gates, p.c.F)
		return
	}
	clause := p.lit(literals[0])
	for _, l := range literals[1:] {
		clause = p.c.Or(clause, p.lit(l))
	}
	p.gates = append(p.gates, clause)
}

func (p *Problem) lit(l Literal) z.Lit {
	m := p.lits[l.Atom]
	if l.Negated {
		return m.Not()
	}
	return m
}

// Solve lowers the accumulated circuit to CNF, assumes every gate, and
// runs the solver. On success it returns the truth value of each atom;
// on an unsatisfiable formula it returns ErrUnsatisfiable.
func (p *Problem) Solve() ([]bool, error) {
	g := gini.New()
	p.c.ToCnf(g)
	g.Assume(p.gates...)

	switch g.Solve() {
	case satisfiable:
		model := make([]bool, len(p.lits))
		for i, m := range p.lits {
			model[i] = g.Value(m)
		}
		return model, nil
	case unsatisfiable:
		return nil, ErrUnsatisfiable
	}
	// Solve without a budget never reports unknown.
	return nil, fmt.Errorf("sat: unexpected solver outcome")
}
