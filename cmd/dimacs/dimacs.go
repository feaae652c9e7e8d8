// Package dimacs solves CNF problems given in DIMACS format.
// See: https://logic.pdmi.ras.ru/~basolver/dimacs.html
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/quest-framework/quest/internal/sat"
)

// Problem is a CNF formula parsed from a DIMACS stream: clauses of
// signed 1-based variable numbers, negative meaning negated.
type Problem struct {
	numVariables int
	clauses      [][]int
}

func (p *Problem) NumVariables() int {
	return p.numVariables
}

func (p *Problem) Clauses() [][]int {
	return p.clauses
}

// Parse reads a DIMACS formatted stream: 'c' comment lines, one
// 'p cnf <variables> <clauses>' header, and clause lines ending in 0.
func Parse(r io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(r)

	numVariables := 0
	numClauses := 0
	var clauses [][]int
	used := map[int]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}

		fields := strings.Fields(line)
		if fields[0] == "p" {
			if clauses != nil {
				return nil, fmt.Errorf("invalid format: repeated header (%s)", line)
			}
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, fmt.Errorf("invalid statement (%s): valid format is p cnf <variables> <clauses>", line)
			}
			var err error
			if numVariables, err = strconv.Atoi(fields[2]); err != nil {
				return nil, fmt.Errorf("invalid number (%s) in statement (%s)", fields[2], line)
			}
			if numClauses, err = strconv.Atoi(fields[3]); err != nil {
				return nil, fmt.Errorf("invalid number (%s) in statement (%s)", fields[3], line)
			}
			clauses = make([][]int, 0, numClauses)
			continue
		}

		if clauses == nil {
			return nil, fmt.Errorf("invalid format: missing header 'p cnf <variables> <clauses>'")
		}
		if fields[len(fields)-1] != "0" {
			return nil, fmt.Errorf("invalid clause (%s): does not end with 0", line)
		}
		clause := make([]int, 0, len(fields)-1)
		for _, field := range fields[:len(fields)-1] {
			literal, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid clause (%s): %s is not a number", line, field)
			}
			if literal == 0 || literal > numVariables || literal < -numVariables {
				return nil, fmt.Errorf("invalid clause (%s): %s is not a valid variable", line, field)
			}
			if literal < 0 {
				used[-literal] = struct{}{}
			} else {
				used[literal] = struct{}{}
			}
			clause = append(clause, literal)
		}
		clauses = append(clauses, clause)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dimacs data: %w", err)
	}

	if numVariables == 0 || len(clauses) == 0 {
		return nil, fmt.Errorf("invalid format: no variables or clauses found")
	}
	if len(clauses) != numClauses {
		return nil, fmt.Errorf("invalid format: number of clauses in header differs from the total number of clauses")
	}
	if len(used) != numVariables {
		return nil, fmt.Errorf("invalid format: number of variables in header differs from the total number of distinct variables in clauses")
	}

	return &Problem{
		numVariables: numVariables,
		clauses:      clauses,
	}, nil
}

// Solve returns the truth value of each variable, 1-based in slot
// number-1, or sat.ErrUnsatisfiable when the formula has no model.
func (p *Problem) Solve() ([]bool, error) {
	problem := sat.NewProblem(p.numVariables)
	for _, clause := range p.clauses {
		literals := make([]sat.Literal, len(clause))
		for i, literal := range clause {
			if literal < 0 {
				literals[i] = sat.Literal{Atom: -literal - 1, Negated: true}
			} else {
				literals[i] = sat.Literal{Atom: literal - 1}
			}
		}
		problem.AddClause(literals...)
	}
	return problem.Solve()
}
