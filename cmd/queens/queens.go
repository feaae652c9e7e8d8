package queens

import (
	"slices"

	"github.com/quest-framework/quest/pkg/csp"
)

// Constraint forbids two queens from sharing a row or a diagonal.
// Columns are the variables; the assigned value is the queen's row.
// Column separation already rules out shared columns.
type Constraint struct {
	columns []int
}

func NewConstraint(columns []int) *Constraint {
	return &Constraint{columns: slices.Clone(columns)}
}

func (c *Constraint) Variables() []int {
	return slices.Clone(c.columns)
}

func (c *Constraint) Satisfied(assignment csp.Assignment[int, int]) bool {
	for q1c, q1r := range assignment {
		for q2c := q1c + 1; q2c <= len(c.columns); q2c++ {
			q2r, ok := assignment[q2c]
			if !ok {
				continue
			}
			if q1r == q2r {
				return false
			}
			if abs(q1r-q2r) == abs(q1c-q2c) {
				return false
			}
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Solve places n queens on an n x n board so that none attacks another.
func Solve(n int) (csp.Assignment[int, int], error) {
	columns := make([]int, n)
	rows := make([]int, n)
	for i := 0; i < n; i++ {
		columns[i] = i + 1
		rows[i] = i + 1
	}
	domains := make(map[int][]int, n)
	for _, column := range columns {
		domains[column] = rows
	}

	c, err := csp.New(columns, domains)
	if err != nil {
		return nil, err
	}
	if err := c.AddConstraint(NewConstraint(columns)); err != nil {
		return nil, err
	}
	return c.Solve()
}
