package sudoku

import (
	"fmt"
	"strings"

	"github.com/quest-framework/quest/pkg/csp"
	"github.com/quest-framework/quest/pkg/csp/constraint"
	"github.com/quest-framework/quest/pkg/csp/satsolver"
)

// Cell addresses one square of the 9x9 board.
type Cell struct {
	Row, Column int
}

var digits = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

// Parse reads an 81-character puzzle string in row-major order, with
// '1'-'9' for givens and '.' or '0' for blanks.
func Parse(puzzle string) (map[Cell]int, error) {
	puzzle = strings.Join(strings.Fields(puzzle), "")
	if len(puzzle) != 81 {
		return nil, fmt.Errorf("puzzle must have 81 cells, got %d", len(puzzle))
	}
	givens := map[Cell]int{}
	for i, r := range puzzle {
		switch {
		case r == '.' || r == '0':
		case r >= '1' && r <= '9':
			givens[Cell{Row: i / 9, Column: i % 9}] = int(r - '0')
		default:
			return nil, fmt.Errorf("unexpected cell %q at offset %d", r, i)
		}
	}
	return givens, nil
}

// NewCSP builds the sudoku problem: one variable per cell, digits 1-9
// narrowed to a single value for givens, and an all-different constraint
// per row, column and 3x3 box.
func NewCSP(givens map[Cell]int) (*csp.CSP[Cell, int], error) {
	variables := make([]Cell, 0, 81)
	domains := make(map[Cell][]int, 81)
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			cell := Cell{Row: row, Column: col}
			variables = append(variables, cell)
			if given, ok := givens[cell]; ok {
				domains[cell] = []int{given}
			} else {
				domains[cell] = digits
			}
		}
	}

	c, err := csp.New(variables, domains)
	if err != nil {
		return nil, err
	}

	for i := 0; i < 9; i++ {
		row := make([]Cell, 9)
		col := make([]Cell, 9)
		box := make([]Cell, 0, 9)
		for j := 0; j < 9; j++ {
			row[j] = Cell{Row: i, Column: j}
			col[j] = Cell{Row: j, Column: i}
			box = append(box, Cell{Row: (i/3)*3 + j/3, Column: (i%3)*3 + j%3})
		}
		for _, unit := range [][]Cell{row, col, box} {
			if err := c.AddConstraint(constraint.AllDifferent[Cell, int](unit...)); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// Solve fills the board through the SAT backend, honoring the givens.
func Solve(givens map[Cell]int) (csp.Assignment[Cell, int], error) {
	c, err := NewCSP(givens)
	if err != nil {
		return nil, err
	}
	return satsolver.Solve(c)
}

// Render draws the solved board with box separators.
func Render(solution csp.Assignment[Cell, int]) string {
	var b strings.Builder
	for row := 0; row < 9; row++ {
		if row > 0 && row%3 == 0 {
			b.WriteString("------+-------+------\n")
		}
		for col := 0; col < 9; col++ {
			if col > 0 && col%3 == 0 {
				b.WriteString("| ")
			}
			fmt.Fprintf(&b, "%d ", solution[Cell{Row: row, Column: col}])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
