package sudoku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quest-framework/quest/pkg/csp"
)

const examplePuzzle = `
	53..7....
	6..195...
	.98....6.
	8...6...3
	4..8.3..1
	7...2...6
	.6....28.
	...419..5
	....8..79`

func requireValidBoard(t *testing.T, solution csp.Assignment[Cell, int]) {
	t.Helper()
	require.Len(t, solution, 81)
	for i := 0; i < 9; i++ {
		rowSeen := map[int]bool{}
		colSeen := map[int]bool{}
		boxSeen := map[int]bool{}
		for j := 0; j < 9; j++ {
			row := solution[Cell{Row: i, Column: j}]
			col := solution[Cell{Row: j, Column: i}]
			box := solution[Cell{Row: (i/3)*3 + j/3, Column: (i%3)*3 + j%3}]
			assert.False(t, rowSeen[row], "row %d repeats %d", i, row)
			assert.False(t, colSeen[col], "column %d repeats %d", i, col)
			assert.False(t, boxSeen[box], "box %d repeats %d", i, box)
			rowSeen[row], colSeen[col], boxSeen[box] = true, true, true
		}
	}
}

func TestSolveEmptyBoard(t *testing.T) {
	solution, err := Solve(nil)
	require.NoError(t, err)
	requireValidBoard(t, solution)
}

func TestSolveHonorsGivens(t *testing.T) {
	givens, err := Parse(examplePuzzle)
	require.NoError(t, err)

	solution, err := Solve(givens)
	require.NoError(t, err)
	requireValidBoard(t, solution)
	for cell, digit := range givens {
		assert.Equal(t, digit, solution[cell])
	}
}

func TestSolveContradictoryGivens(t *testing.T) {
	_, err := Solve(map[Cell]int{
		{Row: 0, Column: 0}: 5,
		{Row: 0, Column: 8}: 5,
	})
	assert.ErrorIs(t, err, csp.ErrNotSatisfiable)
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := Parse("123")
	assert.ErrorContains(t, err, "81 cells")

	bad := strings.Replace(strings.Repeat(".", 81), ".", "x", 1)
	_, err = Parse(bad)
	assert.ErrorContains(t, err, "unexpected cell")
}

func TestRenderDrawsSeparators(t *testing.T) {
	solution, err := Solve(nil)
	require.NoError(t, err)

	rendered := Render(solution)
	assert.Equal(t, 11, strings.Count(rendered, "\n"))
	assert.Contains(t, rendered, "------+-------+------")
}
