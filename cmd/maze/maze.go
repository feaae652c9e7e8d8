package maze

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/quest-framework/quest/pkg/search"
)

// Cell is the content of one maze grid position.
type Cell rune

const (
	Empty   Cell = ' '
	Blocked Cell = 'X'
	Start   Cell = 'S'
	Goal    Cell = 'G'
	Trail   Cell = '*'
)

// Location is a maze grid coordinate.
type Location struct {
	Row, Column int
}

// Maze is a rectangular grid of cells with a start and a goal.
type Maze struct {
	rows, columns int
	start, goal   Location
	grid          [][]Cell
}

// New builds a maze of the given dimensions, blocking each cell with
// probability sparseness. The start and goal cells are always left open.
func New(rows, columns int, sparseness float64, start, goal Location, rng *rand.Rand) *Maze {
	m := &Maze{rows: rows, columns: columns, start: start, goal: goal}
	m.grid = make([][]Cell, rows)
	for row := range m.grid {
		m.grid[row] = make([]Cell, columns)
		for column := range m.grid[row] {
			if rng.Float64() < sparseness {
				m.grid[row][column] = Blocked
			} else {
				m.grid[row][column] = Empty
			}
		}
	}
	m.grid[start.Row][start.Column] = Start
	m.grid[goal.Row][goal.Column] = Goal
	return m
}

// Parse reads a maze from its text rendering: one line per row, with
// 'X' blocked cells, 'S' the start, and 'G' the goal.
func Parse(text string) (*Maze, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	m := &Maze{rows: len(lines), start: Location{-1, -1}, goal: Location{-1, -1}}
	for row, line := range lines {
		cells := make([]Cell, 0, len(line))
		for column, r := range line {
			cell := Cell(r)
			switch cell {
			case Empty, Blocked:
			case Start:
				m.start = Location{row, column}
			case Goal:
				m.goal = Location{row, column}
			default:
				return nil, fmt.Errorf("maze: unexpected cell %q at row %d column %d", r, row, column)
			}
			cells = append(cells, cell)
		}
		m.grid = append(m.grid, cells)
		if len(cells) > m.columns {
			m.columns = len(cells)
		}
	}
	if m.start.Row < 0 {
		return nil, fmt.Errorf("maze: no start cell")
	}
	if m.goal.Row < 0 {
		return nil, fmt.Errorf("maze: no goal cell")
	}
	return m, nil
}

// Start returns the start location.
func (m *Maze) Start() Location {
	return m.start
}

// Goal returns the goal location.
func (m *Maze) Goal() Location {
	return m.goal
}

// GoalTest reports whether the location is the goal.
func (m *Maze) GoalTest(l Location) bool {
	return l == m.goal
}

// Successors returns the unblocked orthogonal neighbors of a location.
func (m *Maze) Successors(l Location) []Location {
	var locations []Location
	for _, n := range []Location{
		{l.Row + 1, l.Column},
		{l.Row - 1, l.Column},
		{l.Row, l.Column + 1},
		{l.Row, l.Column - 1},
	} {
		if n.Row < 0 || n.Row >= m.rows || n.Column < 0 || n.Column >= len(m.grid[n.Row]) {
			continue
		}
		if m.grid[n.Row][n.Column] == Blocked {
			continue
		}
		locations = append(locations, n)
	}
	return locations
}

// Manhattan returns the grid-distance heuristic toward goal.
func Manhattan(goal Location) search.Heuristic[Location] {
	return func(l Location) float64 {
		return math.Abs(float64(goal.Row-l.Row)) + math.Abs(float64(goal.Column-l.Column))
	}
}

// Euclidean returns the straight-line heuristic toward goal.
func Euclidean(goal Location) search.Heuristic[Location] {
	return func(l Location) float64 {
		dr := float64(goal.Row - l.Row)
		dc := float64(goal.Column - l.Column)
		return math.Sqrt(dr*dr + dc*dc)
	}
}

// Mark draws a path onto the grid, keeping the start and goal visible.
func (m *Maze) Mark(path []Location) {
	for _, l := range path {
		m.grid[l.Row][l.Column] = Trail
	}
	m.grid[m.start.Row][m.start.Column] = Start
	m.grid[m.goal.Row][m.goal.Column] = Goal
}

// Clear erases a previously marked path.
func (m *Maze) Clear(path []Location) {
	for _, l := range path {
		m.grid[l.Row][l.Column] = Empty
	}
	m.grid[m.start.Row][m.start.Column] = Start
	m.grid[m.goal.Row][m.goal.Column] = Goal
}

func (m *Maze) String() string {
	var b strings.Builder
	for _, row := range m.grid {
		for _, cell := range row {
			b.WriteRune(rune(cell))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
