package wordsearch

import (
	"math/rand"
	"slices"
	"strings"

	"github.com/quest-framework/quest/pkg/csp"
)

// Location is a grid coordinate.
type Location struct {
	Row, Column int
}

// Placement is the ordered run of locations a word occupies.
type Placement []Location

// Grid is a rectangular field of letters.
type Grid [][]rune

// GenerateGrid fills a rows x columns grid with random uppercase
// letters.
func GenerateGrid(rows, columns int, rng *rand.Rand) Grid {
	grid := make(Grid, rows)
	for row := range grid {
		grid[row] = make([]rune, columns)
		for column := range grid[row] {
			grid[row][column] = rune('A' + rng.Intn(26))
		}
	}
	return grid
}

// GenerateDomain enumerates every straight run of len(word) cells: left
// to right, top to bottom, and both down diagonals.
func GenerateDomain(word string, grid Grid) []Placement {
	var domain []Placement
	height := len(grid)
	if height == 0 {
		return nil
	}
	width := len(grid[0])
	length := len(word)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if col+length <= width {
				// left to right
				domain = append(domain, run(row, col, 0, 1, length))
				// diagonal towards bottom right
				if row+length <= height {
					domain = append(domain, run(row, col, 1, 1, length))
				}
			}
			if row+length <= height {
				// top to bottom
				domain = append(domain, run(row, col, 1, 0, length))
				// diagonal towards bottom left
				if col+1-length >= 0 {
					domain = append(domain, run(row, col, 1, -1, length))
				}
			}
		}
	}
	return domain
}

func run(row, col, dr, dc, length int) Placement {
	p := make(Placement, length)
	for i := range p {
		p[i] = Location{Row: row + i*dr, Column: col + i*dc}
	}
	return p
}

// NoOverlapConstraint rejects assignments where two words occupy a
// common cell.
type NoOverlapConstraint struct {
	words []string
}

func NewNoOverlapConstraint(words []string) *NoOverlapConstraint {
	return &NoOverlapConstraint{words: slices.Clone(words)}
}

func (c *NoOverlapConstraint) Variables() []string {
	return slices.Clone(c.words)
}

func (c *NoOverlapConstraint) Satisfied(assignment csp.Assignment[string, Placement]) bool {
	seen := map[Location]struct{}{}
	for _, placement := range assignment {
		for _, location := range placement {
			if _, dup := seen[location]; dup {
				return false
			}
			seen[location] = struct{}{}
		}
	}
	return true
}

// Solve places every word on the grid without overlaps.
func Solve(grid Grid, words []string) (csp.Assignment[string, Placement], error) {
	domains := make(map[string][]Placement, len(words))
	for _, word := range words {
		domains[word] = GenerateDomain(word, grid)
	}
	c, err := csp.New(words, domains)
	if err != nil {
		return nil, err
	}
	if err := c.AddConstraint(NewNoOverlapConstraint(words)); err != nil {
		return nil, err
	}
	return c.Solve()
}

// Render writes the placed words into a copy of the grid, reversing
// each word half the time, and returns its text form.
func Render(grid Grid, solution csp.Assignment[string, Placement], rng *rand.Rand) string {
	out := make(Grid, len(grid))
	for row := range grid {
		out[row] = slices.Clone(grid[row])
	}
	for word, placement := range solution {
		locations := slices.Clone(placement)
		if rng.Float64() < 0.5 {
			slices.Reverse(locations)
		}
		for i, r := range word {
			out[locations[i].Row][locations[i].Column] = r
		}
	}
	var b strings.Builder
	for _, row := range out {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
