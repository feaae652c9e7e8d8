package mapcolor

import (
	"github.com/quest-framework/quest/pkg/csp"
	"github.com/quest-framework/quest/pkg/csp/constraint"
	"github.com/quest-framework/quest/pkg/csp/satsolver"
)

// Regions are the seven Australian regions of the classic 3-coloring
// instance, in declaration order.
var Regions = []string{
	"Western Australia",
	"Northern Territory",
	"South Australia",
	"Queensland",
	"New South Wales",
	"Victoria",
	"Tasmania",
}

// Borders lists every pair of regions sharing a border; bordering
// regions must not share a color.
var Borders = [][2]string{
	{"Western Australia", "Northern Territory"},
	{"Western Australia", "South Australia"},
	{"South Australia", "Northern Territory"},
	{"Queensland", "Northern Territory"},
	{"Queensland", "South Australia"},
	{"Queensland", "New South Wales"},
	{"New South Wales", "South Australia"},
	{"Victoria", "South Australia"},
	{"Victoria", "New South Wales"},
	{"Victoria", "Tasmania"},
}

// Colors is the palette.
var Colors = []string{"red", "green", "blue"}

// NewCSP builds the coloring problem.
func NewCSP() (*csp.CSP[string, string], error) {
	domains := make(map[string][]string, len(Regions))
	for _, region := range Regions {
		domains[region] = Colors
	}
	c, err := csp.New(Regions, domains)
	if err != nil {
		return nil, err
	}
	for _, border := range Borders {
		if err := c.AddConstraint(constraint.NotEqual[string, string](border[0], border[1])); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Solve colors the map through backtracking, or through the SAT backend
// when useSAT is set. Both backends agree on satisfiability; they may
// return different valid colorings.
func Solve(useSAT bool) (csp.Assignment[string, string], error) {
	c, err := NewCSP()
	if err != nil {
		return nil, err
	}
	if useSAT {
		return satsolver.Solve(c)
	}
	return c.Solve()
}
