package missionaries

import (
	"fmt"
	"strings"

	"github.com/quest-framework/quest/pkg/search"
)

// maxNum is the number of missionaries and of cannibals in the puzzle.
const maxNum = 3

// State tracks the west bank; the east bank is implied. BoatWest records
// which bank the boat is on.
type State struct {
	WestMissionaries int
	WestCannibals    int
	BoatWest         bool
}

// Start is the initial state: everyone on the west bank with the boat.
func Start() State {
	return State{WestMissionaries: maxNum, WestCannibals: maxNum, BoatWest: true}
}

// EastMissionaries returns the missionaries on the east bank.
func (s State) EastMissionaries() int {
	return maxNum - s.WestMissionaries
}

// EastCannibals returns the cannibals on the east bank.
func (s State) EastCannibals() int {
	return maxNum - s.WestCannibals
}

// Legal reports whether no bank has its missionaries outnumbered.
func (s State) Legal() bool {
	if s.WestMissionaries < s.WestCannibals && s.WestMissionaries > 0 {
		return false
	}
	if s.EastMissionaries() < s.EastCannibals() && s.EastMissionaries() > 0 {
		return false
	}
	return true
}

// Goal reports whether everyone has crossed to the east bank legally.
func (s State) Goal() bool {
	return s.Legal() && s.EastMissionaries() == maxNum && s.EastCannibals() == maxNum
}

// Successors returns every legal state reachable by one boat crossing of
// one or two people.
func Successors(s State) []State {
	var candidates []State
	if s.BoatWest {
		if s.WestMissionaries > 1 {
			candidates = append(candidates, State{s.WestMissionaries - 2, s.WestCannibals, false})
		}
		if s.WestMissionaries > 0 {
			candidates = append(candidates, State{s.WestMissionaries - 1, s.WestCannibals, false})
		}
		if s.WestCannibals > 1 {
			candidates = append(candidates, State{s.WestMissionaries, s.WestCannibals - 2, false})
		}
		if s.WestCannibals > 0 {
			candidates = append(candidates, State{s.WestMissionaries, s.WestCannibals - 1, false})
		}
		if s.WestMissionaries > 0 && s.WestCannibals > 0 {
			candidates = append(candidates, State{s.WestMissionaries - 1, s.WestCannibals - 1, false})
		}
	} else {
		if s.EastMissionaries() > 1 {
			candidates = append(candidates, State{s.WestMissionaries + 2, s.WestCannibals, true})
		}
		if s.EastMissionaries() > 0 {
			candidates = append(candidates, State{s.WestMissionaries + 1, s.WestCannibals, true})
		}
		if s.EastCannibals() > 1 {
			candidates = append(candidates, State{s.WestMissionaries, s.WestCannibals + 2, true})
		}
		if s.EastCannibals() > 0 {
			candidates = append(candidates, State{s.WestMissionaries, s.WestCannibals + 1, true})
		}
		if s.EastMissionaries() > 0 && s.EastCannibals() > 0 {
			candidates = append(candidates, State{s.WestMissionaries + 1, s.WestCannibals + 1, true})
		}
	}

	legal := candidates[:0]
	for _, c := range candidates {
		if c.Legal() {
			legal = append(legal, c)
		}
	}
	return legal
}

func (s State) String() string {
	bank := "east"
	if s.BoatWest {
		bank = "west"
	}
	return fmt.Sprintf(
		"On the west bank there are %d missionaries and %d cannibals.\n"+
			"On the east bank there are %d missionaries and %d cannibals.\n"+
			"The boat is on the %s bank.",
		s.WestMissionaries, s.WestCannibals, s.EastMissionaries(), s.EastCannibals(), bank)
}

// Solve finds the shortest crossing sequence.
func Solve() ([]State, error) {
	result, err := search.BFS(Start(), State.Goal, Successors)
	if err != nil {
		return nil, err
	}
	return result.Path(), nil
}

// Describe renders a solution path as a crossing-by-crossing narrative.
func Describe(path []State) string {
	var b strings.Builder
	if len(path) == 0 {
		return ""
	}
	old := path[0]
	fmt.Fprintf(&b, "%s\n", old)
	for _, current := range path[1:] {
		if current.BoatWest {
			fmt.Fprintf(&b, "%d missionaries and %d cannibals moved from the east bank to the west bank.\n",
				current.WestMissionaries-old.WestMissionaries, current.WestCannibals-old.WestCannibals)
		} else {
			fmt.Fprintf(&b, "%d missionaries and %d cannibals moved from the west bank to the east bank.\n",
				old.WestMissionaries-current.WestMissionaries, old.WestCannibals-current.WestCannibals)
		}
		fmt.Fprintf(&b, "%s\n", current)
		old = current
	}
	return b.String()
}
