package sendmoney

import (
	"github.com/quest-framework/quest/pkg/csp"
	"github.com/quest-framework/quest/pkg/csp/constraint"
)

// Letters are the distinct letters of SEND + MORE = MONEY, in
// declaration order.
var Letters = []string{"S", "E", "N", "D", "M", "O", "R", "Y"}

// Solve assigns a distinct digit to every letter so that
// SEND + MORE = MONEY. M is pinned to 1 so no number starts with zero.
func Solve() (csp.Assignment[string, int], error) {
	digits := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	domains := make(map[string][]int, len(Letters))
	for _, letter := range Letters {
		domains[letter] = digits
	}
	domains["M"] = []int{1}

	c, err := csp.New(Letters, domains)
	if err != nil {
		return nil, err
	}
	if err := c.AddConstraint(constraint.AllDifferent[string, int](Letters...)); err != nil {
		return nil, err
	}
	if err := c.AddConstraint(constraint.Func(Letters, addsUp)); err != nil {
		return nil, err
	}
	return c.Solve()
}

func addsUp(a csp.Assignment[string, int]) bool {
	send := a["S"]*1000 + a["E"]*100 + a["N"]*10 + a["D"]
	more := a["M"]*1000 + a["O"]*100 + a["R"]*10 + a["E"]
	money := a["M"]*10000 + a["O"]*1000 + a["N"]*100 + a["E"]*10 + a["Y"]
	return send+more == money
}
