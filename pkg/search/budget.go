package search

// Budget caps the number of node expansions a search run may perform.
// The search functions themselves run until the state space is
// exhausted; wrapping the successor function with Bounded makes an
// over-budget run surface as the ordinary ErrNotFound outcome.
type Budget struct {
	remaining int
}

// NewBudget returns a Budget allowing n expansions.
func NewBudget(n int) *Budget {
	return &Budget{remaining: n}
}

// Spend consumes one expansion and reports whether the budget still had
// room for it.
func (b *Budget) Spend() bool {
	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}

// Exhausted reports whether the budget has been fully spent.
func (b *Budget) Exhausted() bool {
	return b.remaining <= 0
}

// Bounded wraps a successor function so that it stops producing children
// once budget is exhausted, forcing the surrounding search to terminate.
func Bounded[S any](budget *Budget, next Successors[S]) Successors[S] {
	return func(state S) []S {
		if !budget.Spend() {
			return nil
		}
		return next(state)
	}
}
