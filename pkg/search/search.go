package search

import "errors"

// ErrNotFound is returned when the reachable state space is exhausted
// without satisfying the goal test. It is an ordinary negative outcome
// of a well-formed search, not a fault.
var ErrNotFound = errors.New("search: goal not found")

// GoalTest reports whether a state satisfies the search goal.
type GoalTest[S any] func(state S) bool

// Successors generates the states reachable from a state in one step.
type Successors[S any] func(state S) []S

// Heuristic estimates the remaining cost from a state to a goal state.
// A* is optimal only if the estimate never exceeds the true remaining
// cost.
type Heuristic[S any] func(state S) float64
