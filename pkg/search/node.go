package search

import "slices"

// noParent marks the root of a parent chain.
const noParent = -1

// node links a state to its discovery context. Nodes are never mutated
// after creation; improving on a state creates a new node instead.
type node[S comparable] struct {
	state     S
	parent    int
	cost      float64
	heuristic float64
}

// arena owns every node created during one search run. Parent references
// are indices into the same arena rather than pointers, so a chain can
// never dangle and the whole run is reclaimed together.
type arena[S comparable] struct {
	nodes []node[S]
}

func (a *arena[S]) add(state S, parent int, cost, heuristic float64) int {
	a.nodes = append(a.nodes, node[S]{state: state, parent: parent, cost: cost, heuristic: heuristic})
	return len(a.nodes) - 1
}

// Result is a handle to the goal node of a successful search run.
type Result[S comparable] struct {
	arena *arena[S]
	index int
}

// State returns the goal state the search terminated on.
func (r *Result[S]) State() S {
	return r.arena.nodes[r.index].state
}

// Cost returns the cumulative path cost from the initial state to the
// goal state. It is always zero for DFS and BFS runs.
func (r *Result[S]) Cost() float64 {
	return r.arena.nodes[r.index].cost
}

// Path returns the states from the initial state to the goal state, in
// order. Its length equals the number of nodes in the parent chain and
// its contents are deterministic for a given run.
func (r *Result[S]) Path() []S {
	var path []S
	for i := r.index; i != noParent; i = r.arena.nodes[i].parent {
		path = append(path, r.arena.nodes[i].state)
	}
	slices.Reverse(path)
	return path
}
