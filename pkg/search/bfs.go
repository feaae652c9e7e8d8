package search

// BFS performs a breadth-first search from initial, expanding states in
// non-decreasing distance from the root. When every successor step is
// unit cost, the returned path has minimum edge count among all paths to
// a goal state. Returns ErrNotFound once the reachable state space is
// exhausted.
func BFS[S comparable](initial S, goal GoalTest[S], next Successors[S]) (*Result[S], error) {
	a := &arena[S]{}
	frontier := []int{a.add(initial, noParent, 0, 0)}
	explored := map[S]struct{}{initial: {}}

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		state := a.nodes[current].state

		if goal(state) {
			return &Result[S]{arena: a, index: current}, nil
		}

		// States are marked explored at first enqueue, so a state can
		// never re-enter the frontier through a longer path.
		for _, child := range next(state) {
			if _, seen := explored[child]; seen {
				continue
			}
			explored[child] = struct{}{}
			frontier = append(frontier, a.add(child, current, 0, 0))
		}
	}

	return nil, ErrNotFound
}
