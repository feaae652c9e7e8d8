package search

// DFS performs a depth-first search from initial, expanding the most
// recently discovered state first. It returns the first goal node found,
// with no guarantee on path length, or ErrNotFound once the reachable
// state space is exhausted. Termination is guaranteed only for finite
// state spaces.
func DFS[S comparable](initial S, goal GoalTest[S], next Successors[S]) (*Result[S], error) {
	a := &arena[S]{}
	frontier := []int{a.add(initial, noParent, 0, 0)}
	explored := map[S]struct{}{initial: {}}

	for len(frontier) > 0 {
		current := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		state := a.nodes[current].state

		if goal(state) {
			return &Result[S]{arena: a, index: current}, nil
		}

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
