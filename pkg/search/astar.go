package search

// AStar performs an A* search from initial, expanding the pending node
// with the lowest estimated total cost (cost so far + heuristic) first.
// Every successor step costs exactly 1; callers needing weighted edges
// must encode the weight into their state type. With an admissible,
// consistent heuristic the returned path has minimum total cost among
// all reachable paths. Returns ErrNotFound once the reachable state
// space is exhausted.
//
// A state may be enqueued more than once while strictly cheaper paths to
// it are discovered; the best-cost map keeps only the cheapest, and
// stale frontier entries are discarded when popped.
func AStar[S comparable](initial S, goal GoalTest[S], next Successors[S], h Heuristic[S]) (*Result[S], error) {
	a := &arena[S]{}
	frontier := &priorityFrontier{}
	frontier.push(a.add(initial, noParent, 0, h(initial)), h(initial))
	best := map[S]float64{initial: 0}

	for frontier.Len() > 0 {
		current := frontier.pop()
		state := a.nodes[current].state
		if a.nodes[current].cost > best[state] {
			continue
		}

		if goal(state) {
			return &Result[S]{arena: a, index: current}, nil
		}

		for _, child := range next(state) {
			newCost := a.nodes[current].cost + 1
			if prev, seen := best[child]; !seen || newCost < prev {
				best[child] = newCost
				estimate := h(child)
				frontier.push(a.add(child, current, newCost, estimate), newCost+estimate)
			}
		}
	}

	return nil, ErrNotFound
}
