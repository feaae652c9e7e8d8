package search

import "container/heap"

// frontierItem is a pending arena node together with the estimated total
// cost it was pushed with.
type frontierItem struct {
	index int
	total float64
	seq   int
}

// priorityFrontier orders pending nodes by estimated total cost
// (cost + heuristic). Ties are broken by insertion order: among equal
// estimates the earlier-pushed node is popped first. Entries made stale
// by a cheaper rediscovery of the same state stay in the heap and are
// skipped on pop (lazy decrease-key).
type priorityFrontier struct {
	items []frontierItem
	seq   int
}

func (f *priorityFrontier) Len() int { return len(f.items) }

func (f *priorityFrontier) Less(i, j int) bool {
	if f.items[i].total != f.items[j].total {
		return f.items[i].total < f.items[j].total
	}
	return f.items[i].seq < f.items[j].seq
}

func (f *priorityFrontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
}

func (f *priorityFrontier) Push(x any) {
	f.items = append(f.items, x.(frontierItem))
}

func (f *priorityFrontier) Pop() any {
	last := f.items[len(f.items)-1]
	f.items = f.items[:len(f.items)-1]
	return last
}

func (f *priorityFrontier) push(index int, total float64) {
	heap.Push(f, frontierItem{index: index, total: total, seq: f.seq})
	f.seq++
}

func (f *priorityFrontier) pop() int {
	return heap.Pop(f).(frontierItem).index
}
