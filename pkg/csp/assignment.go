package csp

// Assignment is a partial mapping of variables to values, grown and
// shrunk only through backtracking.
type Assignment[V comparable, D any] map[V]D

// Clone returns an independent copy of the assignment.
func (a Assignment[V, D]) Clone() Assignment[V, D] {
	out := make(Assignment[V, D], len(a)+1)
	for variable, value := range a {
		out[variable] = value
	}
	return out
}
