package search

// And returns a GoalTest satisfied only when every given test is
// satisfied. Evaluation short-circuits on the first failing test.
func And[S any](tests ...GoalTest[S]) GoalTest[S] {
	return func(state S) bool {
		for _, test := range tests {
			if !test(state) {
				return false
			}
		}
		return true
	}
}

// Or returns a GoalTest satisfied when any of the given tests is
// satisfied. Evaluation short-circuits on the first passing test.
func Or[S any](tests ...GoalTest[S]) GoalTest[S] {
	return func(state S) bool {
		for _, test := range tests {
			if test(state) {
				return true
			}
		}
		return false
	}
}

// Not returns a GoalTest that inverts the given test.
func Not[S any](test GoalTest[S]) GoalTest[S] {
	return func(state S) bool {
		return !test(state)
	}
}
