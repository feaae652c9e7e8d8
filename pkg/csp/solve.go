package csp

// VariableOrdering selects which unassigned variable to try next.
// unassigned is never empty and preserves declaration order.
type VariableOrdering[V comparable, D any] func(c *CSP[V, D], unassigned []V) V

// DeclarationOrder is the default ordering: always the first unassigned
// variable in declaration order.
func DeclarationOrder[V comparable, D any]() VariableOrdering[V, D] {
	return func(_ *CSP[V, D], unassigned []V) V {
		return unassigned[0]
	}
}

// FewestValues orders by smallest domain first (the most-constrained-
// variable heuristic). Ties fall back to declaration order.
func FewestValues[V comparable, D any]() VariableOrdering[V, D] {
	return func(c *CSP[V, D], unassigned []V) V {
		best := unassigned[0]
		for _, variable := range unassigned[1:] {
			if len(c.domains[variable]) < len(c.domains[best]) {
				best = variable
			}
		}
		return best
	}
}

type solveConfig[V comparable, D any] struct {
	assignment Assignment[V, D]
	ordering   VariableOrdering[V, D]
	tracer     Tracer[V, D]
}

// Option configures a single Solve call.
type Option[V comparable, D any] func(*solveConfig[V, D])

// WithAssignment seeds the search with a partial assignment. The search
// only extends it; variables it covers are never reconsidered.
func WithAssignment[V comparable, D any](assignment Assignment[V, D]) Option[V, D] {
	return func(cfg *solveConfig[V, D]) {
		cfg.assignment = assignment
	}
}

// WithVariableOrdering replaces the default declaration-order variable
// selection.
func WithVariableOrdering[V comparable, D any](ordering VariableOrdering[V, D]) Option[V, D] {
	return func(cfg *solveConfig[V, D]) {
		cfg.ordering = ordering
	}
}

// WithTracer observes the search as it considers variables.
func WithTracer[V comparable, D any](tracer Tracer[V, D]) Option[V, D] {
	return func(cfg *solveConfig[V, D]) {
		cfg.tracer = tracer
	}
}

// Solve runs backtracking search and returns the first complete,
// constraint-satisfying assignment reachable from the (by default empty)
// initial assignment, or ErrNotSatisfiable when none exists.
//
// Candidate variables are picked by the configured ordering and candidate
// values are tried in domain order. The recursion depth equals the number
// of unassigned variables; problems with variable counts in the thousands
// may need an iterative reformulation to respect the caller's stack.
func (c *CSP[V, D]) Solve(opts ...Option[V, D]) (Assignment[V, D], error) {
	cfg := &solveConfig[V, D]{
		assignment: Assignment[V, D]{},
		ordering:   DeclarationOrder[V, D](),
		tracer:     DefaultTracer[V, D]{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	result := c.backtrack(cfg, cfg.assignment.Clone())
	if result == nil {
		return nil, ErrNotSatisfiable
	}
	return result, nil
}

func (c *CSP[V, D]) backtrack(cfg *solveConfig[V, D], assignment Assignment[V, D]) Assignment[V, D] {
	if len(assignment) == len(c.variables) {
		return assignment
	}

	unassigned := make([]V, 0, len(c.variables)-len(assignment))
	for _, variable := range c.variables {
		if _, ok := assignment[variable]; !ok {
			unassigned = append(unassigned, variable)
		}
	}
	variable := cfg.ordering(c, unassigned)
	cfg.tracer.Trace(searchPosition[V, D]{variable: variable, assignment: assignment})

	for _, value := range c.domains[variable] {
		// Copy-on-branch: siblings never see this extension, so
		// backtracking needs no explicit undo.
		local := assignment.Clone()
		local[variable] = value
		if !c.Consistent(variable, local) {
			continue
		}
		if result := c.backtrack(cfg, local); result != nil {
			return result
		}
	}

	return nil
}
