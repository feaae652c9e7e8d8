// Package csp models constraint-satisfaction problems - variables, their
// value domains, and constraints restricting joint assignments - and
// solves them with recursive backtracking search.
//
// A CSP is constructed once, constraints are attached with AddConstraint,
// and Solve returns the first complete, consistent assignment it finds.
// Assignments are copied on each branch of the search, so backtracking
// needs no explicit undo and sibling branches never observe each other's
// partial assignments.
package csp
