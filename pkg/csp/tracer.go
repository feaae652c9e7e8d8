package csp

import (
	"fmt"
	"io"
)

// SearchPosition describes a point in the backtracking search: the
// variable about to be assigned and the partial assignment in effect.
type SearchPosition[V comparable, D any] interface {
	Variable() V
	Assignment() Assignment[V, D]
}

// Tracer observes the progress of a Solve call.
type Tracer[V comparable, D any] interface {
	Trace(p SearchPosition[V, D])
}

// DefaultTracer ignores everything.
type DefaultTracer[V comparable, D any] struct{}

func (DefaultTracer[V, D]) Trace(_ SearchPosition[V, D]) {
}

// LoggingTracer writes a human-readable record of every search position
// to Writer.
type LoggingTracer[V comparable, D any] struct {
	Writer io.Writer
}

func (t LoggingTracer[V, D]) Trace(p SearchPosition[V, D]) {
	fmt.Fprintf(t.Writer, "---\nconsidering %v\nassigned:\n", p.Variable())
	for variable, value := range p.Assignment() {
		fmt.Fprintf(t.Writer, "- %v = %v\n", variable, value)
	}
}

type searchPosition[V comparable, D any] struct {
	variable   V
	assignment Assignment[V, D]
}

func (p searchPosition[V, D]) Variable() V {
	return p.variable
}

func (p searchPosition[V, D]) Assignment() Assignment[V, D] {
	return p.assignment
}
