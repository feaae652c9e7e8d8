// Package search provides generic state-space search over an arbitrary
// state type: depth-first, breadth-first, and A* search parameterized by
// a goal test, a successor function, and (for A*) a heuristic.
//
// A search run allocates every node it discovers in a single arena owned
// by the run; nodes refer to their parents by arena index, so the chain
// from a goal node back to the initial state stays valid for as long as
// the returned Result is reachable.
//
// All three algorithms are synchronous and single-threaded. A run over an
// effectively infinite state space blocks until the space is exhausted;
// callers needing bounded search wrap their callbacks, e.g. with Bounded
// and a Budget.
package search
