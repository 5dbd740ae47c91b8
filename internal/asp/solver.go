package asp

import "time"

// Pair links an assistant index to a group index in a model returned by the
// solver.
type Pair struct {
	Assistant int
	Group     int
}

// Result is the outcome of a single solve attempt. Feasible is false when the
// solver found no model within the time limit (this is a valid output where
// error shall be nil). When the time limit interrupts the search, Assignment
// holds the best model encountered so far, not necessarily an optimal one.
type Result struct {
	Feasible   bool
	Assignment []Pair
	Cost       int
}

type Solver interface {
	Solve(program Program, timeLimit time.Duration) (Result, error)
}
