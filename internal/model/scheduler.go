package model

import (
	"fmt"
	"time"

	"scheduling/internal/asp"
)

type Scheduler interface {
	// Build encodes the instance, runs the solver within the time limit and
	// interprets the best model found. A nil interpretation with a nil error
	// means no feasible schedule was found (this is a valid output).
	Build(instance *Instance, timeLimit time.Duration) (*Interpretation, error)
}

type aspScheduler struct {
	solver asp.Solver
}

func NewScheduler(solver asp.Solver) Scheduler {
	return &aspScheduler{solver: solver}
}

func (scheduler *aspScheduler) Build(instance *Instance, timeLimit time.Duration) (*Interpretation, error) {
	program := MakeProgram(instance)

	result, err := scheduler.solver.Solve(program, timeLimit)
	if err != nil {
		return nil, err
	} else if !result.Feasible {
		return nil, nil
	}

	if !VerifyAssignment(instance, result.Assignment) {
		return nil, fmt.Errorf("the solver returned an assignment violating the cardinality bounds")
	}

	interpretation := Interpret(instance, result)
	return &interpretation, nil
}
