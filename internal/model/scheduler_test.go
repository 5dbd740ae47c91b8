package model

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling/internal/asp"
)

// stubSolver records the submitted program and replays a canned result, so
// the orchestration can be tested without a clingo binary.
type stubSolver struct {
	result  asp.Result
	err     error
	program asp.Program
}

func (solver *stubSolver) Solve(program asp.Program, _ time.Duration) (asp.Result, error) {
	solver.program = program
	return solver.result, solver.err
}

func TestSchedulerBuildInterpretsBestModel(t *testing.T) {
	// Arrange
	instance := validInstance()
	solver := &stubSolver{
		result: asp.Result{
			Feasible: true,
			Assignment: []asp.Pair{
				{Assistant: 0, Group: 0},
				{Assistant: 0, Group: 1},
				{Assistant: 1, Group: 1},
			},
			Cost: 110,
		},
	}
	scheduler := NewScheduler(solver)

	// Act
	interpretation, err := scheduler.Build(instance, 2*time.Second)

	// Assert
	require.Nil(t, err)
	require.NotNil(t, interpretation)
	assert.Equal(t, MakeProgram(instance), solver.program)
	assert.Equal(t, [][]string{{"A1"}, {"A1", "A2"}}, interpretation.Schedule)
	assert.Equal(t, 110, interpretation.Cost)
	assert.Equal(t, AssignmentCost(instance, solver.result.Assignment), interpretation.Cost)
}

func TestSchedulerBuildInfeasible(t *testing.T) {
	// Arrange: the time budget expired with zero models found
	scheduler := NewScheduler(&stubSolver{result: asp.Result{Feasible: false}})

	// Act
	interpretation, err := scheduler.Build(validInstance(), time.Second)

	// Assert: a terminal outcome, not an error
	assert.Nil(t, err)
	assert.Nil(t, interpretation)
}

func TestSchedulerBuildPropagatesSolverError(t *testing.T) {
	// Arrange
	scheduler := NewScheduler(&stubSolver{err: fmt.Errorf("clingo crashed")})

	// Act
	interpretation, err := scheduler.Build(validInstance(), time.Second)

	// Assert
	assert.Nil(t, interpretation)
	assert.ErrorContains(t, err, "clingo crashed")
}

func TestSchedulerBuildRejectsOutOfBoundsModel(t *testing.T) {
	// Arrange: the solver claims a model that leaves G2 empty
	scheduler := NewScheduler(&stubSolver{
		result: asp.Result{
			Feasible:   true,
			Assignment: []asp.Pair{{Assistant: 0, Group: 0}, {Assistant: 1, Group: 0}},
			Cost:       100,
		},
	})

	// Act
	interpretation, err := scheduler.Build(validInstance(), time.Second)

	// Assert
	assert.Nil(t, interpretation)
	assert.ErrorContains(t, err, "cardinality bounds")
}
