package model

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestMakeProgramIsDeterministic(t *testing.T) {
	// Arrange
	instance := validInstance()

	// Act
	first := MakeProgram(instance)
	second := MakeProgram(instance)

	// Assert: same ordering and content on every run
	assert.Equal(t, first, second)
}

func TestMakeProgramFacts(t *testing.T) {
	// Act
	program := MakeProgram(validInstance())

	// Assert
	assert.Contains(t, program, "a(0).")
	assert.Contains(t, program, "a(1).")
	assert.Contains(t, program, "group(0).")
	assert.Contains(t, program, "group(1).")
}

func TestMakeProgramCardinalityConstraints(t *testing.T) {
	// Act
	program := MakeProgram(validInstance())

	// Assert: each assistant takes between min and max groups, each group
	// gets between min and max assistants
	assert.Contains(t, program, "1 <= {in(0,G):group(G)} <= 2.")
	assert.Contains(t, program, "1 <= {in(1,G):group(G)} <= 1.")
	assert.Contains(t, program, "1 <= {in(A,0):a(A)} <= 2.")
	assert.Contains(t, program, "1 <= {in(A,1):a(A)} <= 2.")
}

func TestMakeProgramPreferenceWeakConstraints(t *testing.T) {
	// Act
	program := MakeProgram(validInstance())

	// Assert: A1 prefs "21" (good, ok), A2 prefs "12" (ok, good)
	assert.Contains(t, program, ":~ in(0,0). [ 0,in(0,0) ]")
	assert.Contains(t, program, ":~ in(0,1). [ 100,in(0,1) ]")
	assert.Contains(t, program, ":~ in(1,0). [ 100,in(1,0) ]")
	assert.Contains(t, program, ":~ in(1,1). [ 0,in(1,1) ]")
}

func TestMakeProgramBadTimeWeakConstraint(t *testing.T) {
	// Arrange
	instance := validInstance()
	instance.Assistants[0].Prefs = " 1"

	// Act
	program := MakeProgram(instance)

	// Assert
	assert.Contains(t, program, ":~ in(0,0). [ 1000,in(0,0) ]")
}

func TestMakeProgramConsecutiveWeakConstraints(t *testing.T) {
	// Act: G2 has predecessor G1, so each assistant gets a consecutive
	// penalty over the pair
	program := MakeProgram(validInstance())

	// Assert
	assert.Contains(t, program, ":~ in(0,0), in(0,1). [ 10,in(0,0),in(0,1) ]")
	assert.Contains(t, program, ":~ in(1,0), in(1,1). [ 10,in(1,0),in(1,1) ]")
}

func TestMakeProgramWithoutPredecessors(t *testing.T) {
	// Arrange
	instance := validInstance()
	instance.Groups[1].Pred = -1

	// Act
	program := MakeProgram(instance)

	// Assert: no two-atom weak constraint is emitted
	consecutive := lo.Filter(program, func(statement string, _ int) bool {
		return strings.Contains(statement, "), in(")
	})
	assert.Empty(t, consecutive)
}

func TestMakeProgramStatementCount(t *testing.T) {
	// Arrange
	instance := validInstance()
	assistants := len(instance.Assistants)
	groups := len(instance.Groups)
	predecessors := 1

	// Act
	program := MakeProgram(instance)

	// Assert: facts + per-assistant cardinality + preference weak constraints
	// + consecutive weak constraints + per-group cardinality
	expected := assistants + groups + assistants + assistants*groups + assistants*predecessors + groups
	assert.Len(t, program, expected)
}
