package asp

import (
	"bytes"
	"fmt"
	"os/exec"
	"slices"
	"strings"
	"time"
)

const defaultClingoPath = "clingo"

// Clingo exit codes form a bitmask: 10 = satisfiable, 20 = unsatisfiable,
// 30 = optimum found, +1 = search interrupted by the time limit. A bare 1
// means the time limit expired before any model was found, which is an
// infeasible outcome, not a failure.
var acceptedExitCodes = []int{1, 10, 11, 20, 21, 30, 31}

type clingoSolver struct {
	path string
}

func NewClingoSolver(path string) Solver {
	if path == "" {
		path = defaultClingoPath
	}
	return &clingoSolver{path: path}
}

func (solver *clingoSolver) Solve(program Program, timeLimit time.Duration) (Result, error) {
	seconds := int(timeLimit / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	cmd := exec.Command(solver.path, fmt.Sprintf("--time-limit=%d", seconds), "-")
	cmd.Stdin = strings.NewReader(program.String()) // Feed the program into clingo's standard input

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil && !slices.Contains(acceptedExitCodes, cmd.ProcessState.ExitCode()) {
		return Result{}, fmt.Errorf("an error occurred during clingo execution: %v : %v", err.Error(), stderr.String())
	}

	return parseOutput(stdOut.String()), nil
}
