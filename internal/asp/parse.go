package asp

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

var (
	modelsPattern       = regexp.MustCompile(`^Models\s*:\s*(\d+)\+?`)
	optimizationPattern = regexp.MustCompile(`^Optimization\s*:\s*(\d+)`)
	inAtomPattern       = regexp.MustCompile(`^in\((\d+),(\d+)\)$`)
)

// parseOutput extracts the best model and its cost from clingo's textual
// output. Clingo prints every improving model after an "Answer:" header, so
// the last such block is the best one found before the time limit expired.
// The summary lines give the model count and the final optimization value.
func parseOutput(solverOutput string) Result {
	lines := strings.Split(solverOutput, "\n")

	models := 0
	cost := 0
	var answer string
	for i, line := range lines {
		if strings.HasPrefix(line, "Answer:") && i+1 < len(lines) {
			answer = lines[i+1]
		} else if match := modelsPattern.FindStringSubmatch(line); match != nil {
			models = mustAtoi(match[1])
		} else if match := optimizationPattern.FindStringSubmatch(line); match != nil {
			cost = mustAtoi(match[1])
		}
	}

	if models == 0 {
		return Result{}
	}

	atoms := lo.Filter(strings.Fields(answer), func(atom string, _ int) bool {
		return inAtomPattern.MatchString(atom)
	})
	assignment := lo.Map(atoms, func(atom string, _ int) Pair {
		match := inAtomPattern.FindStringSubmatch(atom)
		return Pair{Assistant: mustAtoi(match[1]), Group: mustAtoi(match[2])}
	})

	return Result{Feasible: true, Assignment: assignment, Cost: cost}
}

func mustAtoi(digits string) int {
	value, err := strconv.Atoi(digits)
	if err != nil {
		log.Panicf("invalid number in solver output: %v", err)
	}
	return value
}
