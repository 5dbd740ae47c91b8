package model

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"scheduling/internal/asp"
)

// Interpretation is the human-readable rendering of a solver model: the
// assistants of each group (indexed by group index, names sorted), the
// reported cost and one explanatory line per sub-optimal choice.
type Interpretation struct {
	Schedule        [][]string
	Cost            int
	NonOptimalities []string
}

// Interpret maps a flat assignment back onto the instance entities. The
// explanation order is fixed whatever the enumeration order of the
// assignment: groups in index order with assistants in sorted-name order for
// the preference lines, then the predecessor checks in group index order.
// GOOD-preference assignments never produce a line.
func Interpret(instance *Instance, result asp.Result) Interpretation {
	members := make([][]int, len(instance.Groups))
	for _, pair := range result.Assignment {
		members[pair.Group] = append(members[pair.Group], pair.Assistant)
	}

	interpretation := Interpretation{
		Schedule: make([][]string, len(instance.Groups)),
		Cost:     result.Cost,
	}
	for _, group := range instance.Groups {
		names := lo.Map(members[group.Index], func(assistant int, _ int) string {
			return instance.Assistants[assistant].Name
		})
		slices.Sort(names)
		interpretation.Schedule[group.Index] = names
	}

	assistantsByName := lo.KeyBy(instance.Assistants, func(assistant Assistant) string {
		return assistant.Name
	})

	for _, group := range instance.Groups {
		for _, name := range interpretation.Schedule[group.Index] {
			switch assistantsByName[name].Prefs[group.Index] {
			case PrefBad:
				interpretation.NonOptimalities = append(interpretation.NonOptimalities,
					fmt.Sprintf("%q on %q: bad time", name, group.Name))
			case PrefOk:
				interpretation.NonOptimalities = append(interpretation.NonOptimalities,
					fmt.Sprintf("%q on %q: ok time", name, group.Name))
			}
		}
	}

	for _, group := range instance.Groups {
		if group.Pred < 0 {
			continue
		}
		pred := instance.Groups[group.Pred]
		for _, name := range interpretation.Schedule[pred.Index] {
			if slices.Contains(interpretation.Schedule[group.Index], name) {
				interpretation.NonOptimalities = append(interpretation.NonOptimalities,
					fmt.Sprintf("%q on %q and %q: consecutive groups", name, pred.Name, group.Name))
			}
		}
	}

	return interpretation
}

// AssignmentCost recomputes the weak-constraint cost of an assignment: the
// preference penalty of every assigned pair plus the consecutive penalty for
// every predecessor/successor pair taken by the same assistant.
func AssignmentCost(instance *Instance, assignment []asp.Pair) int {
	cost := 0
	for _, pair := range assignment {
		switch instance.Assistants[pair.Assistant].Prefs[pair.Group] {
		case PrefBad:
			cost += instance.PenaltyBadTime
		case PrefOk:
			cost += instance.PenaltyOkTime
		case PrefGood:
			cost += instance.PenaltyGoodTime
		}
	}

	for _, group := range instance.Groups {
		if group.Pred < 0 {
			continue
		}
		for _, assistant := range instance.Assistants {
			inGroup := func(index int) bool {
				return slices.Contains(assignment, asp.Pair{Assistant: assistant.Index, Group: index})
			}
			if inGroup(group.Pred) && inGroup(group.Index) {
				cost += instance.PenaltyConsecutive
			}
		}
	}
	return cost
}

// VerifyAssignment checks that every cardinality bound of the instance holds
// in the given assignment.
func VerifyAssignment(instance *Instance, assignment []asp.Pair) bool {
	perAssistant := lo.CountValuesBy(assignment, func(pair asp.Pair) int { return pair.Assistant })
	perGroup := lo.CountValuesBy(assignment, func(pair asp.Pair) int { return pair.Group })

	for _, assistant := range instance.Assistants {
		count := perAssistant[assistant.Index]
		if count < assistant.Min || count > assistant.Max {
			return false
		}
	}
	for _, group := range instance.Groups {
		count := perGroup[group.Index]
		if count < group.Min || count > group.Max {
			return false
		}
	}
	return true
}
