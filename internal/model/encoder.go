package model

import (
	"fmt"
	"log"

	"scheduling/internal/asp"
)

// MakeProgram compiles a validated instance into the logic program submitted
// to the solver. It is pure and deterministic: the same instance always
// yields the same program. Indices, not names, identify assistants and groups
// inside the encoding since the solver's fact language operates over small
// integers.
func MakeProgram(instance *Instance) asp.Program {
	program := asp.Program{}

	inAtom := func(assistant Assistant, group Group) string {
		return fmt.Sprintf("in(%d,%d)", assistant.Index, group.Index)
	}

	// Assistants and groups as facts
	for _, assistant := range instance.Assistants {
		program = append(program, fmt.Sprintf("a(%d).", assistant.Index))
	}
	for _, group := range instance.Groups {
		program = append(program, fmt.Sprintf("group(%d).", group.Index))
	}

	for _, assistant := range instance.Assistants {
		// Each assistant must take a specified number of groups
		program = append(program, fmt.Sprintf("%d <= {in(%d,G):group(G)} <= %d.",
			assistant.Min, assistant.Index, assistant.Max))

		// Assistant preferences as weak constraints
		for i, group := range instance.Groups {
			term := inAtom(assistant, group)
			var penalty int
			switch assistant.Prefs[i] {
			case PrefBad:
				penalty = instance.PenaltyBadTime
			case PrefOk:
				penalty = instance.PenaltyOkTime
			case PrefGood:
				penalty = instance.PenaltyGoodTime
			default:
				// Guaranteed unreachable for validated instances
				log.Panicf("illegal preference character %q reached the encoder", string(assistant.Prefs[i]))
			}
			program = append(program, fmt.Sprintf(":~ %s. [ %d,%s ]", term, penalty, term))
		}

		// Penalty for scheduling the assistant in consecutive groups
		for _, group := range instance.Groups {
			if group.Pred < 0 {
				continue
			}
			atom1 := inAtom(assistant, instance.Groups[group.Pred])
			atom2 := inAtom(assistant, group)
			program = append(program, fmt.Sprintf(":~ %s, %s. [ %d,%s,%s ]",
				atom1, atom2, instance.PenaltyConsecutive, atom1, atom2))
		}
	}

	// Each group must have a specified number of assistants
	for _, group := range instance.Groups {
		program = append(program, fmt.Sprintf("%d <= {in(A,%d):a(A)} <= %d.",
			group.Min, group.Index, group.Max))
	}

	return program
}
