package model

import "fmt"

// Group is an exercise session slot requiring between Min and Max assistants.
// Pred is the index of the immediately preceding group in the instance's
// group collection, or -1 when there is none; assigning the same assistant to
// a group and its predecessor incurs the consecutive penalty.
type Group struct {
	Name  string
	Index int
	Min   int
	Max   int
	Pred  int
}

// Assistant must take between Min and Max groups. Prefs holds one preference
// character per group, in group-index order.
type Assistant struct {
	Name  string
	Index int
	Min   int
	Max   int
	Prefs string
}

// Instance is a full scheduling problem: the groups, the assistants and the
// penalty weights. It is built once by Load and never mutated afterwards.
type Instance struct {
	PenaltyBadTime     int
	PenaltyOkTime      int
	PenaltyGoodTime    int
	PenaltyConsecutive int
	Groups             []Group
	Assistants         []Assistant
}

// Validate checks every semantic rule of the instance and reports the first
// violated one together with the offending entity. An instance that fails
// validation must never reach the encoder.
func (instance *Instance) Validate() error {
	penalties := []struct {
		name  string
		value int
	}{
		{"penalty_bad_time", instance.PenaltyBadTime},
		{"penalty_ok_time", instance.PenaltyOkTime},
		{"penalty_good_time", instance.PenaltyGoodTime},
		{"penalty_consecutive", instance.PenaltyConsecutive},
	}
	for _, penalty := range penalties {
		if penalty.value < 0 {
			return fmt.Errorf("the penalty %q must be non-negative", penalty.name)
		}
	}

	minPersonnel, maxPersonnel := 0, 0
	groupNames := make(map[string]bool, len(instance.Groups))
	for _, group := range instance.Groups {
		if group.Name == "" {
			return fmt.Errorf("each group must have a non-empty name")
		}
		if groupNames[group.Name] {
			return fmt.Errorf("group %q defined twice", group.Name)
		}
		groupNames[group.Name] = true
		if group.Min < 0 || group.Min > group.Max {
			return fmt.Errorf("group %q: 0 <= \"min\" <= \"max\" does not hold", group.Name)
		}
		if group.Pred < -1 || group.Pred >= len(instance.Groups) {
			return fmt.Errorf("group %q: predecessor index out of range", group.Name)
		}
		minPersonnel += group.Min
		maxPersonnel += group.Max
	}

	minAvailable, maxAvailable := 0, 0
	assistantNames := make(map[string]bool, len(instance.Assistants))
	for _, assistant := range instance.Assistants {
		if assistant.Name == "" {
			return fmt.Errorf("each assistant must have a non-empty name")
		}
		if assistantNames[assistant.Name] {
			return fmt.Errorf("assistant %q defined twice", assistant.Name)
		}
		assistantNames[assistant.Name] = true
		if assistant.Min < 0 || assistant.Min > assistant.Max {
			return fmt.Errorf("assistant %q: 0 <= \"min\" <= \"max\" does not hold", assistant.Name)
		}
		if len(assistant.Prefs) != len(instance.Groups) {
			return fmt.Errorf("assistant %q has a wrong number of group preferences (%d instead of %d)",
				assistant.Name, len(assistant.Prefs), len(instance.Groups))
		}
		for i := 0; i < len(assistant.Prefs); i++ {
			if !legalPref(assistant.Prefs[i]) {
				return fmt.Errorf("assistant %q: illegal character %q in the preferences",
					assistant.Name, string(assistant.Prefs[i]))
			}
		}
		minAvailable += assistant.Min
		maxAvailable += assistant.Max
	}

	// Necessary (not sufficient) aggregate feasibility checks
	if maxAvailable < minPersonnel {
		return fmt.Errorf("not enough assistant shifts available (only %d but at least %d required)",
			maxAvailable, minPersonnel)
	}
	if minAvailable > maxPersonnel {
		return fmt.Errorf("not enough group shifts to fill the minimum shifts of all assistants (only %d shifts but assistants want at least %d)",
			maxPersonnel, minAvailable)
	}
	return nil
}
