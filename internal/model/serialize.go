package model

import (
	"fmt"
	"log"
	"strings"

	"gopkg.in/yaml.v3"
)

// JSON renders the instance in the object-map schema accepted by Load, so a
// loaded instance round-trips through it.
func (instance *Instance) JSON() string {
	var builder strings.Builder
	builder.WriteString("{\n")
	fmt.Fprintf(&builder, "  \"penalty_bad_time\": %d,\n", instance.PenaltyBadTime)
	fmt.Fprintf(&builder, "  \"penalty_ok_time\": %d,\n", instance.PenaltyOkTime)
	fmt.Fprintf(&builder, "  \"penalty_good_time\": %d,\n", instance.PenaltyGoodTime)
	fmt.Fprintf(&builder, "  \"penalty_consecutive\": %d,\n", instance.PenaltyConsecutive)

	builder.WriteString("  \"groups\": [\n")
	for i, group := range instance.Groups {
		pred := ""
		if group.Pred >= 0 {
			pred = fmt.Sprintf(", \"pred\": %q", instance.Groups[group.Pred].Name)
		}
		fmt.Fprintf(&builder, "    {\"name\": %q, \"min\": %d, \"max\": %d%s}%s\n",
			group.Name, group.Min, group.Max, pred, listSeparator(i, len(instance.Groups)))
	}
	builder.WriteString("  ],\n")

	builder.WriteString("  \"assistants\": {\n")
	for i, assistant := range instance.Assistants {
		fmt.Fprintf(&builder, "    %q: {\"prefs\": %q, \"min\": %d, \"max\": %d}%s\n",
			assistant.Name, assistant.Prefs, assistant.Min, assistant.Max, listSeparator(i, len(instance.Assistants)))
	}
	builder.WriteString("  }\n}\n")
	return builder.String()
}

func listSeparator(index, length int) string {
	if index == length-1 {
		return ""
	}
	return ","
}

type yamlGroupFields struct {
	Min  int     `yaml:"min"`
	Max  int     `yaml:"max"`
	Pred *string `yaml:"pred,omitempty"`
}

type yamlAssistantFields struct {
	Prefs string `yaml:"prefs"`
	Min   int    `yaml:"min"`
	Max   int    `yaml:"max"`
}

type yamlDocument struct {
	PenaltyBadTime     int                              `yaml:"penalty_bad_time"`
	PenaltyOkTime      int                              `yaml:"penalty_ok_time"`
	PenaltyGoodTime    int                              `yaml:"penalty_good_time"`
	PenaltyConsecutive int                              `yaml:"penalty_consecutive"`
	Groups             []map[string]yamlGroupFields     `yaml:"groups"`
	Assistants         []map[string]yamlAssistantFields `yaml:"assistants"`
}

// YAML renders the instance in the list-of-singleton-maps schema accepted by
// Load.
func (instance *Instance) YAML() string {
	doc := yamlDocument{
		PenaltyBadTime:     instance.PenaltyBadTime,
		PenaltyOkTime:      instance.PenaltyOkTime,
		PenaltyGoodTime:    instance.PenaltyGoodTime,
		PenaltyConsecutive: instance.PenaltyConsecutive,
		Groups:             make([]map[string]yamlGroupFields, 0, len(instance.Groups)),
		Assistants:         make([]map[string]yamlAssistantFields, 0, len(instance.Assistants)),
	}

	for _, group := range instance.Groups {
		fields := yamlGroupFields{Min: group.Min, Max: group.Max}
		if group.Pred >= 0 {
			name := instance.Groups[group.Pred].Name
			fields.Pred = &name
		}
		doc.Groups = append(doc.Groups, map[string]yamlGroupFields{group.Name: fields})
	}
	for _, assistant := range instance.Assistants {
		fields := yamlAssistantFields{Prefs: assistant.Prefs, Min: assistant.Min, Max: assistant.Max}
		doc.Assistants = append(doc.Assistants, map[string]yamlAssistantFields{assistant.Name: fields})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		log.Panicf("cannot marshal the instance to yaml: %v", err)
	}
	return string(out)
}
