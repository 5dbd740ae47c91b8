package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// The two supported surface syntaxes for instance documents.
type schemaVariant int

const (
	// objectMapSchema (.json/.js/.jso): groups as a list of objects with a
	// "name" field, assistants as a name-keyed object.
	objectMapSchema schemaVariant = iota
	// listSchema (.yaml/.yml): groups and assistants both as lists of
	// {name: fields} singleton mappings.
	listSchema
)

type fileFormat struct {
	name       string
	variant    schemaVariant
	extensions []string
}

var fileFormats = []fileFormat{
	{"JSON", objectMapSchema, []string{"json", "js", "jso"}},
	{"YAML", listSchema, []string{"yaml", "yml"}},
}

var penaltyKeys = []string{
	"penalty_bad_time",
	"penalty_ok_time",
	"penalty_good_time",
	"penalty_consecutive",
}

var recognizedKeys = append([]string{"groups", "assistants"}, penaltyKeys...)

// groupConfig and assistantConfig carry the recognized per-entity fields of
// an instance document; fields left nil keep the documented defaults.
type groupConfig struct {
	Name string
	Min  *int
	Max  *int
	Pred *string
}

type assistantConfig struct {
	Name  string
	Prefs *string
	Min   *int
	Max   *int
}

// document is the schema-independent form both decoders produce; build turns
// it into a linked Instance.
type document struct {
	penalties  map[string]int
	groups     []groupConfig
	assistants []assistantConfig
}

// Load parses and validates the instance file at path. It either returns a
// fully validated instance or an error; no partial instance is ever handed
// downstream.
func Load(path string) (*Instance, error) {
	variant, err := detectVariant(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read the instance file: %v", err)
	}

	var doc *document
	switch variant {
	case objectMapSchema:
		doc, err = decodeObjectMap(data)
	case listSchema:
		doc, err = decodeList(data)
	}
	if err != nil {
		return nil, err
	}

	instance, err := doc.build()
	if err != nil {
		return nil, err
	}
	if err := instance.Validate(); err != nil {
		return nil, err
	}
	return instance, nil
}

// detectVariant picks the schema variant from the lower-cased file extension.
func detectVariant(path string) (schemaVariant, error) {
	lower := strings.ToLower(path)
	for _, format := range fileFormats {
		for _, extension := range format.extensions {
			if strings.HasSuffix(lower, "."+extension) {
				return format.variant, nil
			}
		}
	}
	supported := strings.Join(lo.Map(fileFormats, func(format fileFormat, _ int) string {
		return fmt.Sprintf("- %s: %s", format.name, strings.Join(format.extensions, ", "))
	}), "\n")
	return 0, fmt.Errorf("cannot detect the file format of %q; the supported file formats and extensions are:\n%s", path, supported)
}

func decodeObjectMap(data []byte) (*document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("cannot parse the instance file: %v", err)
	}
	if err := checkTopLevelKeys(lo.Keys(top)); err != nil {
		return nil, err
	}

	doc := &document{penalties: map[string]int{}}
	for _, key := range penaltyKeys {
		raw, ok := top[key]
		if !ok {
			continue
		}
		var value int
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, fmt.Errorf("the %q field must be an integer", key)
		}
		doc.penalties[key] = value
	}

	var rawGroups []map[string]any
	if err := json.Unmarshal(top["groups"], &rawGroups); err != nil {
		return nil, fmt.Errorf("cannot parse the \"groups\" field: %v", err)
	}
	for _, rawGroup := range rawGroups {
		var cfg groupConfig
		if err := mapstructure.Decode(rawGroup, &cfg); err != nil {
			return nil, fmt.Errorf("cannot decode a group entry: %v", err)
		}
		if cfg.Name == "" {
			return nil, fmt.Errorf("each group must have a \"name\" field")
		}
		doc.groups = append(doc.groups, cfg)
	}

	// The assistants object is walked token by token: decoding it into a Go
	// map would lose the document order that assigns the dense indices.
	names, values, err := orderedObject(top["assistants"])
	if err != nil {
		return nil, fmt.Errorf("cannot parse the \"assistants\" field: %v", err)
	}
	for i, name := range names {
		var fields map[string]any
		if err := json.Unmarshal(values[i], &fields); err != nil {
			return nil, fmt.Errorf("cannot parse the fields of assistant %q: %v", name, err)
		}
		var cfg assistantConfig
		if err := mapstructure.Decode(fields, &cfg); err != nil {
			return nil, fmt.Errorf("cannot decode the fields of assistant %q: %v", name, err)
		}
		cfg.Name = name
		doc.assistants = append(doc.assistants, cfg)
	}
	return doc, nil
}

func decodeList(data []byte) (*document, error) {
	var top map[string]any
	if err := yaml.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("cannot parse the instance file: %v", err)
	}
	if err := checkTopLevelKeys(lo.Keys(top)); err != nil {
		return nil, err
	}

	doc := &document{penalties: map[string]int{}}
	for _, key := range penaltyKeys {
		value, ok := top[key]
		if !ok {
			continue
		}
		number, ok := value.(int)
		if !ok {
			return nil, fmt.Errorf("the %q field must be an integer", key)
		}
		doc.penalties[key] = number
	}

	groupEntries, ok := top["groups"].([]any)
	if !ok {
		return nil, fmt.Errorf("the \"groups\" field must be a list")
	}
	for _, entry := range groupEntries {
		name, fields, err := singletonEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid group entry: %v", err)
		}
		var cfg groupConfig
		if err := mapstructure.Decode(fields, &cfg); err != nil {
			return nil, fmt.Errorf("cannot decode the fields of group %q: %v", name, err)
		}
		cfg.Name = name
		doc.groups = append(doc.groups, cfg)
	}

	assistantEntries, ok := top["assistants"].([]any)
	if !ok {
		return nil, fmt.Errorf("the \"assistants\" field must be a list")
	}
	for _, entry := range assistantEntries {
		name, fields, err := singletonEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid assistant entry: %v", err)
		}
		var cfg assistantConfig
		if err := mapstructure.Decode(fields, &cfg); err != nil {
			return nil, fmt.Errorf("cannot decode the fields of assistant %q: %v", name, err)
		}
		cfg.Name = name
		doc.assistants = append(doc.assistants, cfg)
	}
	return doc, nil
}

func checkTopLevelKeys(keys []string) error {
	for _, key := range keys {
		if !slices.Contains(recognizedKeys, key) {
			return fmt.Errorf("invalid key %q in the instance file", key)
		}
	}
	for _, key := range []string{"groups", "assistants"} {
		if !slices.Contains(keys, key) {
			return fmt.Errorf("the instance file must have a %q field", key)
		}
	}
	return nil
}

// orderedObject returns the keys and raw values of a JSON object in document
// order.
func orderedObject(raw json.RawMessage) ([]string, []json.RawMessage, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	token, err := decoder.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected an object")
	}

	var keys []string
	var values []json.RawMessage
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, nil, err
		}
		var value json.RawMessage
		if err := decoder.Decode(&value); err != nil {
			return nil, nil, err
		}
		keys = append(keys, token.(string))
		values = append(values, value)
	}
	return keys, values, nil
}

// singletonEntry unpacks a {name: fields} list entry.
func singletonEntry(entry any) (string, map[string]any, error) {
	mapping, ok := entry.(map[string]any)
	if !ok || len(mapping) != 1 {
		return "", nil, fmt.Errorf("each entry must be a mapping with a single name key")
	}
	for name, fields := range mapping {
		if fields == nil {
			return name, map[string]any{}, nil
		}
		fieldsMapping, ok := fields.(map[string]any)
		if !ok {
			return "", nil, fmt.Errorf("the fields of %q must be a mapping", name)
		}
		return name, fieldsMapping, nil
	}
	return "", nil, nil
}

func (doc *document) build() (*Instance, error) {
	instance := &Instance{
		PenaltyBadTime:     1000,
		PenaltyOkTime:      100,
		PenaltyGoodTime:    0,
		PenaltyConsecutive: 10,
	}
	for key, value := range doc.penalties {
		switch key {
		case "penalty_bad_time":
			instance.PenaltyBadTime = value
		case "penalty_ok_time":
			instance.PenaltyOkTime = value
		case "penalty_good_time":
			instance.PenaltyGoodTime = value
		case "penalty_consecutive":
			instance.PenaltyConsecutive = value
		}
	}

	groupIndices := make(map[string]int, len(doc.groups))
	preds := make([]*string, len(doc.groups))
	for index, cfg := range doc.groups {
		if _, ok := groupIndices[cfg.Name]; ok {
			return nil, fmt.Errorf("group %q defined twice", cfg.Name)
		}
		group := Group{Name: cfg.Name, Index: index, Min: 1, Max: 1, Pred: -1}
		if cfg.Min != nil {
			group.Min = *cfg.Min
		}
		if cfg.Max != nil {
			group.Max = *cfg.Max
		}
		groupIndices[cfg.Name] = index
		preds[index] = cfg.Pred
		instance.Groups = append(instance.Groups, group)
	}

	// Link the predecessor groups once all of them are known, so forward
	// references resolve.
	for index, pred := range preds {
		if pred == nil {
			continue
		}
		predIndex, ok := groupIndices[*pred]
		if !ok {
			return nil, fmt.Errorf("the predecessor group %q of %q is not defined", *pred, instance.Groups[index].Name)
		}
		instance.Groups[index].Pred = predIndex
	}

	assistantIndices := make(map[string]int, len(doc.assistants))
	for index, cfg := range doc.assistants {
		if _, ok := assistantIndices[cfg.Name]; ok {
			return nil, fmt.Errorf("assistant %q defined twice", cfg.Name)
		}
		if cfg.Prefs == nil {
			return nil, fmt.Errorf("assistant %q must have a \"prefs\" field", cfg.Name)
		}
		assistant := Assistant{Name: cfg.Name, Index: index, Min: 1, Max: 1, Prefs: *cfg.Prefs}
		if cfg.Min != nil {
			assistant.Min = *cfg.Min
		}
		if cfg.Max != nil {
			assistant.Max = *cfg.Max
		}
		assistantIndices[cfg.Name] = index
		instance.Assistants = append(instance.Assistants, assistant)
	}

	return instance, nil
}
