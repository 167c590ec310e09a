package label

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed testdata/legacy_name_fields.yaml
var legacyNameFieldsYAML []byte

type nameFieldTable struct {
	Prefix  string            `yaml:"prefix"`
	Default string            `yaml:"default"`
	Legacy  []legacyNameField `yaml:"legacy"`
}

type legacyNameField struct {
	Tag   string `yaml:"tag"`
	Field string `yaml:"field"`
}

// nameFields exposes the immutable process-wide field table. The embedded
// document is decoded exactly once and never mutated afterwards.
var nameFields = sync.OnceValue(func() nameFieldTable {
	var table nameFieldTable
	if err := yaml.Unmarshal(legacyNameFieldsYAML, &table); err != nil {
		panic(fmt.Sprintf("label: decode legacy name fields: %v", err))
	}
	if table.Prefix == "" {
		table.Prefix = "name:"
	}
	if table.Default == "" {
		table.Default = "name"
	}
	return table
})

// DefaultNameField returns the generic local-language name field.
func DefaultNameField() string {
	return nameFields().Default
}

// NameFields maps a locale tag to its field identifiers: the name:<tag> form
// and, for the legacy tags when requested, the underscore form.
func NameFields(tag Tag, includeLegacy bool) []string {
	table := nameFields()
	fields := []string{table.Prefix + string(tag)}

	if !includeLegacy {
		return fields
	}
	for _, legacy := range table.Legacy {
		if legacy.Tag == string(tag) {
			fields = append(fields, legacy.Field)
			break
		}
	}
	return fields
}

// LocalizedNameExpression builds the per-locale field fallback chain: one
// lookup per chain entry in priority order, terminated by the generic name
// field. At evaluation time it resolves to the first present field, or null
// when the feature carries no usable name at all.
func LocalizedNameExpression(chain Chain, includeLegacy bool) Expression {
	args := make([]Expression, 0, len(chain)+1)
	for _, tag := range chain {
		for _, field := range NameFields(tag, includeLegacy) {
			args = append(args, Get(field))
		}
	}
	args = append(args, Get(DefaultNameField()))
	return Coalesce(args...)
}
