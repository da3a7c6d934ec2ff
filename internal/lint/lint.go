// Package lint audits entity definitions for name problems that a build
// tolerates but an author should fix at the source.
package lint

import (
	"fmt"

	"github.com/jinzhu/inflection"

	"namesmith/internal/lexicon"
	"namesmith/internal/name"
)

// Finding codes.
const (
	CodeMissingSingular = "missing-singular"
	CodeRedundantPlural = "redundant-plural"
	CodeSuspectPlural   = "suspect-plural"
)

// Finding is one problem detected in a definition.
type Finding struct {
	DefinitionID string `json:"definition_id"`
	Field        string `json:"field"`
	Code         string `json:"code"`
	Message      string `json:"message"`
}

// Audit checks every definition and returns findings in definition order.
//
// Three rules apply: a missing singular (fatal at build time), a redundant
// plural (restates the mechanical default), and a suspect plural: an
// override that matches neither the mechanical default nor the dictionary
// plural, which usually means a typo rather than a deliberate irregular
// form. The dictionary check uses the inflection library so genuine
// irregulars ("Goose" -> "Geese") pass clean.
func Audit(defs []lexicon.Definition) []Finding {
	var findings []Finding
	for _, def := range defs {
		findings = append(findings, auditDefinition(def)...)
	}
	return findings
}

func auditDefinition(def lexicon.Definition) []Finding {
	if def.Name.Singular == nil {
		return []Finding{{
			DefinitionID: def.ID,
			Field:        "singular",
			Code:         CodeMissingSingular,
			Message:      "definition has no singular form; it cannot be built",
		}}
	}
	if def.Name.Plural == nil {
		return nil
	}

	singular, plural := *def.Name.Singular, *def.Name.Plural
	if name.IsRedundant(singular, plural) {
		return []Finding{{
			DefinitionID: def.ID,
			Field:        "plural",
			Code:         CodeRedundantPlural,
			Message:      fmt.Sprintf("Unnecessary plural: %s can be rendered from %s.", plural, singular),
		}}
	}

	if dictionary := inflection.Plural(singular); plural != dictionary {
		return []Finding{{
			DefinitionID: def.ID,
			Field:        "plural",
			Code:         CodeSuspectPlural,
			Message: fmt.Sprintf("plural %q matches neither the default %q nor the dictionary form %q",
				plural, name.DefaultPlural(singular), dictionary),
		}}
	}
	return nil
}
