package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ludwa6/customer-support/internal/core/domain"
)

// Validate checks a discovered database against the contract for an entity
// type. The result is deterministic: the same inputs always produce the
// same messages in the same order, so repeated validation passes can be
// compared verbatim.
func Validate(db domain.DiscoveredDatabase, entityType domain.EntityType) domain.ValidationResult {
	var result domain.ValidationResult

	spec, ok := SpecFor(entityType)
	if !ok {
		result.Errors = append(result.Errors,
			fmt.Sprintf("no schema defined for entity type %q", entityType))
		return result
	}

	requiredByType := make(map[domain.PropertyType][]PropertySpec)
	for _, p := range spec.Properties {
		if p.Required {
			requiredByType[p.Type] = append(requiredByType[p.Type], p)
		}
	}

	actualByType := make(map[domain.PropertyType][]string)
	actualNames := make([]string, 0, len(db.Properties))
	for name := range db.Properties {
		actualNames = append(actualNames, name)
	}
	sort.Strings(actualNames)
	for _, name := range actualNames {
		t := db.Properties[name]
		actualByType[t] = append(actualByType[t], name)
	}

	// consumed tracks database properties that satisfied a required field,
	// so a lenient match is not re-reported as an extra property.
	consumed := make(map[string]bool)

	for _, pt := range domain.KnownPropertyTypes() {
		required := requiredByType[pt]
		if len(required) == 0 {
			continue
		}

		if len(actualByType[pt]) == 0 {
			names := make([]string, len(required))
			for i, p := range required {
				names[i] = p.Name
			}
			result.Errors = append(result.Errors,
				fmt.Sprintf("no %s property found (required: %s)", pt, strings.Join(names, ", ")))
			result.Missing = append(result.Missing, names...)
			continue
		}

		for _, p := range required {
			if spec.Lenient {
				matched, ok := matchSynonym(actualByType[pt], p)
				if !ok {
					result.Errors = append(result.Errors,
						fmt.Sprintf("no %s property matching %q (accepted: %s)",
							pt, p.Name, strings.Join(p.Synonyms, ", ")))
					result.Missing = append(result.Missing, p.Name)
					continue
				}
				consumed[matched] = true
				result.Present = append(result.Present, p.Name)
				continue
			}

			if _, ok := db.Properties[p.Name]; !ok {
				result.Errors = append(result.Errors,
					fmt.Sprintf("missing required property %q (%s)", p.Name, pt))
				result.Missing = append(result.Missing, p.Name)
				continue
			}
			consumed[p.Name] = true
			result.Present = append(result.Present, p.Name)
		}
	}

	// Type-check every spec property that exists under its exact name.
	for _, p := range spec.Properties {
		actualType, ok := db.Properties[p.Name]
		if !ok {
			continue
		}
		consumed[p.Name] = true
		if actualType != p.Type {
			result.IncorrectType = append(result.IncorrectType, p.Name)
			result.Errors = append(result.Errors,
				fmt.Sprintf("property %q has type %s, expected %s", p.Name, actualType, p.Type))
		}
	}

	// Compare select option sets. Missing options are recoverable drift:
	// the workspace owner can add them, and writes still work for the
	// options that do exist. Properties with SuppressOptionWarnings opt
	// out entirely; today that is only the ticket Status, whose workflow
	// options are customised in nearly every workspace.
	for _, p := range spec.Properties {
		if p.Type != domain.PropertySelect || len(p.ExpectedOptions) == 0 || p.SuppressOptionWarnings {
			continue
		}
		if db.Properties[p.Name] != domain.PropertySelect {
			continue
		}
		have := make(map[string]bool, len(db.SelectOptions[p.Name]))
		for _, opt := range db.SelectOptions[p.Name] {
			have[opt] = true
		}
		for _, opt := range p.ExpectedOptions {
			if !have[opt] {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("select property %q is missing option %q", p.Name, opt))
			}
		}
	}

	var extras []string
	for _, name := range actualNames {
		if !consumed[name] {
			extras = append(extras, name)
		}
	}
	if len(extras) > 0 {
		result.Warnings = append(result.Warnings,
			"extra properties not used by the portal: "+strings.Join(extras, ", "))
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// matchSynonym finds the first candidate (in sorted order) whose lowercased
// name contains one of the contract's accepted substrings.
func matchSynonym(candidates []string, p PropertySpec) (string, bool) {
	for _, name := range candidates {
		lower := strings.ToLower(name)
		for _, syn := range p.Synonyms {
			if strings.Contains(lower, syn) {
				return name, true
			}
		}
	}
	return "", false
}
