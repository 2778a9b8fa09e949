// Package validate checks SCIM resources against the structural rules of
// RFC 7643. Each check inspects a fully-typed resource and reports every
// violation it finds; nothing here repairs, aborts early, or touches the
// input. The result is advisory and callers decide whether to reject.
package validate

import (
	"fmt"
	"strings"
)

// Rules a violation can report.
const (
	RuleRequired          = "required"
	RuleCanonicalValue    = "canonical_value"
	RulePrimaryUniqueness = "primary_uniqueness"
	RuleSchemaConsistency = "schema_consistency"
	RuleFormat            = "format"
)

// Violation is one broken rule on one attribute.
type Violation struct {
	// Path is the attribute in wire naming, e.g. "emails[1].type".
	Path string
	// Rule is one of the Rule* constants.
	Rule string
	// Value is the offending value, when the rule has one.
	Value string
	// Allowed is the canonical set for canonical-value rules.
	Allowed []string
}

func (v Violation) String() string {
	switch v.Rule {
	case RuleRequired:
		return fmt.Sprintf("%s: required attribute is missing or empty", v.Path)
	case RuleCanonicalValue:
		return fmt.Sprintf("%s: value %q is not one of [%s]", v.Path, v.Value, strings.Join(v.Allowed, ", "))
	case RulePrimaryUniqueness:
		return fmt.Sprintf("%s: more than one entry is marked primary", v.Path)
	case RuleSchemaConsistency:
		return fmt.Sprintf("%s: %s", v.Path, v.Value)
	case RuleFormat:
		return fmt.Sprintf("%s: value %q is not well-formed", v.Path, v.Value)
	default:
		return fmt.Sprintf("%s: %s", v.Path, v.Rule)
	}
}

// Violations is the aggregate result of a validation pass. An empty or
// nil collection means the resource is valid.
type Violations []Violation

// Error summarizes the first few violations, so a collection can travel
// as an error when a caller wants to treat invalid as failure.
func (vs Violations) Error() string {
	if len(vs) == 0 {
		return ""
	}

	const maxShown = 3

	shown := make([]string, 0, maxShown)
	for i, v := range vs {
		if i == maxShown {
			break
		}
		shown = append(shown, v.String())
	}

	msg := strings.Join(shown, "; ")
	if len(vs) > maxShown {
		msg += fmt.Sprintf("; ... (total %d)", len(vs))
	}

	return msg
}

// Valid reports whether no rule was broken.
func (vs Violations) Valid() bool { return len(vs) == 0 }
