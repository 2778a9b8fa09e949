package validate

import (
	"fmt"
	"net/url"
	"time"

	"github.com/samber/lo"

	"github.com/scimkit/scimkit/model"
)

// checkMultiValued runs the shared rules for one multi-valued complex
// attribute: canonical type membership per entry and at most one entry
// marked primary. A nil allowed set means the type sub-attribute is free.
func checkMultiValued[T any](path string, entries []T, allowed []string, typeOf func(T) string, primaryOf func(T) bool) Violations {
	var vs Violations

	if allowed != nil {
		for i, entry := range entries {
			t := typeOf(entry)
			if t == "" || lo.Contains(allowed, t) {
				continue
			}

			vs = append(vs, Violation{
				Path:    fmt.Sprintf("%s[%d].%s", path, i, model.WireName("Type")),
				Rule:    RuleCanonicalValue,
				Value:   t,
				Allowed: allowed,
			})
		}
	}

	if primaryOf != nil && lo.CountBy(entries, primaryOf) > 1 {
		vs = append(vs, Violation{Path: path, Rule: RulePrimaryUniqueness})
	}

	return vs
}

func checkRequired(path, value string) Violations {
	if value != "" {
		return nil
	}

	return Violations{{Path: path, Rule: RuleRequired}}
}

// checkSchemas verifies the schemas list is present and declares the
// resource's own base URN.
func checkSchemas(schemas []string, baseID string) Violations {
	if len(schemas) == 0 {
		return Violations{{Path: "schemas", Rule: RuleRequired}}
	}

	if !lo.Contains(schemas, baseID) {
		return Violations{{
			Path:  "schemas",
			Rule:  RuleSchemaConsistency,
			Value: fmt.Sprintf("base schema %q is not declared", baseID),
		}}
	}

	return nil
}

// checkMeta verifies the well-formedness of populated metadata
// sub-fields: RFC 3339 timestamps, a parseable location URI, and a known
// resource type name.
func checkMeta(m *model.Meta) Violations {
	if m.IsZero() {
		return nil
	}

	var vs Violations

	checkTimestamp := func(field, value string) {
		if value == "" {
			return
		}
		if _, err := time.Parse(time.RFC3339, value); err != nil {
			vs = append(vs, Violation{Path: "meta." + field, Rule: RuleFormat, Value: value})
		}
	}
	checkTimestamp("created", m.Created)
	checkTimestamp("lastModified", m.LastModified)

	if m.Location != "" {
		if _, err := url.Parse(m.Location); err != nil {
			vs = append(vs, Violation{Path: "meta.location", Rule: RuleFormat, Value: m.Location})
		}
	}

	if m.ResourceType != "" {
		if _, ok := model.BaseSchemaID(m.ResourceType); !ok {
			vs = append(vs, Violation{
				Path:    "meta.resourceType",
				Rule:    RuleCanonicalValue,
				Value:   m.ResourceType,
				Allowed: knownResourceTypes(),
			})
		}
	}

	return vs
}

func knownResourceTypes() []string {
	return []string{
		model.UserResource,
		model.GroupResource,
		model.ResourceTypeResource,
		model.SchemaResource,
		model.ServiceProviderConfigResource,
	}
}
