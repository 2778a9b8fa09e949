package validate

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/scimkit/scimkit/model"
)

// ResourceType reports missing mandatory fields of a resource type
// discovery document.
func ResourceType(rt *model.ResourceType) Violations {
	var vs Violations

	vs = append(vs, checkSchemas(rt.Schemas, model.ResourceTypeSchemaID)...)
	vs = append(vs, checkRequired("name", rt.Name)...)
	vs = append(vs, checkRequired("endpoint", rt.Endpoint)...)
	vs = append(vs, checkRequired("schema", rt.Schema)...)

	for i, ext := range rt.SchemaExtensions {
		vs = append(vs, checkRequired(fmt.Sprintf("schemaExtensions[%d].schema", i), ext.Schema)...)
	}

	vs = append(vs, checkMeta(rt.Meta)...)

	return vs
}

// ServiceProviderConfig reports missing mandatory fields of a service
// provider configuration document.
func ServiceProviderConfig(spc *model.ServiceProviderConfig) Violations {
	var vs Violations

	vs = append(vs, checkSchemas(spc.Schemas, model.ServiceProviderConfigSchemaID)...)

	for i, scheme := range spc.AuthenticationSchemes {
		prefix := fmt.Sprintf("authenticationSchemes[%d].", i)
		vs = append(vs, checkRequired(prefix+"name", scheme.Name)...)
		vs = append(vs, checkRequired(prefix+model.WireName("Type"), scheme.Type)...)
		vs = append(vs, checkRequired(prefix+"description", scheme.Description)...)
	}

	vs = append(vs, checkMeta(spc.Meta)...)

	return vs
}

// Schema reports structural problems in a schema discovery document:
// missing mandatory fields and attribute metadata outside its canonical
// sets.
func Schema(s *model.Schema) Violations {
	var vs Violations

	vs = append(vs, checkSchemas(s.Schemas, model.SchemaSchemaID)...)
	vs = append(vs, checkRequired("id", s.ID)...)
	vs = append(vs, checkRequired("name", s.Name)...)

	for i, attr := range s.Attributes {
		prefix := fmt.Sprintf("attributes[%d].", i)

		vs = append(vs, checkRequired(prefix+"name", attr.Name)...)
		vs = append(vs, checkCanonical(prefix+model.WireName("Type"), attr.Type, attributeTypes, true)...)
		vs = append(vs, checkCanonical(prefix+"mutability", attr.Mutability, mutabilityTypes, false)...)
		vs = append(vs, checkCanonical(prefix+"returned", attr.Returned, returnedTypes, false)...)
		vs = append(vs, checkCanonical(prefix+"uniqueness", attr.Uniqueness, uniquenessTypes, false)...)

		for j, sub := range attr.SubAttributes {
			subPrefix := fmt.Sprintf("%ssubAttributes[%d].", prefix, j)

			vs = append(vs, checkRequired(subPrefix+"name", sub.Name)...)
			vs = append(vs, checkCanonical(subPrefix+model.WireName("Type"), sub.Type, attributeTypes, true)...)
			vs = append(vs, checkCanonical(subPrefix+"mutability", sub.Mutability, mutabilityTypes, false)...)
			vs = append(vs, checkCanonical(subPrefix+"returned", sub.Returned, returnedTypes, false)...)
			vs = append(vs, checkCanonical(subPrefix+"uniqueness", sub.Uniqueness, uniquenessTypes, false)...)
		}
	}

	vs = append(vs, checkMeta(s.Meta)...)

	return vs
}

func checkCanonical(path, value string, allowed []string, required bool) Violations {
	if value == "" {
		if required {
			return Violations{{Path: path, Rule: RuleRequired}}
		}

		return nil
	}

	if lo.Contains(allowed, value) {
		return nil
	}

	return Violations{{Path: path, Rule: RuleCanonicalValue, Value: value, Allowed: allowed}}
}
