package validate

import "github.com/scimkit/scimkit/model"

// Group reports every structural rule the group breaks.
func Group(g *model.Group) Violations {
	var vs Violations

	vs = append(vs, checkSchemas(g.Schemas, model.GroupSchemaID)...)
	vs = append(vs, checkRequired("displayName", g.DisplayName)...)

	vs = append(vs, checkMultiValued("members", g.Members, groupMemberTypes,
		func(m model.GroupMember) string { return m.Type },
		nil)...)

	vs = append(vs, checkMeta(g.Meta)...)

	return vs
}
