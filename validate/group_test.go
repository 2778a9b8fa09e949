package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scimkit/scimkit/model"
	"github.com/scimkit/scimkit/validate"
)

func validGroup() *model.Group {
	g := model.NewGroup()
	g.DisplayName = "Tour Guides"
	g.Members = []model.GroupMember{
		{Value: "2819c223", Display: "Babs Jensen", Type: "User"},
		{Value: "e9e30dba", Display: "Assistants", Type: "Group"},
	}

	return g
}

func TestValidGroupHasNoViolations(t *testing.T) {
	assert := require.New(t)

	assert.Empty(validate.Group(validGroup()))
}

func TestGroupRequiresDisplayName(t *testing.T) {
	assert := require.New(t)

	g := validGroup()
	g.DisplayName = ""

	vs := validate.Group(g)
	assert.Len(vs, 1)
	assert.Equal("displayName", vs[0].Path)
	assert.Equal(validate.RuleRequired, vs[0].Rule)
}

func TestGroupMemberTypeCanonical(t *testing.T) {
	assert := require.New(t)

	g := validGroup()
	g.Members[1].Type = "Robot"

	vs := validate.Group(g)
	assert.Len(vs, 1)
	assert.Equal("members[1].type", vs[0].Path)
	assert.Equal(validate.RuleCanonicalValue, vs[0].Rule)
	assert.Equal("Robot", vs[0].Value)
	assert.Equal([]string{"User", "Group"}, vs[0].Allowed)
}

func TestGroupSchemasRequired(t *testing.T) {
	assert := require.New(t)

	g := validGroup()
	g.Schemas = nil

	vs := validate.Group(g)
	assert.Len(vs, 1)
	assert.Equal("schemas", vs[0].Path)
	assert.Equal(validate.RuleRequired, vs[0].Rule)
}

func TestGroupMetaChecked(t *testing.T) {
	assert := require.New(t)

	g := validGroup()
	g.Meta = &model.Meta{LastModified: "not-a-timestamp"}

	vs := validate.Group(g)
	assert.Len(vs, 1)
	assert.Equal("meta.lastModified", vs[0].Path)
	assert.Equal(validate.RuleFormat, vs[0].Rule)
}
