package model_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scimkit/scimkit/model"
)

func TestWireName(t *testing.T) {
	assert := require.New(t)

	assert.Equal("type", model.WireName("Type"))
	assert.Equal("$ref", model.WireName("Ref"))
	assert.Equal("userName", model.WireName("UserName"))
	assert.Equal("displayName", model.WireName("DisplayName"))
	assert.Equal("", model.WireName(""))
}

// Every struct field named after a reserved wire name must carry a json
// tag that agrees with the table; the codec trusts the tags.
func TestReservedWireNamesMatchTags(t *testing.T) {
	assert := require.New(t)

	types := []any{
		model.UserEmail{},
		model.UserPhoneNumber{},
		model.UserIm{},
		model.UserPhoto{},
		model.UserAddress{},
		model.UserGroup{},
		model.UserEntitlement{},
		model.UserRole{},
		model.UserX509Certificate{},
		model.GroupMember{},
		model.Manager{},
		model.AuthenticationScheme{},
		model.Attribute{},
		model.SubAttribute{},
	}

	for _, v := range types {
		rt := reflect.TypeOf(v)
		for i := 0; i < rt.NumField(); i++ {
			field := rt.Field(i)

			wire, reserved := model.ReservedWireNames[field.Name]
			if !reserved {
				continue
			}

			tagName, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			assert.Equalf(wire, tagName, "%s.%s", rt.Name(), field.Name)
		}
	}
}

func TestWireKeys(t *testing.T) {
	assert := require.New(t)

	keys := model.WireKeys(model.User{})

	assert.True(keys["schemas"])
	assert.True(keys["userName"])
	assert.True(keys["x509Certificates"])
	assert.True(keys[model.EnterpriseUserSchemaID])

	// Extensions is codec-internal state, not a wire attribute.
	assert.False(keys["Extensions"])
	assert.False(keys["extensions"])
}

func TestIsSchemaURN(t *testing.T) {
	assert := require.New(t)

	assert.True(model.IsSchemaURN(model.EnterpriseUserSchemaID))
	assert.True(model.IsSchemaURN("urn:example:params:custom:2.0:Thing"))
	assert.False(model.IsSchemaURN("userName"))
}
