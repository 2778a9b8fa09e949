package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scimkit/scimkit/codec"
	"github.com/scimkit/scimkit/model"
)

func TestUnmarshalMinimalUser(t *testing.T) {
	assert := require.New(t)

	u, err := codec.UnmarshalUser([]byte(`{
		"schemas": ["urn:ietf:params:scim:schemas:core:2.0:User"],
		"userName": "jdoe@example.com"
	}`))
	assert.NoError(err)

	assert.Equal([]string{model.UserSchemaID}, u.Schemas)
	assert.Equal("jdoe@example.com", u.UserName)
	assert.Empty(u.ID)
	assert.Nil(u.Name)
	assert.Nil(u.Active)
	assert.Nil(u.Emails)
	assert.Nil(u.Meta)
	assert.Nil(u.EnterpriseUser)
	assert.Nil(u.Extensions)
}

func TestUnmarshalUserIgnoresUnknownPlainKeys(t *testing.T) {
	assert := require.New(t)

	u, err := codec.UnmarshalUser([]byte(`{
		"schemas": ["urn:ietf:params:scim:schemas:core:2.0:User"],
		"userName": "jdoe@example.com",
		"favoriteColor": "green"
	}`))
	assert.NoError(err)
	assert.Equal("jdoe@example.com", u.UserName)
	assert.Nil(u.Extensions)
}

func TestUnmarshalUserRetainsUnknownExtensions(t *testing.T) {
	assert := require.New(t)

	u, err := codec.UnmarshalUser([]byte(`{
		"schemas": ["urn:ietf:params:scim:schemas:core:2.0:User"],
		"userName": "jdoe@example.com",
		"urn:example:params:scim:schemas:extension:payroll:2.0:User": {"payrollId": "P-1138"}
	}`))
	assert.NoError(err)

	assert.Len(u.Extensions, 1)
	assert.Equal("P-1138", u.Extensions["urn:example:params:scim:schemas:extension:payroll:2.0:User"]["payrollId"])
}

// The deserializer merges the enterprise payload even when schemas does
// not declare it; flagging the inconsistency is the validator's job.
func TestUnmarshalUserMergesUndeclaredEnterpriseExtension(t *testing.T) {
	assert := require.New(t)

	u, err := codec.UnmarshalUser([]byte(`{
		"schemas": ["urn:ietf:params:scim:schemas:core:2.0:User"],
		"userName": "bjensen@example.com",
		"urn:ietf:params:scim:schemas:extension:enterprise:2.0:User": {"employeeNumber": "701984"}
	}`))
	assert.NoError(err)

	assert.NotNil(u.EnterpriseUser)
	assert.Equal("701984", u.EnterpriseUser.EmployeeNumber)
	assert.Nil(u.Extensions)
}

func TestUnmarshalUserAcceptsPassword(t *testing.T) {
	assert := require.New(t)

	u, err := codec.UnmarshalUser([]byte(`{
		"schemas": ["urn:ietf:params:scim:schemas:core:2.0:User"],
		"userName": "jdoe@example.com",
		"password": "t1meMa$heen"
	}`))
	assert.NoError(err)
	assert.Equal("t1meMa$heen", u.Password)
}

func TestUnmarshalInvalidJSON(t *testing.T) {
	assert := require.New(t)

	_, err := codec.UnmarshalUser([]byte(`{"schemas": [`))

	var desErr *codec.DeserializationError
	assert.ErrorAs(err, &desErr)
	assert.Equal(codec.CauseInvalidJSON, desErr.Cause)
}

func TestUnmarshalTopLevelArray(t *testing.T) {
	assert := require.New(t)

	_, err := codec.UnmarshalUser([]byte(`[{"userName": "jdoe@example.com"}]`))

	var desErr *codec.DeserializationError
	assert.ErrorAs(err, &desErr)
	assert.Equal(codec.CauseNotAnObject, desErr.Cause)
}

func TestUnmarshalMissingSchemas(t *testing.T) {
	assert := require.New(t)

	_, err := codec.UnmarshalUser([]byte(`{"userName": "jdoe@example.com"}`))

	var desErr *codec.DeserializationError
	assert.ErrorAs(err, &desErr)
	assert.Equal(codec.CauseMissingSchemas, desErr.Cause)
	assert.Equal("schemas", desErr.Path)
}

func TestUnmarshalFieldTypeMismatch(t *testing.T) {
	assert := require.New(t)

	_, err := codec.UnmarshalUser([]byte(`{
		"schemas": ["urn:ietf:params:scim:schemas:core:2.0:User"],
		"userName": "jdoe@example.com",
		"emails": "not-a-list"
	}`))

	var desErr *codec.DeserializationError
	assert.ErrorAs(err, &desErr)
	assert.Equal(codec.CauseTypeMismatch, desErr.Cause)
}

func TestKind(t *testing.T) {
	assert := require.New(t)

	kind, err := codec.Kind([]byte(`{"schemas": ["urn:ietf:params:scim:schemas:core:2.0:Group"], "displayName": "Tour Guides"}`))
	assert.NoError(err)
	assert.Equal(model.GroupResource, kind)

	kind, err = codec.Kind([]byte(`{"schemas": ["urn:example:unknown"]}`))
	assert.NoError(err)
	assert.Empty(kind)

	_, err = codec.Kind([]byte(`{"schemas": "urn:ietf:params:scim:schemas:core:2.0:User"}`))
	var desErr *codec.DeserializationError
	assert.ErrorAs(err, &desErr)
	assert.Equal(codec.CauseTypeMismatch, desErr.Cause)
	assert.Equal("schemas", desErr.Path)
}

func TestParseUser(t *testing.T) {
	assert := require.New(t)

	u, err := codec.ParseUser(map[string]any{
		"userName": "jdoe@example.com",
		"active":   true,
		"emails": []any{
			map[string]any{"value": "jdoe@example.com", "type": "work", "primary": true},
		},
		"urn:example:params:scim:schemas:extension:payroll:2.0:User": map[string]any{
			"payrollId": "P-1138",
		},
	})
	assert.NoError(err)

	assert.Equal("jdoe@example.com", u.UserName)
	assert.NotNil(u.Active)
	assert.True(*u.Active)
	assert.Len(u.Emails, 1)
	assert.True(u.Emails[0].Primary)
	assert.Len(u.Extensions, 1)
}

func TestParseUserEnterpriseByURNKey(t *testing.T) {
	assert := require.New(t)

	u, err := codec.ParseUser(map[string]any{
		"userName": "bjensen@example.com",
		model.EnterpriseUserSchemaID: map[string]any{
			"employeeNumber": "701984",
			"manager":        map[string]any{"value": "26118915", "displayName": "John Smith"},
		},
	})
	assert.NoError(err)

	assert.NotNil(u.EnterpriseUser)
	assert.Equal("701984", u.EnterpriseUser.EmployeeNumber)
	assert.NotNil(u.EnterpriseUser.Manager)
	assert.Equal("John Smith", u.EnterpriseUser.Manager.DisplayName)
	assert.Nil(u.Extensions)
}

func TestParseUserTypeMismatch(t *testing.T) {
	assert := require.New(t)

	_, err := codec.ParseUser(map[string]any{"userName": 42})

	var desErr *codec.DeserializationError
	assert.ErrorAs(err, &desErr)
	assert.Equal(codec.CauseTypeMismatch, desErr.Cause)
}

func TestParseUserNilDocument(t *testing.T) {
	assert := require.New(t)

	_, err := codec.ParseUser(nil)

	var desErr *codec.DeserializationError
	assert.ErrorAs(err, &desErr)
	assert.Equal(codec.CauseNotAnObject, desErr.Cause)
}

func TestParseGroup(t *testing.T) {
	assert := require.New(t)

	g, err := codec.ParseGroup(map[string]any{
		"displayName": "Tour Guides",
		"members": []any{
			map[string]any{"value": "2819c223", "type": "User"},
		},
	})
	assert.NoError(err)
	assert.Equal("Tour Guides", g.DisplayName)
	assert.Len(g.Members, 1)
	assert.Equal("User", g.Members[0].Type)
}

func TestParseServiceProviderConfigNumbers(t *testing.T) {
	assert := require.New(t)

	// Generic JSON decoding hands integers over as float64.
	spc, err := codec.ParseServiceProviderConfig(map[string]any{
		"bulk": map[string]any{
			"supported":      true,
			"maxOperations":  float64(1000),
			"maxPayloadSize": float64(1048576),
		},
	})
	assert.NoError(err)
	assert.True(spc.Bulk.Supported)
	assert.Equal(int64(1000), spc.Bulk.MaxOperations)
	assert.Equal(int64(1048576), spc.Bulk.MaxPayloadSize)
}
