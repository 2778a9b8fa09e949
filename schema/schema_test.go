package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scimkit/scimkit/codec"
	"github.com/scimkit/scimkit/model"
	"github.com/scimkit/scimkit/schema"
	"github.com/scimkit/scimkit/validate"
)

func TestLookup(t *testing.T) {
	assert := require.New(t)

	byURN, err := schema.Lookup(model.UserSchemaID)
	assert.NoError(err)

	byName, err := schema.Lookup(model.UserResource)
	assert.NoError(err)
	assert.Equal(byURN, byName)

	_, err = schema.Lookup("urn:example:unknown")
	assert.ErrorIs(err, schema.ErrSchemaNotFound)
}

// The shipped discovery documents must pass their own validator.
func TestBuiltInSchemasAreValid(t *testing.T) {
	assert := require.New(t)

	for _, s := range schema.All() {
		assert.Emptyf(validate.Schema(s), "schema %s", s.ID)
	}
}

func TestCoreUserSchemaShape(t *testing.T) {
	assert := require.New(t)

	s := schema.CoreUserSchema()
	assert.Equal(model.UserSchemaID, s.ID)

	attrs := map[string]model.Attribute{}
	for _, a := range s.Attributes {
		attrs[a.Name] = a
	}

	assert.True(attrs["userName"].Required)
	assert.Equal("server", attrs["userName"].Uniqueness)

	assert.Equal("writeOnly", attrs["password"].Mutability)
	assert.Equal("never", attrs["password"].Returned)

	assert.True(attrs["emails"].MultiValued)
	assert.Equal("readOnly", attrs["groups"].Mutability)

	subTypes := map[string][]string{}
	for _, sub := range attrs["emails"].SubAttributes {
		subTypes[sub.Name] = sub.CanonicalValues
	}
	assert.Equal([]string{"work", "home", "other"}, subTypes["type"])
}

func TestSchemaDocumentsRoundTrip(t *testing.T) {
	assert := require.New(t)

	for _, in := range schema.All() {
		data, err := codec.Marshal(in)
		assert.NoError(err)

		out, err := codec.UnmarshalSchema(data)
		assert.NoError(err)
		assert.Equal(in, out)
	}
}
