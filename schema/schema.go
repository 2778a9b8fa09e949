// Package schema builds the discovery Schema documents for the schemas
// this module models: the core User and Group schemas and the enterprise
// User extension.
package schema

import (
	"github.com/pkg/errors"

	"github.com/scimkit/scimkit/model"
)

// ErrSchemaNotFound is returned by Lookup for unknown schema names.
var ErrSchemaNotFound = errors.New("schema not found")

// Lookup resolves a discovery document by schema URN or by short name
// ("User", "Group", "EnterpriseUser").
func Lookup(name string) (*model.Schema, error) {
	switch name {
	case model.UserSchemaID, model.UserResource:
		return CoreUserSchema(), nil
	case model.GroupSchemaID, model.GroupResource:
		return CoreGroupSchema(), nil
	case model.EnterpriseUserSchemaID, "EnterpriseUser":
		return ExtensionEnterpriseUser(), nil
	default:
		return nil, errors.Wrap(ErrSchemaNotFound, name)
	}
}

// All returns every discovery document this module ships.
func All() []*model.Schema {
	return []*model.Schema{
		CoreUserSchema(),
		CoreGroupSchema(),
		ExtensionEnterpriseUser(),
	}
}

// CoreUserSchema is the discovery document for the core User schema.
func CoreUserSchema() *model.Schema {
	return &model.Schema{
		Schemas:     []string{model.SchemaSchemaID},
		ID:          model.UserSchemaID,
		Name:        model.UserResource,
		Description: "User Account",
		Attributes: []model.Attribute{
			{
				Name:        "userName",
				Type:        "string",
				Description: "Unique identifier for the User, typically used by the user to directly authenticate to the service provider.",
				Required:    true,
				Mutability:  "readWrite",
				Returned:    "default",
				Uniqueness:  "server",
			},
			{
				Name:        "name",
				Type:        "complex",
				Description: "The components of the user's real name.",
				Mutability:  "readWrite",
				Returned:    "default",
				SubAttributes: []model.SubAttribute{
					{Name: "formatted", Type: "string", Mutability: "readWrite", Returned: "default"},
					{Name: "familyName", Type: "string", Mutability: "readWrite", Returned: "default"},
					{Name: "givenName", Type: "string", Mutability: "readWrite", Returned: "default"},
					{Name: "middleName", Type: "string", Mutability: "readWrite", Returned: "default"},
					{Name: "honorificPrefix", Type: "string", Mutability: "readWrite", Returned: "default"},
					{Name: "honorificSuffix", Type: "string", Mutability: "readWrite", Returned: "default"},
				},
			},
			{Name: "displayName", Type: "string", Mutability: "readWrite", Returned: "default"},
			{Name: "nickName", Type: "string", Mutability: "readWrite", Returned: "default"},
			{Name: "profileUrl", Type: "reference", ReferenceTypes: []string{"external"}, Mutability: "readWrite", Returned: "default"},
			{Name: "title", Type: "string", Mutability: "readWrite", Returned: "default"},
			{Name: "userType", Type: "string", Mutability: "readWrite", Returned: "default"},
			{Name: "preferredLanguage", Type: "string", Mutability: "readWrite", Returned: "default"},
			{Name: "locale", Type: "string", Mutability: "readWrite", Returned: "default"},
			{Name: "timezone", Type: "string", Mutability: "readWrite", Returned: "default"},
			{Name: "active", Type: "boolean", Mutability: "readWrite", Returned: "default"},
			{
				Name:        "password",
				Type:        "string",
				Description: "The User's cleartext password, used when setting or replacing it.",
				Mutability:  "writeOnly",
				Returned:    "never",
			},
			multiValued("emails", "Email addresses for the user.", []string{"work", "home", "other"}),
			multiValued("phoneNumbers", "Phone numbers for the user.", []string{"work", "home", "mobile", "fax", "pager", "other"}),
			multiValued("ims", "Instant messaging addresses for the user.", []string{"aim", "gtalk", "icq", "xmpp", "msn", "skype", "qq", "yahoo"}),
			multiValued("photos", "URLs of photos of the user.", []string{"photo", "thumbnail"}),
			{
				Name:        "addresses",
				Type:        "complex",
				MultiValued: true,
				Description: "A physical mailing address for the user.",
				Mutability:  "readWrite",
				Returned:    "default",
				SubAttributes: []model.SubAttribute{
					{Name: "formatted", Type: "string", Mutability: "readWrite", Returned: "default"},
					{Name: "streetAddress", Type: "string", Mutability: "readWrite", Returned: "default"},
					{Name: "locality", Type: "string", Mutability: "readWrite", Returned: "default"},
					{Name: "region", Type: "string", Mutability: "readWrite", Returned: "default"},
					{Name: "postalCode", Type: "string", Mutability: "readWrite", Returned: "default"},
					{Name: "country", Type: "string", Mutability: "readWrite", Returned: "default"},
					{Name: "type", Type: "string", CanonicalValues: []string{"work", "home", "other"}, Mutability: "readWrite", Returned: "default"},
				},
			},
			{
				Name:        "groups",
				Type:        "complex",
				MultiValued: true,
				Description: "A list of groups to which the user belongs.",
				Mutability:  "readOnly",
				Returned:    "default",
				SubAttributes: []model.SubAttribute{
					{Name: "value", Type: "string", Mutability: "readOnly", Returned: "default"},
					{Name: "$ref", Type: "reference", ReferenceTypes: []string{"User", "Group"}, Mutability: "readOnly", Returned: "default"},
					{Name: "display", Type: "string", Mutability: "readOnly", Returned: "default"},
					{Name: "type", Type: "string", CanonicalValues: []string{"direct", "indirect"}, Mutability: "readOnly", Returned: "default"},
				},
			},
			multiValued("entitlements", "A list of entitlements for the user.", nil),
			multiValued("roles", "A list of roles for the user.", nil),
			multiValued("x509Certificates", "A list of certificates issued to the user.", nil),
		},
		Meta: &model.Meta{ResourceType: model.SchemaResource},
	}
}

// CoreGroupSchema is the discovery document for the core Group schema.
func CoreGroupSchema() *model.Schema {
	return &model.Schema{
		Schemas:     []string{model.SchemaSchemaID},
		ID:          model.GroupSchemaID,
		Name:        model.GroupResource,
		Description: "Group",
		Attributes: []model.Attribute{
			{
				Name:        "displayName",
				Type:        "string",
				Description: "A human-readable name for the Group.",
				Required:    true,
				Mutability:  "readWrite",
				Returned:    "default",
			},
			{
				Name:        "members",
				Type:        "complex",
				MultiValued: true,
				Description: "A list of members of the Group.",
				Mutability:  "readWrite",
				Returned:    "default",
				SubAttributes: []model.SubAttribute{
					{Name: "value", Type: "string", Mutability: "immutable", Returned: "default"},
					{Name: "$ref", Type: "reference", ReferenceTypes: []string{"User", "Group"}, Mutability: "immutable", Returned: "default"},
					{Name: "display", Type: "string", Mutability: "immutable", Returned: "default"},
					{Name: "type", Type: "string", CanonicalValues: []string{"User", "Group"}, Mutability: "immutable", Returned: "default"},
				},
			},
		},
		Meta: &model.Meta{ResourceType: model.SchemaResource},
	}
}

// ExtensionEnterpriseUser is the discovery document for the enterprise
// User extension schema.
func ExtensionEnterpriseUser() *model.Schema {
	return &model.Schema{
		Schemas:     []string{model.SchemaSchemaID},
		ID:          model.EnterpriseUserSchemaID,
		Name:        "EnterpriseUser",
		Description: "Enterprise User",
		Attributes: []model.Attribute{
			{Name: "employeeNumber", Type: "string", Mutability: "readWrite", Returned: "default"},
			{Name: "costCenter", Type: "string", Mutability: "readWrite", Returned: "default"},
			{Name: "organization", Type: "string", Mutability: "readWrite", Returned: "default"},
			{Name: "division", Type: "string", Mutability: "readWrite", Returned: "default"},
			{Name: "department", Type: "string", Mutability: "readWrite", Returned: "default"},
			{
				Name:        "manager",
				Type:        "complex",
				Description: "The user's manager.",
				Mutability:  "readWrite",
				Returned:    "default",
				SubAttributes: []model.SubAttribute{
					{Name: "value", Type: "string", Mutability: "readWrite", Returned: "default"},
					{Name: "$ref", Type: "reference", ReferenceTypes: []string{"User"}, Mutability: "readWrite", Returned: "default"},
					{Name: "displayName", Type: "string", Mutability: "readOnly", Returned: "default"},
				},
			},
		},
		Meta: &model.Meta{ResourceType: model.SchemaResource},
	}
}

// multiValued builds the standard value/display/type/primary multi-valued
// complex attribute shape.
func multiValued(name, description string, canonicalTypes []string) model.Attribute {
	return model.Attribute{
		Name:        name,
		Type:        "complex",
		MultiValued: true,
		Description: description,
		Mutability:  "readWrite",
		Returned:    "default",
		SubAttributes: []model.SubAttribute{
			{Name: "value", Type: "string", Mutability: "readWrite", Returned: "default"},
			{Name: "display", Type: "string", Mutability: "readWrite", Returned: "default"},
			{Name: "type", Type: "string", CanonicalValues: canonicalTypes, Mutability: "readWrite", Returned: "default"},
			{Name: "primary", Type: "boolean", Mutability: "readWrite", Returned: "default"},
		},
	}
}
