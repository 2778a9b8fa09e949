package model

// SCIM resource type names, referenced by the "meta.resourceType" attribute.
const (
	UserResource                  = "User"
	GroupResource                 = "Group"
	ResourceTypeResource          = "ResourceType"
	SchemaResource                = "Schema"
	ServiceProviderConfigResource = "ServiceProviderConfig"
)

// SCIM schema URNs (RFC 7643).
const (
	UserSchemaID           = "urn:ietf:params:scim:schemas:core:2.0:User"
	GroupSchemaID          = "urn:ietf:params:scim:schemas:core:2.0:Group"
	EnterpriseUserSchemaID = "urn:ietf:params:scim:schemas:extension:enterprise:2.0:User"

	ResourceTypeSchemaID          = "urn:ietf:params:scim:schemas:core:2.0:ResourceType"
	SchemaSchemaID                = "urn:ietf:params:scim:schemas:core:2.0:Schema"
	ServiceProviderConfigSchemaID = "urn:ietf:params:scim:schemas:core:2.0:ServiceProviderConfig"

	ErrorSchemaID = "urn:ietf:params:scim:api:messages:2.0:Error"
	ListSchemaID  = "urn:ietf:params:scim:api:messages:2.0:ListResponse"
)

// baseSchemaIDs maps resource type names to their base schema URN.
var baseSchemaIDs = map[string]string{
	UserResource:                  UserSchemaID,
	GroupResource:                 GroupSchemaID,
	ResourceTypeResource:          ResourceTypeSchemaID,
	SchemaResource:                SchemaSchemaID,
	ServiceProviderConfigResource: ServiceProviderConfigSchemaID,
}

// BaseSchemaID returns the base schema URN for a resource type name.
func BaseSchemaID(resourceType string) (string, bool) {
	id, ok := baseSchemaIDs[resourceType]
	return id, ok
}

// KindOf returns the resource type name declared by a document's schemas
// list, or "" when none of the entries is a known base schema URN.
func KindOf(schemas []string) string {
	for _, s := range schemas {
		switch s {
		case UserSchemaID:
			return UserResource
		case GroupSchemaID:
			return GroupResource
		case ResourceTypeSchemaID:
			return ResourceTypeResource
		case SchemaSchemaID:
			return SchemaResource
		case ServiceProviderConfigSchemaID:
			return ServiceProviderConfigResource
		}
	}

	return ""
}
