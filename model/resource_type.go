package model

import "github.com/pkg/errors"

// ErrResourceTypeNotFound is returned by LookupResourceType for unknown names.
var ErrResourceTypeNotFound = errors.New("resource type not found")

// ResourceType is the discovery document describing one resource kind a
// deployment supports.
type ResourceType struct {
	Schemas          []string          `json:"schemas"`
	ID               string            `json:"id,omitempty"`
	Name             string            `json:"name,omitempty"`
	Description      string            `json:"description,omitempty"`
	Endpoint         string            `json:"endpoint,omitempty"`
	Schema           string            `json:"schema,omitempty"`
	SchemaExtensions []SchemaExtension `json:"schemaExtensions,omitempty"`
	Meta             *Meta             `json:"meta,omitempty"`
}

// SchemaExtension declares an extension schema a resource type supports.
type SchemaExtension struct {
	Schema   string `json:"schema"`
	Required bool   `json:"required"`
}

// NewResourceType returns a ResourceType with the base schema URN declared.
func NewResourceType() *ResourceType {
	return &ResourceType{Schemas: []string{ResourceTypeSchemaID}}
}

// UserResourceType is the built-in discovery document for /Users. When
// withEnterprise is set it declares the enterprise extension.
func UserResourceType(withEnterprise bool) *ResourceType {
	rt := &ResourceType{
		Schemas:     []string{ResourceTypeSchemaID},
		ID:          UserResource,
		Name:        UserResource,
		Description: "User Account",
		Endpoint:    "/Users",
		Schema:      UserSchemaID,
		Meta:        &Meta{ResourceType: ResourceTypeResource},
	}
	if withEnterprise {
		rt.SchemaExtensions = []SchemaExtension{
			{Schema: EnterpriseUserSchemaID, Required: false},
		}
	}

	return rt
}

// GroupResourceType is the built-in discovery document for /Groups.
func GroupResourceType() *ResourceType {
	return &ResourceType{
		Schemas:     []string{ResourceTypeSchemaID},
		ID:          GroupResource,
		Name:        GroupResource,
		Description: "Group",
		Endpoint:    "/Groups",
		Schema:      GroupSchemaID,
		Meta:        &Meta{ResourceType: ResourceTypeResource},
	}
}

// LookupResourceType resolves a built-in resource type by name.
func LookupResourceType(name string) (*ResourceType, error) {
	switch name {
	case UserResource:
		return UserResourceType(true), nil
	case GroupResource:
		return GroupResourceType(), nil
	default:
		return nil, errors.Wrap(ErrResourceTypeNotFound, name)
	}
}
