package model

// Group is the SCIM core Group resource.
type Group struct {
	Schemas     []string      `json:"schemas"`
	ID          string        `json:"id,omitempty"`
	ExternalID  string        `json:"externalId,omitempty"`
	DisplayName string        `json:"displayName,omitempty"`
	Members     []GroupMember `json:"members,omitempty"`
	Meta        *Meta         `json:"meta,omitempty"`
}

// NewGroup returns a Group with the base schema URN declared.
func NewGroup() *Group {
	return &Group{Schemas: []string{GroupSchemaID}}
}

// GroupMember is one entry of the members list. Type is either "User" or
// "Group".
type GroupMember struct {
	Value   string `json:"value,omitempty"`
	Ref     string `json:"$ref,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
}
