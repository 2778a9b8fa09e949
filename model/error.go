package model

import "strconv"

// Error is the SCIM error response envelope
// (urn:ietf:params:scim:api:messages:2.0:Error).
type Error struct {
	Schemas  []string `json:"schemas"`
	ScimType string   `json:"scimType,omitempty"`
	Detail   string   `json:"detail,omitempty"`
	Status   string   `json:"status"`
}

// NewError returns an error envelope for an HTTP status code. The status
// is carried as a JSON string, as the standard requires.
func NewError(status int, detail string) *Error {
	return &Error{
		Schemas: []string{ErrorSchemaID},
		Detail:  detail,
		Status:  strconv.Itoa(status),
	}
}

// ListResponse is the list response envelope
// (urn:ietf:params:scim:api:messages:2.0:ListResponse). Query and
// pagination semantics are out of scope; the envelope exists so list
// bodies share the resource codec.
type ListResponse struct {
	Schemas      []string `json:"schemas"`
	TotalResults int      `json:"totalResults"`
	ItemsPerPage int      `json:"itemsPerPage,omitempty"`
	StartIndex   int      `json:"startIndex,omitempty"`
	Resources    []any    `json:"Resources,omitempty"`
}

// NewListResponse returns a list envelope for the given resources.
func NewListResponse(resources ...any) *ListResponse {
	lr := &ListResponse{
		Schemas:      []string{ListSchemaID},
		TotalResults: len(resources),
		ItemsPerPage: len(resources),
		Resources:    resources,
	}
	if lr.TotalResults > 0 {
		lr.StartIndex = 1
	}

	return lr
}
