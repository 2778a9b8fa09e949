// Package model defines typed representations of the SCIM 2.0 resources
// (RFC 7643): User with the enterprise extension, Group, and the discovery
// documents ResourceType, Schema, and ServiceProviderConfig.
//
// All types are plain value objects. Construct them directly or with the
// New* helpers, which pre-populate the schemas list with the resource's
// base URN. Validation lives in the validate package and wire encoding in
// the codec package; nothing here performs I/O or holds shared state.
package model

// Meta is the common resource metadata complex attribute.
//
// Timestamps are kept as their RFC 3339 wire strings rather than
// time.Time so that a document round-trips byte for byte; the validate
// package checks that they parse.
type Meta struct {
	// ResourceType is the name of the resource type of the resource.
	ResourceType string `json:"resourceType,omitempty"`
	// Created is the DateTime the resource was added to the service provider.
	Created string `json:"created,omitempty"`
	// LastModified is the most recent DateTime the resource was updated.
	// If the resource was never modified it equals Created.
	LastModified string `json:"lastModified,omitempty"`
	// Location is the URI of the resource being returned.
	Location string `json:"location,omitempty"`
	// Version is the resource version, the same value as the ETag header.
	Version string `json:"version,omitempty"`
}

// IsZero reports whether no metadata sub-field is populated.
func (m *Meta) IsZero() bool {
	return m == nil || *m == Meta{}
}
