package model

// ServiceProviderConfig is the discovery document describing a
// deployment's protocol features.
type ServiceProviderConfig struct {
	Schemas               []string               `json:"schemas"`
	DocumentationURI      string                 `json:"documentationUri,omitempty"`
	Patch                 Supported              `json:"patch"`
	Bulk                  Bulk                   `json:"bulk"`
	Filter                Filter                 `json:"filter"`
	ChangePassword        Supported              `json:"changePassword"`
	Sort                  Supported              `json:"sort"`
	Etag                  Supported              `json:"etag"`
	AuthenticationSchemes []AuthenticationScheme `json:"authenticationSchemes"`
	Meta                  *Meta                  `json:"meta,omitempty"`
}

// NewServiceProviderConfig returns a config with the base schema URN
// declared and every feature flagged unsupported.
func NewServiceProviderConfig() *ServiceProviderConfig {
	return &ServiceProviderConfig{
		Schemas:               []string{ServiceProviderConfigSchemaID},
		Bulk:                  Bulk{MaxOperations: 1000, MaxPayloadSize: 1048576},
		Filter:                Filter{MaxResults: 100},
		AuthenticationSchemes: []AuthenticationScheme{},
	}
}

// Supported is the single-flag complex attribute shared by patch,
// changePassword, sort, and etag.
type Supported struct {
	Supported bool `json:"supported"`
}

// Bulk describes bulk-operation support.
type Bulk struct {
	Supported      bool  `json:"supported"`
	MaxOperations  int64 `json:"maxOperations"`
	MaxPayloadSize int64 `json:"maxPayloadSize"`
}

// Filter describes filter support.
type Filter struct {
	Supported  bool  `json:"supported"`
	MaxResults int64 `json:"maxResults"`
}

// AuthenticationScheme describes one supported authentication mechanism.
type AuthenticationScheme struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	Description      string `json:"description"`
	SpecURI          string `json:"specUri,omitempty"`
	DocumentationURI string `json:"documentationUri,omitempty"`
	Primary          bool   `json:"primary,omitempty"`
}
