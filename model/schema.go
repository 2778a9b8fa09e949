package model

// Schema is the discovery document describing the attributes of one
// schema URN. The schema package builds the documents for the core User,
// core Group, and enterprise extension schemas.
type Schema struct {
	Schemas     []string    `json:"schemas"`
	ID          string      `json:"id,omitempty"`
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
	Meta        *Meta       `json:"meta,omitempty"`
}

// NewSchema returns a Schema with the base schema URN declared.
func NewSchema() *Schema {
	return &Schema{Schemas: []string{SchemaSchemaID}}
}

// Attribute describes one attribute of a schema.
type Attribute struct {
	Name            string         `json:"name"`
	Type            string         `json:"type"`
	MultiValued     bool           `json:"multiValued"`
	Description     string         `json:"description,omitempty"`
	Required        bool           `json:"required,omitempty"`
	CanonicalValues []string       `json:"canonicalValues,omitempty"`
	CaseExact       bool           `json:"caseExact,omitempty"`
	Mutability      string         `json:"mutability,omitempty"`
	Returned        string         `json:"returned,omitempty"`
	Uniqueness      string         `json:"uniqueness,omitempty"`
	SubAttributes   []SubAttribute `json:"subAttributes,omitempty"`
	ReferenceTypes  []string       `json:"referenceTypes,omitempty"`
}

// SubAttribute describes one sub-attribute of a complex attribute.
type SubAttribute struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	MultiValued     bool     `json:"multiValued"`
	Description     string   `json:"description,omitempty"`
	Required        bool     `json:"required,omitempty"`
	CanonicalValues []string `json:"canonicalValues,omitempty"`
	CaseExact       bool     `json:"caseExact,omitempty"`
	Mutability      string   `json:"mutability,omitempty"`
	Returned        string   `json:"returned,omitempty"`
	Uniqueness      string   `json:"uniqueness,omitempty"`
	ReferenceTypes  []string `json:"referenceTypes,omitempty"`
}
