package model

// User is the SCIM core User resource.
//
// Optional scalars are plain strings with omitempty: "not provided" and
// "provided but empty" are normalized to the same empty default, matching
// the wire form which cannot distinguish them either. Active is a pointer
// because an explicit false (deactivation) must survive a round trip.
type User struct {
	Schemas    []string `json:"schemas"`
	ID         string   `json:"id,omitempty"`
	ExternalID string   `json:"externalId,omitempty"`
	UserName   string   `json:"userName,omitempty"`

	Name              *Name  `json:"name,omitempty"`
	DisplayName       string `json:"displayName,omitempty"`
	NickName          string `json:"nickName,omitempty"`
	ProfileURL        string `json:"profileUrl,omitempty"`
	Title             string `json:"title,omitempty"`
	UserType          string `json:"userType,omitempty"`
	PreferredLanguage string `json:"preferredLanguage,omitempty"`
	Locale            string `json:"locale,omitempty"`
	Timezone          string `json:"timezone,omitempty"`
	Active            *bool  `json:"active,omitempty"`

	// Password is write-only: accepted on input, never emitted by the codec.
	Password string `json:"password,omitempty"`

	Emails           []UserEmail           `json:"emails,omitempty"`
	PhoneNumbers     []UserPhoneNumber     `json:"phoneNumbers,omitempty"`
	Ims              []UserIm              `json:"ims,omitempty"`
	Photos           []UserPhoto           `json:"photos,omitempty"`
	Addresses        []UserAddress         `json:"addresses,omitempty"`
	Groups           []UserGroup           `json:"groups,omitempty"`
	Entitlements     []UserEntitlement     `json:"entitlements,omitempty"`
	Roles            []UserRole            `json:"roles,omitempty"`
	X509Certificates []UserX509Certificate `json:"x509Certificates,omitempty"`

	Meta *Meta `json:"meta,omitempty"`

	// EnterpriseUser holds the enterprise extension payload. On the wire it
	// lives under the extension's URN as a top-level key.
	EnterpriseUser *EnterpriseUser `json:"urn:ietf:params:scim:schemas:extension:enterprise:2.0:User,omitempty"`

	// Extensions retains sub-objects of unrecognized schema URN keys found
	// during deserialization. They have no typed home here; callers inspect
	// them, and the codec re-emits the ones declared in Schemas.
	Extensions map[string]map[string]any `json:"-"`
}

// NewUser returns a User with the base schema URN declared and every
// optional field at its empty default.
func NewUser() *User {
	return &User{Schemas: []string{UserSchemaID}}
}

// Name carries the components of the user's real name.
type Name struct {
	Formatted       string `json:"formatted,omitempty"`
	FamilyName      string `json:"familyName,omitempty"`
	GivenName       string `json:"givenName,omitempty"`
	MiddleName      string `json:"middleName,omitempty"`
	HonorificPrefix string `json:"honorificPrefix,omitempty"`
	HonorificSuffix string `json:"honorificSuffix,omitempty"`
}

// Email addresses for the user. Canonical type values: work, home, other.
type UserEmail struct {
	Value   string `json:"value,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

// Phone numbers for the user. Canonical type values: work, home, mobile,
// fax, pager, other.
type UserPhoneNumber struct {
	Value   string `json:"value,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

// Instant messaging addresses for the user.
type UserIm struct {
	Value   string `json:"value,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

// URLs of photos of the user. Canonical type values: photo, thumbnail.
type UserPhoto struct {
	Value   string `json:"value,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

// A physical mailing address for the user. Canonical type values: work,
// home, other.
type UserAddress struct {
	Formatted     string `json:"formatted,omitempty"`
	StreetAddress string `json:"streetAddress,omitempty"`
	Locality      string `json:"locality,omitempty"`
	Region        string `json:"region,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	Country       string `json:"country,omitempty"`
	Type          string `json:"type,omitempty"`
	Primary       bool   `json:"primary,omitempty"`
}

// Groups the user belongs to, directly or through nesting. Read-only on
// the wire, so entries carry no primary flag.
type UserGroup struct {
	Value   string `json:"value,omitempty"`
	Ref     string `json:"$ref,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
}

// Entitlements the user has. The type sub-attribute has no canonical set.
type UserEntitlement struct {
	Value   string `json:"value,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

// Roles for the user, e.g. "Student" or "Faculty".
type UserRole struct {
	Value   string `json:"value,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

// Certificates issued to the user, DER encoded and base64 on the wire.
type UserX509Certificate struct {
	Value   string `json:"value,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}
