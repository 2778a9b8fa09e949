package validate

// Canonical value sets per RFC 7643 §4. Matching is case-sensitive.
var (
	emailTypes   = []string{"work", "home", "other"}
	phoneTypes   = []string{"work", "home", "mobile", "fax", "pager", "other"}
	imTypes      = []string{"aim", "gtalk", "icq", "xmpp", "msn", "skype", "qq", "yahoo"}
	photoTypes   = []string{"photo", "thumbnail"}
	addressTypes = []string{"work", "home", "other"}

	userGroupTypes   = []string{"direct", "indirect"}
	groupMemberTypes = []string{"User", "Group"}

	attributeTypes  = []string{"string", "boolean", "decimal", "integer", "dateTime", "reference", "binary", "complex"}
	mutabilityTypes = []string{"readOnly", "readWrite", "immutable", "writeOnly"}
	returnedTypes   = []string{"always", "never", "default", "request"}
	uniquenessTypes = []string{"none", "server", "global"}
)
