package codec

import "fmt"

// Causes carried by DeserializationError, so callers can tell unparsable
// input from a shape problem on an otherwise valid document.
const (
	// CauseInvalidJSON: the input is not valid JSON at all.
	CauseInvalidJSON = "invalid_json"
	// CauseNotAnObject: the top-level value parses but is not an object.
	CauseNotAnObject = "not_an_object"
	// CauseTypeMismatch: a field's JSON type does not match the attribute type.
	CauseTypeMismatch = "type_mismatch"
	// CauseMissingSchemas: the document carries no schemas attribute.
	CauseMissingSchemas = "missing_schemas"
)

// SerializationError reports an encoding-level fault. Serialization never
// performs semantic validation; empty required fields do not produce one.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("scim: serialization failed: %v", e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// DeserializationError reports malformed inbound JSON. Path is the wire
// attribute path of the offending key when one is known.
type DeserializationError struct {
	Cause string
	Path  string
	Err   error
}

func (e *DeserializationError) Error() string {
	msg := fmt.Sprintf("scim: deserialization failed: %s", e.Cause)
	if e.Path != "" {
		msg += fmt.Sprintf(" at %q", e.Path)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}

	return msg
}

func (e *DeserializationError) Unwrap() error { return e.Err }
