package model

import (
	"reflect"
	"strings"
)

// ReservedWireNames is the single source of truth for attribute names that
// collide with Go syntax or convention and therefore carry a different
// field name in the model. Every json struct tag for such a field must
// agree with this table; the Serializer and Deserializer pick the mapping
// up through the tags, and wire_test.go keeps the two in sync.
var ReservedWireNames = map[string]string{
	"Type": "type",
	"Ref":  "$ref",
}

// WireName returns the wire attribute name for a Go field name: the
// reserved-word mapping when one exists, otherwise the leading-lower-case
// camel form the protocol uses.
func WireName(field string) string {
	if wire, ok := ReservedWireNames[field]; ok {
		return wire
	}
	if field == "" {
		return ""
	}

	return strings.ToLower(field[:1]) + field[1:]
}

// WireKeys returns the set of top-level wire attribute names a resource
// struct accepts, derived from its json tags. The codec uses it to tell
// unrecognized keys from declared ones.
func WireKeys(v any) map[string]bool {
	keys := map[string]bool{}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			keys[name] = true
		}
	}

	return keys
}

// IsSchemaURN reports whether a top-level key looks like a schema URN
// rather than an attribute name.
func IsSchemaURN(key string) bool {
	return strings.HasPrefix(key, "urn:")
}
