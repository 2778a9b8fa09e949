// Package codec converts SCIM resources to and from their canonical JSON
// wire form. Marshal applies the omission rules of RFC 7643 (no nulls, no
// write-only attributes, extensions gated by the schemas list) and
// Unmarshal reports structured errors without validating semantics; run
// the validate package on the result for that.
package codec

import (
	json "github.com/goccy/go-json"
	"github.com/samber/lo"

	"github.com/scimkit/scimkit/model"
)

// Marshal renders a resource in canonical wire form. Output is
// deterministic: the same value yields byte-identical JSON across calls.
// *model.User gets the user-specific treatment (password stripped,
// enterprise and opaque extensions emitted only when declared in
// schemas); every other resource is a plain field mapping.
func Marshal(v any) ([]byte, error) {
	if u, ok := v.(*model.User); ok {
		return marshalUser(u)
	}

	return marshal(v)
}

// MarshalIndent is Marshal with indented output, for human-facing dumps.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, err
	}

	var buf []byte
	buf, err = indentJSON(data, prefix, indent)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}

	return buf, nil
}

func marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}

	return data, nil
}

func marshalUser(u *model.User) ([]byte, error) {
	out := *u

	// Password is write-only and never leaves the process.
	out.Password = ""

	// The extension payload rides along only when its URN is declared.
	if !lo.Contains(out.Schemas, model.EnterpriseUserSchemaID) {
		out.EnterpriseUser = nil
	}

	declared := declaredExtensions(u)
	if len(declared) == 0 {
		return marshal(out)
	}

	// Opaque extensions have no struct field, so fold them into a generic
	// document. Map keys marshal sorted, keeping the output deterministic.
	data, err := marshal(out)
	if err != nil {
		return nil, err
	}

	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &SerializationError{Err: err}
	}

	for urn, attrs := range declared {
		raw, err := json.Marshal(attrs)
		if err != nil {
			return nil, &SerializationError{Err: err}
		}
		doc[urn] = raw
	}

	return marshal(doc)
}

// declaredExtensions returns the retained opaque extensions whose URN
// appears in the user's schemas list.
func declaredExtensions(u *model.User) map[string]map[string]any {
	if len(u.Extensions) == 0 {
		return nil
	}

	declared := map[string]map[string]any{}
	for urn, attrs := range u.Extensions {
		if lo.Contains(u.Schemas, urn) {
			declared[urn] = attrs
		}
	}

	return declared
}

func indentJSON(data []byte, prefix, indent string) ([]byte, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return json.MarshalIndent(doc, prefix, indent)
}
