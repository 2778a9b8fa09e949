package codec

import (
	"reflect"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/scimkit/scimkit/model"
)

var userWireKeys = sync.OnceValue(func() map[string]bool {
	return model.WireKeys(model.User{})
})

// UnmarshalUser parses a wire document into a User. Unknown plain keys
// are ignored; unknown schema-URN keys are retained in User.Extensions
// for the caller. The enterprise extension is merged whether or not the
// schemas list declares it — consistency is the validate package's call.
func UnmarshalUser(data []byte) (*model.User, error) {
	doc, err := document(data)
	if err != nil {
		return nil, err
	}

	u := new(model.User)
	if err := json.Unmarshal(data, u); err != nil {
		return nil, asDeserializationError(err)
	}

	for key, raw := range doc {
		if userWireKeys()[key] || !model.IsSchemaURN(key) {
			continue
		}

		var attrs map[string]any
		if err := json.Unmarshal(raw, &attrs); err != nil {
			return nil, &DeserializationError{Cause: CauseTypeMismatch, Path: key, Err: err}
		}

		if u.Extensions == nil {
			u.Extensions = map[string]map[string]any{}
		}
		u.Extensions[key] = attrs
	}

	return u, nil
}

// UnmarshalGroup parses a wire document into a Group.
func UnmarshalGroup(data []byte) (*model.Group, error) {
	g := new(model.Group)

	return g, unmarshalResource(data, g)
}

// UnmarshalResourceType parses a wire document into a ResourceType.
func UnmarshalResourceType(data []byte) (*model.ResourceType, error) {
	rt := new(model.ResourceType)

	return rt, unmarshalResource(data, rt)
}

// UnmarshalServiceProviderConfig parses a wire document into a
// ServiceProviderConfig.
func UnmarshalServiceProviderConfig(data []byte) (*model.ServiceProviderConfig, error) {
	spc := new(model.ServiceProviderConfig)

	return spc, unmarshalResource(data, spc)
}

// UnmarshalSchema parses a wire document into a Schema discovery document.
func UnmarshalSchema(data []byte) (*model.Schema, error) {
	s := new(model.Schema)

	return s, unmarshalResource(data, s)
}

func unmarshalResource(data []byte, v any) error {
	if _, err := document(data); err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return asDeserializationError(err)
	}

	return nil
}

// document checks the structural floor every top-level wire document must
// clear: valid JSON, an object, and a schemas attribute.
func document(data []byte) (map[string]json.RawMessage, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &DeserializationError{Cause: CauseInvalidJSON, Err: err}
	}
	if _, ok := probe.(map[string]any); !ok {
		return nil, &DeserializationError{Cause: CauseNotAnObject}
	}

	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DeserializationError{Cause: CauseInvalidJSON, Err: err}
	}

	if _, ok := doc["schemas"]; !ok {
		return nil, &DeserializationError{Cause: CauseMissingSchemas, Path: "schemas"}
	}

	return doc, nil
}

func asDeserializationError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		path := typeErr.Field
		if path == "" {
			path = typeErr.Struct
		}

		return &DeserializationError{Cause: CauseTypeMismatch, Path: path, Err: err}
	}

	return &DeserializationError{Cause: CauseInvalidJSON, Err: err}
}

// Kind sniffs the resource type name a wire document declares through its
// schemas list. It returns "" for a well-formed document with no known
// base schema URN.
func Kind(data []byte) (string, error) {
	doc, err := document(data)
	if err != nil {
		return "", err
	}

	var schemas []string
	if err := json.Unmarshal(doc["schemas"], &schemas); err != nil {
		return "", &DeserializationError{Cause: CauseTypeMismatch, Path: "schemas", Err: err}
	}

	return model.KindOf(schemas), nil
}

// ParseUser is the pre-parsed counterpart of UnmarshalUser: it accepts a
// generic JSON object, e.g. a fragment pulled out of a larger request
// body. Fragments are legal here, so the schemas floor of UnmarshalUser
// is not enforced.
func ParseUser(doc map[string]any) (*model.User, error) {
	u := new(model.User)

	unused, err := parseValue(doc, u)
	if err != nil {
		return nil, err
	}

	for _, key := range unused {
		if !model.IsSchemaURN(key) {
			continue
		}

		attrs, ok := doc[key].(map[string]any)
		if !ok {
			return nil, &DeserializationError{Cause: CauseTypeMismatch, Path: key}
		}

		if u.Extensions == nil {
			u.Extensions = map[string]map[string]any{}
		}
		u.Extensions[key] = attrs
	}

	return u, nil
}

// ParseGroup is the pre-parsed counterpart of UnmarshalGroup.
func ParseGroup(doc map[string]any) (*model.Group, error) {
	g := new(model.Group)
	if _, err := parseValue(doc, g); err != nil {
		return nil, err
	}

	return g, nil
}

// ParseResourceType is the pre-parsed counterpart of UnmarshalResourceType.
func ParseResourceType(doc map[string]any) (*model.ResourceType, error) {
	rt := new(model.ResourceType)
	if _, err := parseValue(doc, rt); err != nil {
		return nil, err
	}

	return rt, nil
}

// ParseServiceProviderConfig is the pre-parsed counterpart of
// UnmarshalServiceProviderConfig.
func ParseServiceProviderConfig(doc map[string]any) (*model.ServiceProviderConfig, error) {
	spc := new(model.ServiceProviderConfig)
	if _, err := parseValue(doc, spc); err != nil {
		return nil, err
	}

	return spc, nil
}

// parseValue decodes a generic JSON object into a resource struct using
// the same json-tag wire names as the byte codec. It returns the keys the
// struct had no field for.
func parseValue(doc map[string]any, result any) ([]string, error) {
	if doc == nil {
		return nil, &DeserializationError{Cause: CauseNotAnObject}
	}

	md := mapstructure.Metadata{}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     result,
		Metadata:   &md,
		DecodeHook: jsonNumberHook,
	})
	if err != nil {
		return nil, errors.Wrap(err, "building decoder")
	}

	if err := dec.Decode(doc); err != nil {
		return nil, &DeserializationError{Cause: CauseTypeMismatch, Err: err}
	}

	return md.Unused, nil
}

// jsonNumberHook narrows the float64 values generic JSON decoding
// produces into the integer fields the discovery documents carry.
func jsonNumberHook(from, to reflect.Kind, data any) (any, error) {
	if from != reflect.Float64 {
		return data, nil
	}

	f, _ := data.(float64)

	switch to {
	case reflect.Int, reflect.Int32, reflect.Int64:
		return int64(f), nil
	default:
		return data, nil
	}
}
