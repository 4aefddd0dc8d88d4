package custom

import (
	"encoding/json"
	"fmt"
)

// TypeField is the top-level document field naming the component type.
const TypeField = "type"

// Document is a serialized component configuration: a JSON object whose
// TypeField names the target type and whose other fields are owned by that
// type's schema.
type Document map[string]any

// ParseDocument decodes a JSON object.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("parse document: not an object")
	}
	return doc, nil
}

// DocumentFrom converts any JSON-encodable value (a struct, or a map decoded
// from YAML) into a Document with JSON-native values.
func DocumentFrom(v any) (Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return ParseDocument(data)
}

// TypeName returns the value of TypeField when it is a non-empty string.
func (d Document) TypeName() (string, bool) {
	name, ok := d[TypeField].(string)
	return name, ok && name != ""
}

// WithType returns a copy of d naming the given type.
func (d Document) WithType(name string) Document {
	out := make(Document, len(d)+1)
	for k, v := range d {
		out[k] = v
	}
	out[TypeField] = name
	return out
}

// Clone deep-copies d through its JSON form.
func (d Document) Clone() (Document, error) {
	if d == nil {
		return nil, nil
	}
	return DocumentFrom(map[string]any(d))
}

// Decode unmarshals d into v, typically a component's state struct.
func (d Document) Decode(v any) error {
	data, err := json.Marshal(map[string]any(d))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (d Document) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	return json.Marshal(map[string]any(d))
}

// plain returns d as the generic value tree produced by encoding/json.
func (d Document) plain() (any, error) {
	data, err := json.Marshal(map[string]any(d))
	if err != nil {
		return nil, err
	}
	var v any
	if err = json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
