package custom

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaVerifier compiles a JSON schema into a Verifier. name is only used to
// label the schema resource in compile errors.
func SchemaVerifier(name, schema string) (Verifier, error) {
	compiled, err := jsonschema.CompileString(name+".schema.json", schema)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return func(doc Document) bool {
		return ValidateSchema(compiled, doc) == nil
	}, nil
}

// MustSchemaVerifier is like SchemaVerifier but panics if the schema does not
// compile. It is meant for schemas embedded in source.
func MustSchemaVerifier(name, schema string) Verifier {
	v, err := SchemaVerifier(name, schema)
	if err != nil {
		panic(err)
	}
	return v
}

// ValidateSchema validates doc against a compiled schema and returns the
// detailed validation error.
func ValidateSchema(s *jsonschema.Schema, doc Document) error {
	if doc == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidConfig)
	}
	v, err := doc.plain()
	if err != nil {
		return err
	}
	return s.Validate(v)
}
