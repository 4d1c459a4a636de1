package spec

import "fmt"

// SchemaError reports a document that does not match the expected schema:
// an absent required field or a value of the wrong shape.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return "schema: " + e.Reason
	}
	return fmt.Sprintf("schema: %s: %s", e.Path, e.Reason)
}

// Missing builds the error for an absent required field.
func Missing(path, field string) *SchemaError {
	return &SchemaError{Path: path, Reason: fmt.Sprintf("missing required field %q", field)}
}
