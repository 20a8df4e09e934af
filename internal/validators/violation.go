package validators

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const rootField = "(root)"

// Violation is a single mismatch between a document and the schema.
type Violation struct {
	// Field is the dotted path of the offending property, e.g. "sink.0.type".
	// For a missing required property it is the path of that property.
	// The document itself is "(root)".
	Field string

	// Constraint is the schema rule that failed, e.g. "required" or
	// "invalid_type".
	Constraint string

	// Message is the human-readable description including the field.
	Message string
}

// String implements fmt.Stringer.
func (v Violation) String() string {
	return v.Message
}

func newViolation(resErr gojsonschema.ResultError) Violation {
	field := resErr.Field()

	// gojsonschema reports a missing property against its parent object.
	if resErr.Type() == "required" {
		if property, ok := resErr.Details()["property"].(string); ok {
			field = joinField(field, property)
		}
	}

	return Violation{
		Field:      field,
		Constraint: resErr.Type(),
		Message:    fmt.Sprintf("%s: %s", field, resErr.Description()),
	}
}

func joinField(parent, property string) string {
	if parent == "" || parent == rootField {
		return property
	}
	return strings.Join([]string{parent, property}, ".")
}

func sortViolations(violations []Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].Field != violations[j].Field {
			return violations[i].Field < violations[j].Field
		}
		return violations[i].Message < violations[j].Message
	})
}
