package validators

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/MKhiriev/git-proxy/internal/logger"
)

// configSchema is the draft-07 schema of the proxy settings document.
//
//go:embed config.schema.json
var configSchema []byte

// SchemaValidator validates settings documents against the bundled
// configuration schema. The schema is compiled once, when the validator is
// constructed, and shared by every call.
type SchemaValidator struct {
	schema *gojsonschema.Schema
	logger *logger.Logger
}

// NewSchemaValidator compiles the bundled schema and returns a ready
// validator. A missing or malformed schema yields [ErrSchemaLoad]; callers
// treat it as a fatal startup error.
func NewSchemaValidator(log *logger.Logger) (*SchemaValidator, error) {
	return newSchemaValidator(configSchema, log)
}

func newSchemaValidator(schemaDocument []byte, log *logger.Logger) (*SchemaValidator, error) {
	if len(schemaDocument) == 0 {
		return nil, fmt.Errorf("%w: schema resource is empty", ErrSchemaLoad)
	}

	loader := gojsonschema.NewSchemaLoader()
	loader.Draft = gojsonschema.Draft7
	loader.AutoDetect = false

	schema, err := loader.Compile(gojsonschema.NewBytesLoader(schemaDocument))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaLoad, err)
	}

	return &SchemaValidator{
		schema: schema,
		logger: log.WithComponent("schema-validator"),
	}, nil
}

// Validate reads the document at path and validates it with
// [SchemaValidator.ValidateDocument].
func (v *SchemaValidator) Validate(path string) (bool, []Violation, error) {
	document, err := os.ReadFile(path)
	if err != nil {
		return false, nil, fmt.Errorf("%w %s: %w", ErrDocumentRead, path, err)
	}

	valid, violations, err := v.ValidateDocument(document)
	if err != nil {
		return false, nil, fmt.Errorf("error validating %s: %w", path, err)
	}

	return valid, violations, nil
}

// ValidateDocument validates an in-memory document.
//
// A document that is not valid JSON yields [ErrDocumentParse]. Otherwise all
// violations are collected, sorted by field, logged at error level and
// returned; the result is valid iff there are none.
func (v *SchemaValidator) ValidateDocument(document []byte) (bool, []Violation, error) {
	if !json.Valid(document) {
		return false, nil, ErrDocumentParse
	}

	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return false, nil, fmt.Errorf("%w: %w", ErrDocumentParse, err)
	}

	violations := make([]Violation, 0, len(result.Errors()))
	for _, resErr := range result.Errors() {
		violations = append(violations, newViolation(resErr))
	}
	sortViolations(violations)

	for _, violation := range violations {
		v.logger.Error().
			Str("field", violation.Field).
			Str("constraint", violation.Constraint).
			Msg(violation.Message)
	}

	return len(violations) == 0, violations, nil
}
