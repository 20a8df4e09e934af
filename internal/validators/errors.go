package validators

import "errors"

var (
	// ErrSchemaLoad indicates the bundled schema is missing or malformed.
	// Startup cannot continue without it.
	ErrSchemaLoad = errors.New("failed to load schema")

	// ErrDocumentRead indicates the document could not be read from disk.
	ErrDocumentRead = errors.New("failed to read document")

	// ErrDocumentParse indicates the document is not syntactically valid
	// JSON. It is distinct from a schema violation.
	ErrDocumentParse = errors.New("document is not valid JSON")
)
