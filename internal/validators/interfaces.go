// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks proxy settings documents against the bundled
// JSON Schema.
//
// Core concepts:
//   - Validator: validates a settings document on disk and reports every
//     schema violation it finds, not only the first one.
//   - Violation: one structural mismatch, carrying the dotted field path and
//     the schema keyword that failed.
//
// A violation is not an error: Validate returns (false, violations, nil) and
// leaves the decision to continue to the caller. Errors are reserved for
// documents that cannot be read or parsed.
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates a settings document against a schema.
type Validator interface {

	// Validate reads the document at path and returns whether it satisfies
	// the schema together with all violations found.
	Validate(path string) (bool, []Violation, error)
}
