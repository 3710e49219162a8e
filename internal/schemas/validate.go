// Package schemas provides JSON Schema validation for structured data
// coming back from the extraction model. The model's output is never
// trusted until it validates against the embedded schema.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed enriched_jobs.schema.json
var enrichedJobsSchema []byte

//go:embed candidate_profile.schema.json
var candidateProfileSchema []byte

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for _, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", fe.Field, fe.Message))
	}
	return sb.String()
}

// ValidateEnrichedJobs checks a JSON document against the enriched jobs
// record-set schema. It returns a *ValidationError listing every failed
// field, or a plain error if the schema itself cannot be loaded.
func ValidateEnrichedJobs(document []byte) error {
	return validate(enrichedJobsSchema, document)
}

// ValidateCandidateProfile checks a JSON document against the candidate
// profile schema used by CV extraction.
func ValidateCandidateProfile(document []byte) error {
	return validate(candidateProfileSchema, document)
}

func validate(schema, document []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, resultErr := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
		})
	}
	return ve
}
