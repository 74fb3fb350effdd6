package validation

import (
	"fmt"
	"strings"
)

// ErrorCode constants for machine-readable error identification
const (
	ErrCodeSchema = "schema"
	ErrCodeType   = "type"
	ErrCodeEncode = "encode"
)

// FieldError represents a validation error for a single location in a
// generated document.
type FieldError struct {
	// Field is the dotted location of the value, empty for the document root
	Field string `json:"field,omitempty"`

	// Record is the index of the document within a batch
	Record int `json:"record"`

	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`
}

// Error implements the error interface
func (e *FieldError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("record %d: %s: %s", e.Record, e.Field, e.Message)
	}
	return fmt.Sprintf("record %d: %s", e.Record, e.Message)
}

// Result contains the outcome of validation.
type Result struct {
	// Valid is true if validation passed
	Valid bool `json:"valid"`

	// Errors contains validation errors (when Valid is false)
	Errors []*FieldError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (r *Result) AddError(err *FieldError) {
	r.Valid = false
	r.Errors = append(r.Errors, err)
}

// HasErrors returns true if there are any validation errors
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Merge combines another result into this one
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	if !other.Valid {
		r.Valid = false
	}
	r.Errors = append(r.Errors, other.Errors...)
}

// Err returns nil for a valid result, otherwise an error listing every
// field error on its own line.
func (r *Result) Err() error {
	if r == nil || r.Valid {
		return nil
	}
	lines := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		lines = append(lines, e.Error())
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(lines, "\n  "))
}
