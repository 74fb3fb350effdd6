// Package validation checks generated documents against a JSON Schema.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const schemaURL = "schema.json"

// Validator validates generated documents against a compiled schema.
type Validator struct {
	schema *jsonschema.Schema
}

// New compiles a schema given as decoded JSON or YAML data.
func New(schema any) (*Validator, error) {
	compiled, err := compileSchema(schema)
	if err != nil {
		return nil, err
	}
	return &Validator{schema: compiled}, nil
}

// Load reads and compiles a schema file. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func Load(path string) (*Validator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var schemaData any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &schemaData)
	default:
		err = json.Unmarshal(data, &schemaData)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema file %s: %w", path, err)
	}
	return New(schemaData)
}

// compileSchema compiles the JSON Schema
func compileSchema(schemaData any) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	// Convert to JSON and back to ensure consistent types
	schemaBytes, err := json.Marshal(schemaData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaBytes)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return schema, nil
}

// Validate checks one document.
func (v *Validator) Validate(doc any) *Result {
	return v.validate(0, doc)
}

// ValidateAll checks a batch of documents, recording the index of each
// failing document.
func (v *Validator) ValidateAll(docs []any) *Result {
	result := &Result{Valid: true}
	for i, doc := range docs {
		result.Merge(v.validate(i, doc))
	}
	return result
}

func (v *Validator) validate(record int, doc any) *Result {
	result := &Result{Valid: true}

	// Generated objects keep their key order and Go number types; the
	// validator wants the decoded JSON form.
	data, err := json.Marshal(doc)
	if err != nil {
		result.AddError(&FieldError{Record: record, Code: ErrCodeEncode, Message: err.Error()})
		return result
	}
	var instance any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&instance); err != nil {
		result.AddError(&FieldError{Record: record, Code: ErrCodeEncode, Message: err.Error()})
		return result
	}

	if err := v.schema.Validate(instance); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			parseSchemaErrors(record, validationErr, result)
		} else {
			result.AddError(&FieldError{Record: record, Code: ErrCodeSchema, Message: err.Error()})
		}
	}
	return result
}

// parseSchemaErrors extracts the leaf errors of a schema validation error
func parseSchemaErrors(record int, err *jsonschema.ValidationError, result *Result) {
	if len(err.Causes) == 0 {
		result.AddError(&FieldError{
			Field:   extractFieldFromPath(err.InstanceLocation),
			Record:  record,
			Code:    codeFor(err.KeywordLocation),
			Message: err.Message,
		})
		return
	}

	for _, cause := range err.Causes {
		parseSchemaErrors(record, cause, result)
	}
}

func codeFor(keywordLocation string) string {
	if strings.HasSuffix(keywordLocation, "/type") {
		return ErrCodeType
	}
	return ErrCodeSchema
}

// extractFieldFromPath converts a JSON Pointer into dot notation
func extractFieldFromPath(path string) string {
	if path == "" || path == "/" {
		return ""
	}
	path = strings.TrimPrefix(path, "/")
	path = strings.ReplaceAll(path, "/", ".")
	path = strings.ReplaceAll(path, "~1", "/")
	return strings.ReplaceAll(path, "~0", "~")
}
