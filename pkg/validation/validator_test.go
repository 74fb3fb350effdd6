package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/mockdata/pkg/value"
)

var userSchema = map[string]any{
	"type":     "object",
	"required": []any{"name", "age"},
	"properties": map[string]any{
		"name": map[string]any{"type": "string", "minLength": 1},
		"age":  map[string]any{"type": "integer", "minimum": 18},
		"tags": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	},
}

func TestValidator_Validate(t *testing.T) {
	v, err := New(userSchema)
	require.NoError(t, err)

	tests := []struct {
		name      string
		doc       any
		wantValid bool
		wantField string
		wantCode  string
	}{
		{
			name:      "valid ordered object",
			doc:       value.ObjectOf("name", "Ada", "age", 36, "tags", []any{"a"}),
			wantValid: true,
		},
		{
			name:      "wrong type",
			doc:       value.ObjectOf("name", "Ada", "age", "old"),
			wantField: "age",
			wantCode:  ErrCodeType,
		},
		{
			name:      "below minimum",
			doc:       value.ObjectOf("name", "Ada", "age", 3),
			wantField: "age",
			wantCode:  ErrCodeSchema,
		},
		{
			name:      "nested array item",
			doc:       value.ObjectOf("name", "Ada", "age", 20, "tags", []any{"ok", 7}),
			wantField: "tags.1",
			wantCode:  ErrCodeType,
		},
		{
			name:     "missing required",
			doc:      value.ObjectOf("name", "Ada"),
			wantCode: ErrCodeSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(tt.doc)
			assert.Equal(t, tt.wantValid, result.Valid)
			if tt.wantValid {
				assert.False(t, result.HasErrors())
				assert.NoError(t, result.Err())
				return
			}
			require.NotEmpty(t, result.Errors)
			assert.Equal(t, tt.wantField, result.Errors[0].Field)
			assert.Equal(t, tt.wantCode, result.Errors[0].Code)
			assert.Error(t, result.Err())
		})
	}
}

func TestValidator_Numbers(t *testing.T) {
	v, err := New(userSchema)
	require.NoError(t, err)

	tests := []struct {
		name      string
		age       any
		wantValid bool
	}{
		{"int", 42, true},
		{"int64 beyond float precision", int64(9007199254740993), true},
		{"whole float", 40.0, true},
		{"fraction", 18.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(value.ObjectOf("name", "Ada", "age", tt.age))
			assert.Equal(t, tt.wantValid, result.Valid, "errors: %v", result.Errors)
			if !tt.wantValid {
				require.NotEmpty(t, result.Errors)
				assert.Equal(t, ErrCodeType, result.Errors[0].Code)
			}
		})
	}
}

func TestValidator_ValidateAllRecordsIndex(t *testing.T) {
	v, err := New(userSchema)
	require.NoError(t, err)

	docs := []any{
		value.ObjectOf("name", "a", "age", 20),
		value.ObjectOf("name", "b", "age", 2),
		value.ObjectOf("name", "c", "age", 30),
	}
	result := v.ValidateAll(docs)
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].Record)
	assert.Contains(t, result.Err().Error(), "record 1: age:")
}

func TestValidator_UnencodableDocument(t *testing.T) {
	v, err := New(map[string]any{"type": "object"})
	require.NoError(t, err)

	result := v.Validate(map[string]any{"f": func() {}})
	require.False(t, result.Valid)
	assert.Equal(t, ErrCodeEncode, result.Errors[0].Code)
}

func TestNew_InvalidSchema(t *testing.T) {
	_, err := New(map[string]any{"type": 12})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile schema")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("type: object\nrequired: [id]\n"), 0o644))
	v, err := Load(yamlPath)
	require.NoError(t, err)
	assert.True(t, v.Validate(value.ObjectOf("id", 1)).Valid)
	assert.False(t, v.Validate(value.ObjectOf("other", 1)).Valid)

	jsonPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"type": "array", "maxItems": 1}`), 0o644))
	v, err = Load(jsonPath)
	require.NoError(t, err)
	assert.False(t, v.Validate([]any{1, 2}).Valid)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse schema file")
}

func TestExtractFieldFromPath(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"/":           "",
		"/name":       "name",
		"/users/0/id": "users.0.id",
		"/a~1b/c~0d":  "a/b.c~d",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, extractFieldFromPath(in))
		})
	}
}
