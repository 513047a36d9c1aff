package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "identifier": {"type": "string", "pattern": "^[a-z]+(\\.[a-z]+)+$"},
    "port": {"type": "integer"}
  },
  "required": ["identifier"],
  "additionalProperties": false
}`

func TestValidator(t *testing.T) {
	v, err := NewValidator("test.json", []byte(testSchema))
	require.NoError(t, err)

	tests := []struct {
		name    string
		doc     interface{}
		wantErr string
	}{
		{"valid", map[string]interface{}{"identifier": "com.jobpilot"}, ""},
		{"int64 normalized", map[string]interface{}{"identifier": "com.jobpilot", "port": int64(5000)}, ""},
		{"missing required", map[string]interface{}{}, "identifier"},
		{"bad pattern", map[string]interface{}{"identifier": "jobpilot"}, "/identifier"},
		{"unknown field", map[string]interface{}{"identifier": "com.jobpilot", "extra": true}, "extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.doc)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewValidatorRejectsBadSchema(t *testing.T) {
	_, err := NewValidator("bad.json", []byte(`{"type": 12}`))
	assert.Error(t, err)
}
