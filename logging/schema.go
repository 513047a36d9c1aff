package logging

//go:generate sh -c "cd .. && go run ./tools/logging-schema-generator/"

import (
	"encoding/json"
	"sync"

	"github.com/grovetools/jobpilot/schema"
	"github.com/invopop/jsonschema"
)

var (
	validatorOnce sync.Once
	validator     *schema.Validator
	validatorErr  error
)

// GenerateSchema returns the JSON Schema of logging.yml. Every field is
// optional; unknown keys are rejected.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	s := r.Reflect(&Config{})
	s.Title = "JobPilot Logging Settings"
	s.Description = "Schema for the optional logging.yml in the application config directory."

	// Settings files may set any subset of fields.
	s.Required = nil
	if s.Properties != nil {
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			pair.Value.Required = nil
		}
	}

	return json.MarshalIndent(s, "", "  ")
}

func newValidator() (*schema.Validator, error) {
	validatorOnce.Do(func() {
		var data []byte
		data, validatorErr = GenerateSchema()
		if validatorErr != nil {
			return
		}
		validator, validatorErr = schema.NewValidator("logging.json", data)
	})
	return validator, validatorErr
}
