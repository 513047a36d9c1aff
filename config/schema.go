package config

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema of the application manifest.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Unknown keys are almost always typos in a build-time file.
		AllowAdditionalProperties: false,
		// Inline nested structs instead of emitting $defs references.
		DoNotReference: true,
		Anonymous:      true,
		// Required is declared explicitly with jsonschema:"required".
		RequiredFromJSONSchemaTags: true,
		// Use TOML field names for property names
		FieldNameTag: "toml",
	}

	s := r.Reflect(&Manifest{})
	s.Title = "JobPilot Application Manifest"
	s.Description = "Build-time identity and bundle layout of the JobPilot desktop shell."

	return json.MarshalIndent(s, "", "  ")
}
