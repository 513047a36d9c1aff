// Package config loads the build-time application manifest.
//
// The manifest fixes the application identity (product name and reverse-DNS
// identifier) and the sidecars bundled with the shell. It is embedded in the
// binary, parsed from TOML, validated against a JSON Schema reflected from
// Manifest, and decoded with mapstructure.
package config

import (
	_ "embed"
	"path"
	"strings"

	"github.com/grovetools/jobpilot/errors"
	"github.com/grovetools/jobpilot/schema"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
)

//go:embed manifest.toml
var embeddedManifest []byte

// Manifest is the application identity and bundle layout fixed at build time.
type Manifest struct {
	ProductName string        `toml:"product_name" json:"product_name" jsonschema:"required,minLength=1,description=Human-readable application name"`
	Identifier  string        `toml:"identifier" json:"identifier" jsonschema:"required,pattern=^[A-Za-z0-9-]+(\\.[A-Za-z0-9-]+)+$,description=Reverse-DNS application identifier scoping all per-user directories"`
	Version     string        `toml:"version,omitempty" json:"version,omitempty" jsonschema:"description=Application version"`
	Bundle      BundleConfig  `toml:"bundle" json:"bundle" jsonschema:"required,description=Files shipped with the shell"`
	Backend     BackendConfig `toml:"backend,omitempty" json:"backend,omitempty" jsonschema:"description=How the frontend reaches the backend sidecar"`
}

// BundleConfig lists the binaries shipped alongside the shell.
type BundleConfig struct {
	ExternalBin []string `toml:"external_bin" json:"external_bin" jsonschema:"required,description=Sidecar binaries as bundle-relative logical paths"`
}

// BackendConfig describes the backend endpoint as seen by the frontend.
type BackendConfig struct {
	Host string `toml:"host,omitempty" json:"host,omitempty" jsonschema:"description=Host the frontend uses to reach the backend (default 127.0.0.1)"`
}

// DefaultBackendHost is used when backend.host is not set.
const DefaultBackendHost = "127.0.0.1"

// Default returns the manifest embedded at build time.
func Default() (*Manifest, error) {
	return Parse(embeddedManifest)
}

// Parse decodes and validates a TOML manifest.
func Parse(data []byte) (*Manifest, error) {
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse manifest")
	}

	validator, err := newValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to build manifest schema")
	}
	if err := validator.Validate(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "manifest does not match schema")
	}

	var m Manifest
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "toml",
		Result:      &m,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create manifest decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode manifest")
	}

	if m.Backend.Host == "" {
		m.Backend.Host = DefaultBackendHost
	}
	return &m, nil
}

// SidecarNames returns the logical names of the bundled sidecars, i.e. the
// last element of each bundle.external_bin entry.
func (m *Manifest) SidecarNames() []string {
	names := make([]string, 0, len(m.Bundle.ExternalBin))
	for _, bin := range m.Bundle.ExternalBin {
		names = append(names, path.Base(strings.ReplaceAll(bin, `\`, "/")))
	}
	return names
}

func newValidator() (*schema.Validator, error) {
	data, err := GenerateSchema()
	if err != nil {
		return nil, err
	}
	return schema.NewValidator("manifest.json", data)
}
