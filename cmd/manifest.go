package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/jobpilot/cli"
	"github.com/grovetools/jobpilot/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func NewManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Inspect the application manifest embedded at build time",
	}
	cmd.AddCommand(newManifestShowCmd(), newManifestSchemaCmd())
	return cmd
}

func newManifestShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the embedded manifest",
		Long: `Print the embedded manifest after validation.

The output is TOML, or JSON when --json is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := config.Default()
			if err != nil {
				return err
			}

			var data []byte
			if cli.GetOptions(cmd).JSONOutput {
				data, err = json.MarshalIndent(manifest, "", "  ")
			} else {
				data, err = toml.Marshal(manifest)
			}
			if err != nil {
				return fmt.Errorf("failed to marshal manifest: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newManifestSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema the manifest is validated against",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
