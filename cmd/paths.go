package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/jobpilot/config"
	"github.com/grovetools/jobpilot/pkg/paths"
	"github.com/grovetools/jobpilot/pkg/sidecar"
	"github.com/spf13/cobra"
)

// PathsOutput represents the per-user directories and sidecar location of the shell.
type PathsOutput struct {
	Identifier   string `json:"identifier"`
	DataDir      string `json:"data_dir"`
	LocalDataDir string `json:"local_data_dir"`
	ConfigDir    string `json:"config_dir"`
	CacheDir     string `json:"cache_dir"`
	LogDir       string `json:"log_dir"`
	SidecarDir   string `json:"sidecar_dir"`
}

func NewPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the per-user directories used by the shell",
		Long: `Print the per-user directories used by the shell.

The paths are computed from the application identifier using the host
platform's conventions. Nothing is created on disk.

- data_dir: handed to the backend as --data-dir
- config_dir: holds the optional logging.yml
- sidecar_dir: where bundled sidecar binaries are looked up`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := config.Default()
			if err != nil {
				return err
			}

			output, err := resolvePaths(paths.NewResolver(manifest.Identifier))
			if err != nil {
				return err
			}
			if output.SidecarDir, err = sidecar.DefaultDir(); err != nil {
				return err
			}

			jsonData, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal paths to JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}

	return cmd
}

func resolvePaths(r *paths.Resolver) (PathsOutput, error) {
	out := PathsOutput{Identifier: r.Identifier}

	resolvers := []struct {
		dst *string
		fn  func() (string, error)
	}{
		{&out.DataDir, r.AppDataDir},
		{&out.LocalDataDir, r.AppLocalDataDir},
		{&out.ConfigDir, r.AppConfigDir},
		{&out.CacheDir, r.AppCacheDir},
		{&out.LogDir, r.AppLogDir},
	}
	for _, res := range resolvers {
		dir, err := res.fn()
		if err != nil {
			return PathsOutput{}, err
		}
		*res.dst = dir
	}
	return out, nil
}
