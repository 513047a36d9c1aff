package cli

import (
	"github.com/grovetools/jobpilot/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds common options for shell commands
type CommandOptions struct {
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with standard flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output logs in JSON format")

	SetStyledHelp(cmd)

	return cmd
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// ApplyLogOptions adjusts every logger to the command's flags.
func ApplyLogOptions(cmd *cobra.Command) {
	opts := GetOptions(cmd)
	if opts.Verbose {
		logging.SetLevel(logrus.DebugLevel)
	}
	if opts.JSONOutput {
		logging.SetJSON()
	}
}
