package main

import (
	"os"

	"github.com/grovetools/jobpilot/cli"
	"github.com/grovetools/jobpilot/cmd"
	"github.com/grovetools/jobpilot/internal/alert"
	"github.com/grovetools/jobpilot/version"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	err := rootCmd.Execute()
	if err == nil {
		return
	}

	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
	handler := cli.NewErrorHandler(verbose)
	code := handler.Handle(err)
	if cmd.IsStartupError(err) && !version.Current.IsDevelopment() {
		alert.StartupFailure(cli.Message(err))
	}
	os.Exit(code)
}
