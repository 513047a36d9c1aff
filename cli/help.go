package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const maxWidth = 80

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// SetStyledHelp installs the styled help renderer on cmd and its children.
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		renderHelp(c.OutOrStdout(), c)
	})
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || width > maxWidth {
		return maxWidth
	}
	return width
}

func renderHelp(w io.Writer, cmd *cobra.Command) {
	desc := cmd.Long
	if desc == "" {
		desc = cmd.Short
	}
	fmt.Fprintln(w, lipgloss.NewStyle().Width(terminalWidth()).Render(desc))
	fmt.Fprintln(w)

	fmt.Fprintln(w, headingStyle.Render("USAGE"))
	fmt.Fprintf(w, "  %s\n\n", cmd.UseLine())

	var subs []*cobra.Command
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			subs = append(subs, sub)
		}
	}
	if len(subs) > 0 {
		fmt.Fprintln(w, headingStyle.Render("COMMANDS"))
		for _, sub := range subs {
			name := fmt.Sprintf("%-*s", cmd.NamePadding(), sub.Name())
			fmt.Fprintf(w, "  %s  %s\n", commandStyle.Render(name), sub.Short)
		}
		fmt.Fprintln(w)
	}

	writeFlags(w, "FLAGS", cmd.LocalFlags())
	writeFlags(w, "GLOBAL FLAGS", cmd.InheritedFlags())
}

func writeFlags(w io.Writer, heading string, flags *pflag.FlagSet) {
	if !flags.HasAvailableFlags() {
		return
	}
	fmt.Fprintln(w, headingStyle.Render(heading))
	fmt.Fprintln(w, strings.TrimRight(flags.FlagUsagesWrapped(terminalWidth()), "\n"))
	fmt.Fprintln(w)
}
