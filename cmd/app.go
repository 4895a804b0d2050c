// Package cmd implements the CLI application of the saldo ledger.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Version is set at build time with -ldflags "-X github.com/etnz/saldo/cmd.Version=...".
var Version = "dev"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&runCmd{}, "ledger")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&versionCmd{}, "documentation")
}

// DefaultCommand is run when the command line names no subcommand.
const DefaultCommand = "run"

// WithDefaultCommand inserts DefaultCommand in front of args when they start
// with no subcommand, so that "saldo -lang es" means "saldo run -lang es".
// Help flags are left to the top level flag set.
func WithDefaultCommand(args []string) []string {
	if len(args) > 0 {
		switch first := args[0]; {
		case first == "-h", first == "-help", first == "--help", first == "--h":
			return args
		case !strings.HasPrefix(first, "-"):
			return args
		}
	}
	return append([]string{DefaultCommand}, args...)
}

// renderMarkdown renders md for a terminal, falling back to the raw text.
func renderMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprint(w, md)
}

func printMarkdown(md string) { renderMarkdown(os.Stdout, md) }
