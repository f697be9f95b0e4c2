package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/inputkit/internal/logger"
)

type rootFlags struct {
	verbose  bool
	logLevel string
	noColor  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "inputkit",
		Short:         "inputkit previews and exercises themed terminal inputs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colour output")

	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command logger. Entries go to the command's error
// stream so they never mix with rendered output.
func (f *rootFlags) newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	level := f.logLevel
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		NoColor:       f.noColor || !isTerminal(cmd.ErrOrStderr()),
		Writer:        cmd.ErrOrStderr(),
	})
}

// applyColorProfile picks the lipgloss colour profile for w. Anything that
// is not a terminal, or any run with --no-color, renders without escapes.
func (f *rootFlags) applyColorProfile(w io.Writer) {
	if f.noColor || !isTerminal(w) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(w).EnvColorProfile())
}

func isTerminal(w any) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
