package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// app carries the shared flags and outputs of one command-line run.
type app struct {
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger

	maxExpansions int
	asJSON        bool
	verbose       bool
}

// logger returns the configured logger, or a default one writing to errOut
// when the command failed before flags were parsed.
func (a *app) logger() *slog.Logger {
	if a.log == nil {
		a.log = slog.New(newLogHandler(a.errOut, nil))
	}

	return a.log
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvroute",
		Short:         "Budget-constrained shortest paths over two-metric graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(newLogHandler(a.errOut, &slog.HandlerOptions{Level: level})).
				With("run", uuid.New().String())
			if a.maxExpansions < 0 {
				return fmt.Errorf("--max-expansions must be non-negative, got %d", a.maxExpansions)
			}

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.IntVar(&a.maxExpansions, "max-expansions", 0, "cap on label expansions per query (0 = unlimited)")
	pf.BoolVar(&a.asJSON, "json", false, "print results as JSON")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log search statistics at debug level")

	root.AddCommand(
		a.validateCmd(),
		a.checkCmd(),
		a.pathCmd(),
		a.kpathsCmd(),
		a.routeCmd(),
		a.batchCmd(),
		a.generateCmd(),
	)

	return root
}

// newLogHandler writes text logs to terminals and JSON lines elsewhere, so
// batch runs piped into files stay machine-readable.
func newLogHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return slog.NewTextHandler(w, opts)
	}

	return slog.NewJSONHandler(w, opts)
}
