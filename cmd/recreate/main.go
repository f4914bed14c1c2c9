package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hungrypc/recreate-framework/pkg/vdom"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "recreate",
		Short: "Incremental mounting engine for element trees",
		Long: `Recreate mounts declarative element trees onto a host document
incrementally: one fiber at a time, inside cooperative idle slices, without
ever blocking the hosting process for the duration of a large mount.

The CLI mounts YAML tree descriptions into an in-memory document:

  • render — mount a tree and print the resulting HTML
  • serve  — mount a tree per request and serve it over HTTP`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		renderCmd(),
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// newLogger builds the CLI's slog logger.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// sampleTree is mounted when no tree file is given.
func sampleTree() *vdom.VNode {
	return vdom.CreateElement("app", nil,
		vdom.Div(vdom.ID("main"), vdom.Class("demo"),
			vdom.H1("recreate"),
			vdom.P("This tree was mounted one fiber at a time."),
			vdom.Ul(
				vdom.Li("element builder"),
				vdom.Li("fiber tree"),
				vdom.Li("cooperative scheduler"),
			),
		),
	)
}
