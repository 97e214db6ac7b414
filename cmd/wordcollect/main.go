// Command wordcollect converts tiered word-count passages into a
// words_collection.json file, watches a source for changes, or serves
// collections over HTTP.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/wordcollect/internal/config"
	"github.com/dgallion1/wordcollect/internal/parser"
	"github.com/dgallion1/wordcollect/internal/pipeline"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit code. Errors go through
// the configured logger; configuration errors, raised before a logger exists,
// are printed plainly.
func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	cmd := a.newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if a.log != nil {
			a.log.Error("wordcollect failed", "error", err)
		} else {
			fmt.Fprintln(stderr, "error:", err)
		}
		return 1
	}
	return 0
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg    config.Config
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func (a *app) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "wordcollect",
		Short:             "Collect tiered word-count passages into words_collection.json",
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE:              a.runConvert,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	rootCmd.PersistentFlags().String("input", "", "source file (default $WORDCOLLECT_INPUT or words.txt)")
	rootCmd.PersistentFlags().String("output", "", "collection file (default $WORDCOLLECT_OUTPUT or words_collection.json)")

	rootCmd.AddCommand(
		a.newConvertCmd(),
		a.newWatchCmd(),
		a.newServeCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.InputPath, _ = flags.GetString("input")
	}
	if flags.Changed("output") {
		cfg.OutputPath, _ = flags.GetString("output")
	}
	if f := flags.Lookup("port"); f != nil && f.Changed {
		cfg.Port = f.Value.String()
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.log = newLogger(a.stderr, cfg)
	return nil
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func (a *app) converter() *pipeline.Converter {
	return pipeline.NewConverter(a.log, parser.Options{
		PDFFallbackPdftotext: a.cfg.PDFFallbackPdftotext,
	})
}
