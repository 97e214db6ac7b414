package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dgallion1/wordcollect/internal/pipeline"
)

func (a *app) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Convert once, then again whenever the source file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := pipeline.NewWatcher(a.converter(), a.log, a.cfg.InputPath, a.cfg.OutputPath, a.cfg.WatchDebounce)
			w.OnResult = func(res *pipeline.Result) { printReport(a.stdout, res) }
			return w.Run(ctx)
		},
	}
}
