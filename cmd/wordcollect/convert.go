package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dgallion1/wordcollect/internal/collection"
	"github.com/dgallion1/wordcollect/internal/pipeline"
)

func (a *app) newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "convert",
		Short:   "Convert the source file into a collection file",
		Example: `  wordcollect convert --input words.txt --output words_collection.json`,
		Args:    cobra.NoArgs,
		RunE:    a.runConvert,
	}
}

func (a *app) runConvert(cmd *cobra.Command, _ []string) error {
	res, err := a.converter().Convert(cmd.Context(), a.cfg.InputPath, a.cfg.OutputPath)
	if err != nil {
		return err
	}
	printReport(a.stdout, res)
	return nil
}

// printReport writes the console summary for one conversion.
func printReport(w io.Writer, res *pipeline.Result) {
	fmt.Fprintf(w, "Successfully converted %s to %s format!\n", res.Input, pipeline.FormatFor(res.Output))
	fmt.Fprintln(w, "Total paragraphs by section:")
	for _, t := range collection.Tiers {
		fmt.Fprintf(w, "  %s: %d paragraphs\n", t, res.Collection.Count(t))
	}
}
