package main

import (
	"errors"

	"drilldown/internal/ingest"
	"drilldown/internal/report"

	"github.com/spf13/cobra"
)

func newSummaryCmd(opts *options) *cobra.Command {
	var (
		format string
		year   int
		months bool
		width  int
	)

	cmd := &cobra.Command{
		Use:   "summary [dir]",
		Short: "Print all-time and per-year totals without prompting",
		Long: `Prints the same aggregate tables the interactive session shows, for all time
and for every year (or one year with --year), optionally broken down by month.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			dir := opts.sourceDir(args)
			if dir == "" {
				return errors.New("no source directory: pass one or set source.dir in the config")
			}

			res, err := ingest.Load(cmd.Context(), ingest.Options{
				Source: ingest.Source{
					Dir:       dir,
					Recursive: opts.cfg.Source.Recursive,
					Pattern:   opts.cfg.Source.Pattern,
				},
				Prefix:      opts.cfg.Source.Prefix,
				Concurrency: opts.cfg.Source.ReadConcurrency,
			})
			if err != nil {
				return err
			}
			reportStats(NewPrinter(cmd.ErrOrStderr(), cmd.ErrOrStderr()), res.Stats)

			return report.Write(cmd.OutOrStdout(), res.Tree, report.Options{
				Format: f,
				Year:   year,
				Months: months,
				Style:  opts.cfg.Display.Theme,
				Width:  width,
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatTable), "Output format: table or markdown")
	cmd.Flags().IntVar(&year, "year", 0, "Only report this year")
	cmd.Flags().BoolVar(&months, "months", false, "Add a table per month")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for markdown output")
	return cmd
}
