package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"drilldown/cmd/drilldown/ui"
	"drilldown/internal/ingest"
	"drilldown/internal/logging"
	"drilldown/internal/navigation"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// validateDir accepts only existing directories.
func validateDir(path string) error {
	if path == "" {
		return errors.New("Please enter a directory")
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return errors.New("Directory does not exist")
	}
	return nil
}

// runInteractive loads the tree behind a progress view, then starts the
// drill-down session.
func runInteractive(cmd *cobra.Command, args []string, opts *options) error {
	ctx := cmd.Context()
	cfg := opts.cfg
	printer := NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	term := ui.NewTerminal(ui.NewStyles(ui.ThemeByName(cfg.Display.Theme)), ui.WithOutput(cmd.OutOrStdout()))

	source := ingest.Source{
		Dir:       opts.sourceDir(args),
		Recursive: cfg.Source.Recursive,
		Pattern:   cfg.Source.Pattern,
	}
	if source.Dir == "" {
		dir, err := term.AskDirectory(ctx, "Please provide the analytics directory:", "", validateDir)
		if err != nil {
			return err
		}
		source.Dir = dir
		if !cmd.Flags().Changed("recursive") {
			recursive, err := term.Confirm(ctx, "Check directories recursively?", cfg.Source.Recursive)
			if err != nil {
				return err
			}
			source.Recursive = recursive
		}
	}

	res, err := term.Load(ctx, func(ctx context.Context, progress ingest.Progress) (*ingest.Result, error) {
		return ingest.Load(ctx, ingest.Options{
			Source:      source,
			Prefix:      cfg.Source.Prefix,
			Concurrency: cfg.Source.ReadConcurrency,
			Progress:    progress,
		})
	})
	if err != nil {
		return err
	}
	reportStats(printer, res.Stats)

	controller := navigation.NewController(res.Tree, term,
		navigation.WithChartFloor(cfg.Display.ChartFloor),
		navigation.WithPageSize(cfg.Display.PageSize),
	)
	outcome, err := controller.Run(ctx)
	logging.Get(logging.CategoryNavigation).Infow("session finished",
		"run_id", res.Stats.RunID,
		"outcome", outcome.String(),
		"prompts", controller.Prompts(),
	)
	return err
}

func reportStats(printer *Printer, s ingest.Stats) {
	printer.Success("Loaded %s across %s from %s",
		plural(s.Days, "day"),
		plural(s.Records, "record"),
		plural(s.Files, "file"),
	)
	if s.Skipped > 0 {
		printer.Warning("Skipped %s without a usable event name", plural(s.Skipped, "record"))
	}
	if s.Replaced > 0 {
		printer.Warning("%s replaced an earlier file for the same day", plural(s.Replaced, "file"))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%s %ss", humanize.Comma(int64(n)), unit)
}
