package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"drilldown/internal/config"
	"drilldown/internal/logging"
	"drilldown/internal/navigation"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// options holds the persistent flags shared by every command.
type options struct {
	configPath string
	verbose    bool
	recursive  bool
	pattern    string
	theme      string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "drilldown [dir]",
		Short: "Drill into per-day event logs by year, month, day and hour",
		Long: `drilldown reads a directory of per-day event-log files (analytic<yyyyMd>.json,
optionally gzip or xz compressed), counts how often each action occurred per
hour, and lets you drill down from years to a single day's hourly chart.

Run without a directory to be asked for one.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, args, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default: ./.drilldown.yaml or ~/.config/drilldown/config.yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Write debug logs")
	flags.BoolVarP(&opts.recursive, "recursive", "r", false, "Scan subdirectories too")
	flags.StringVar(&opts.pattern, "pattern", "", "Glob for event-log file names (default from config: analytic*)")
	flags.StringVar(&opts.theme, "theme", "", "Color theme: auto, light or dark")

	rootCmd.AddCommand(newSummaryCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// resolve loads the config file, then applies flags on top of it.
func (o *options) resolve(cmd *cobra.Command) error {
	path := o.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("recursive") {
		cfg.Source.Recursive = o.recursive
	}
	if flags.Changed("pattern") {
		cfg.Source.Pattern = o.pattern
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = o.theme
	}
	if o.verbose {
		cfg.Logging.DebugMode = true
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logging.Get(logging.CategoryBoot).Infow("configuration resolved",
		"config", path,
		"command", cmd.Name(),
		"dir", cfg.Source.Dir,
		"recursive", cfg.Source.Recursive,
		"pattern", cfg.Source.Pattern,
	)

	o.cfg = cfg
	return nil
}

// sourceDir picks the positional directory over the configured one.
func (o *options) sourceDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return o.cfg.Source.Dir
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil, errors.Is(err, navigation.ErrAborted):
	case errors.Is(err, context.Canceled):
		os.Exit(130)
	default:
		NewPrinter(os.Stdout, os.Stderr).Error("%v", err)
		os.Exit(1)
	}
}
