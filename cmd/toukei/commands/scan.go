// Package commands implements CLI command handlers for toukei.
package commands

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toukei-tech/toukei/internal/config"
	"github.com/toukei-tech/toukei/pkg/export"
	"github.com/toukei-tech/toukei/pkg/lang"
	"github.com/toukei-tech/toukei/pkg/pipeline"
	"github.com/toukei-tech/toukei/pkg/stats"
)

// ScanCommand holds flag state for the scan command.
type ScanCommand struct {
	configFile string
	types      []string
	excludes   []string
	workers    uint
	async      bool
	format     string
	output     string
	chart      string
	rulesFile  string

	ignoreBlanks   bool
	ignoreComments bool
	noColor        bool
	logLevel       string
}

// NewScanCommand creates the scan subcommand.
func NewScanCommand() *cobra.Command {
	sc := &ScanCommand{}

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Count a directory tree and report per-language totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return sc.run(cmd, args, os.Stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&sc.configFile, "config", "c", "", "config file (default .toukei.yaml)")
	flags.StringSliceVarP(&sc.types, "types", "t", nil, "language names to include (default all)")
	flags.StringSliceVarP(&sc.excludes, "exclude", "e", nil, "paths, substrings or globs to exclude")
	flags.UintVarP(&sc.workers, "workers", "w", 0, "worker count (0 = host parallelism)")
	flags.BoolVar(&sc.async, "async", false, "use the streaming producer/consumer pipeline")
	flags.StringVarP(&sc.format, "format", "f", "", "output format: text, json or csv")
	flags.StringVarP(&sc.output, "output", "o", "", "write json/csv output to a file")
	flags.StringVar(&sc.chart, "chart", "", "write an HTML pie chart to a file")
	flags.StringVar(&sc.rulesFile, "rules", "", "YAML file with extra language rules")
	flags.BoolVar(&sc.ignoreBlanks, "ignore-blanks", false, "hide the blank column")
	flags.BoolVar(&sc.ignoreComments, "ignore-comments", false, "hide the comment column")
	flags.BoolVar(&sc.noColor, "no-color", false, "disable colored output")
	flags.StringVar(&sc.logLevel, "log-level", "", "log level: debug, info, warn or error")

	return cmd
}

func (sc *ScanCommand) run(cmd *cobra.Command, args []string, out io.Writer) error {
	cfg, err := sc.loadConfig(cmd, args)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Logging.Level)

	registry := lang.NewRegistry()
	if cfg.RulesFile != "" {
		if err := registry.LoadRulesFile(cfg.RulesFile); err != nil {
			return err
		}
	}

	mode := pipeline.ModeSync
	if cfg.EnableAsync {
		mode = pipeline.ModeAsync
	}

	logger.Debug("starting scan", "mode", modeName(mode), "paths", cfg.Paths, "workers", cfg.NumWorkers)

	report, err := pipeline.Run(mode, registry, pipeline.Options{
		Paths:        cfg.Paths,
		Types:        cfg.Types,
		ExcludeFiles: cfg.ExcludeFiles,
		Workers:      int(cfg.NumWorkers),
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	if cfg.Output.Chart != "" {
		if err := export.SaveChart(report, cfg.Output.Chart, export.DefaultChartTopN); err != nil {
			return err
		}
	}

	return sc.emit(cfg, report, out)
}

// loadConfig layers explicit flags over file/environment configuration.
func (sc *ScanCommand) loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(sc.configFile)
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Paths = args
	}

	flags := cmd.Flags()

	if flags.Changed("types") {
		cfg.Types = sc.types
	}

	if flags.Changed("exclude") {
		cfg.ExcludeFiles = sc.excludes
	}

	if flags.Changed("workers") {
		cfg.NumWorkers = sc.workers
	}

	if flags.Changed("async") {
		cfg.EnableAsync = sc.async
	}

	if flags.Changed("format") {
		cfg.Output.Format = sc.format
	}

	if flags.Changed("output") {
		cfg.Output.Path = sc.output
	}

	if flags.Changed("chart") {
		cfg.Output.Chart = sc.chart
	}

	if flags.Changed("rules") {
		cfg.RulesFile = sc.rulesFile
	}

	if flags.Changed("ignore-blanks") {
		cfg.IgnoreBlanks = sc.ignoreBlanks
	}

	if flags.Changed("ignore-comments") {
		cfg.IgnoreComments = sc.ignoreComments
	}

	if flags.Changed("no-color") {
		cfg.Output.NoColor = sc.noColor
	}

	if flags.Changed("log-level") {
		cfg.Logging.Level = sc.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (sc *ScanCommand) emit(cfg *config.Config, report *stats.Report, out io.Writer) error {
	if cfg.Output.Format == export.FormatText {
		renderer := export.Renderer{
			IgnoreBlanks:   cfg.IgnoreBlanks,
			IgnoreComments: cfg.IgnoreComments,
			NoColor:        cfg.Output.NoColor,
		}
		renderer.Render(report, out)

		return nil
	}

	if cfg.Output.Path != "" {
		return export.Save(report, cfg.Output.Path, cfg.Output.Format)
	}

	exporter, err := export.ForFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	return exporter.Export(report, out)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level

	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func modeName(mode pipeline.Mode) string {
	if mode == pipeline.ModeAsync {
		return "async"
	}

	return "sync"
}
