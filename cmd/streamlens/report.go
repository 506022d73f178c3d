package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/streamlens/internal/config"
	"github.com/nao1215/streamlens/internal/database"
	"github.com/nao1215/streamlens/internal/engine"
	"github.com/nao1215/streamlens/internal/loader"
	"github.com/nao1215/streamlens/internal/log"
	"github.com/nao1215/streamlens/internal/model"
	"github.com/nao1215/streamlens/internal/report"
)

// reportAll is the pseudo report name expanding to every registered report.
const reportAll = "all"

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [report-name...]",
		Short: "Run one or more catalog reports",
		Long: `Report runs read-only reports over the content catalog.

Records are loaded from the CSV file given with --input, or from the
local catalog database populated by 'streamlens import'. Malformed rows
are skipped with a warning; they never abort a run.

Examples:
  # Count titles per content type
  streamlens report count-by-type -i netflix_titles.csv

  # Run every report against the imported catalog
  streamlens report all

  # Reports that take parameters
  streamlens report by-year --year 2020 -i netflix_titles.csv
  streamlens report top-actors-by-country --country India --top 10
  streamlens report categorize-by-keyword --keywords kill,violence

  # Output formats
  streamlens report genre-counts --json
  streamlens report count-by-type --markdown -o report.md

Configuration file (.streamlens) example:
  defaults:
    top: 5
  reports:
    top-actors-by-country:
      country: India
      top: 10
    actor-recent-movies:
      actor: Salman Khan`,
		Args: cobra.ArbitraryArgs,
		RunE: runReportCmd,
	}

	// Record source flags
	cmd.Flags().StringP("input", "i", "",
		"Path to the catalog CSV file (default: the imported catalog database)")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory for the catalog database")

	// Report parameter flags
	cmd.Flags().IntP("year", "y", 0,
		"Release year for year-filtered reports")
	cmd.Flags().String("country", "",
		"Country for country-scoped reports")
	cmd.Flags().String("director", "",
		"Exact director name for the by-director report")
	cmd.Flags().String("actor", "",
		"Exact actor name for actor-scoped reports")
	cmd.Flags().StringSlice("keywords", nil,
		"Comma-separated keywords for categorize-by-keyword")
	cmd.Flags().IntP("top", "t", 0,
		"Row limit override for ranked reports")
	cmd.Flags().Int("years", 0,
		"Look-back window in years for date-relative reports")
	cmd.Flags().Int("seasons", 0,
		"Season threshold for the long-running-shows report")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .streamlens in current or home directory)")

	// Output flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown and --csv)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown with tables and pie charts (mutually exclusive with --json and --csv)")
	cmd.Flags().Bool("csv", false,
		"Output CSV (mutually exclusive with --json and --markdown)")
	cmd.Flags().StringP("output", "o", "",
		"Write report output to specified file path (creates directories if needed)")

	// Run behavior flags
	cmd.Flags().Bool("no-save", false,
		"Do not record report runs in the catalog database")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency,
		"Number of reports run concurrently")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildReportConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with warning capture for the load summary
	verbose := getVerboseFlag(cmd)
	logger, captured := log.NewLogger(os.Stderr, verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runReports(ctx, cmd, cfg, logger, captured)
}

// buildReportConfig creates a Config from cobra command flags.
func buildReportConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.DatasetPath, err = cmd.Flags().GetString("input")
	if err != nil {
		return nil, err
	}

	cfg.DBDir, err = cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load report defaults from the config file.
	// If the user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty defaults if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.ReportDefaults, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.ReportDefaults = &config.File{
			Reports: make(map[string]config.ReportOptions),
		}
	}

	// The config file may pin a default dataset; an explicit --input wins.
	if cfg.DatasetPath == "" {
		cfg.DatasetPath = cfg.ReportDefaults.Dataset
	}

	cfg.JSONOutput, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownOutput, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.CSVOutput, err = cmd.Flags().GetBool("csv")
	if err != nil {
		return nil, err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are report names; "all" expands to everything.
	cfg.Reports = expandReportNames(args)

	return cfg, nil
}

// expandReportNames resolves the "all" pseudo name and drops duplicates
// while preserving the registry's menu order for "all".
func expandReportNames(args []string) []string {
	seen := make(map[string]bool, len(args))
	names := make([]string, 0, len(args))

	for _, arg := range args {
		if arg == reportAll {
			for _, name := range report.Names() {
				if !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
			continue
		}
		if !seen[arg] {
			seen[arg] = true
			names = append(names, arg)
		}
	}

	return names
}

// buildParams assembles the parameters for one report: config file defaults
// first, explicitly set flags on top.
func buildParams(cmd *cobra.Command, cfg *config.Config, name string) (report.Params, error) {
	var p report.Params

	if cfg.ReportDefaults != nil {
		opts := cfg.ReportDefaults.GetReportOptions(name)
		p.Year = opts.Year
		p.Country = opts.Country
		p.Director = opts.Director
		p.Actor = opts.Actor
		p.Keywords = opts.Keywords
		p.TopN = opts.Top
		p.Years = opts.Years
		p.Seasons = opts.Seasons
	}

	flags := cmd.Flags()
	var err error

	if flags.Changed("year") {
		if p.Year, err = flags.GetInt("year"); err != nil {
			return p, err
		}
	}
	if flags.Changed("country") {
		if p.Country, err = flags.GetString("country"); err != nil {
			return p, err
		}
	}
	if flags.Changed("director") {
		if p.Director, err = flags.GetString("director"); err != nil {
			return p, err
		}
	}
	if flags.Changed("actor") {
		if p.Actor, err = flags.GetString("actor"); err != nil {
			return p, err
		}
	}
	if flags.Changed("keywords") {
		if p.Keywords, err = flags.GetStringSlice("keywords"); err != nil {
			return p, err
		}
	}
	if flags.Changed("top") {
		if p.TopN, err = flags.GetInt("top"); err != nil {
			return p, err
		}
	}
	if flags.Changed("years") {
		if p.Years, err = flags.GetInt("years"); err != nil {
			return p, err
		}
	}
	if flags.Changed("seasons") {
		if p.Seasons, err = flags.GetInt("seasons"); err != nil {
			return p, err
		}
	}

	return p, nil
}

// loadRecords loads the catalog from the configured source.
// A CSV path takes priority; otherwise the imported catalog database is used.
func loadRecords(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]model.ContentRecord, error) {
	if cfg.DatasetPath != "" {
		result, err := loader.NewCSVLoader(loader.WithLogger(logger)).Load(cfg.DatasetPath)
		if err != nil {
			return nil, err
		}

		logger.Info("catalog loaded from CSV",
			"path", cfg.DatasetPath,
			"records", len(result.Records),
			"skipped", len(result.Skipped),
		)
		return result.Records, nil
	}

	db, err := database.Open(cfg.DBDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrNoDataset, err)
	}
	defer db.Close()

	records, err := db.LoadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from database: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: the catalog database is empty", config.ErrNoDataset)
	}

	logger.Info("catalog loaded from database",
		"dir", cfg.DBDir,
		"records", len(records),
	)
	return records, nil
}

// runReports loads the catalog, executes every requested report, and writes
// the results in the configured format.
func runReports(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, captured *log.CaptureHandler) error {
	records, err := loadRecords(ctx, cfg, logger)
	if err != nil {
		return err
	}

	requests := make([]engine.Request, 0, len(cfg.Reports))
	for _, name := range cfg.Reports {
		params, err := buildParams(cmd, cfg, name)
		if err != nil {
			return err
		}
		requests = append(requests, engine.Request{Name: name, Params: params})
	}

	startTime := time.Now()

	results, err := engine.New(
		engine.WithConcurrency(cfg.Concurrency),
		engine.WithLogger(logger),
		engine.WithContinueOnError(true),
	).Run(ctx, records, requests)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer closeOut()

	writer := newResultWriter(cfg, out)

	// Open the catalog database once for the whole run. Failing to save
	// history never fails the reports themselves.
	var db *database.CatalogDB
	if cfg.SaveToDB {
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			logger.Warn("run history disabled", "error", err)
		} else {
			defer db.Close()
		}
	}

	failed := 0
	for i, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "report %s: %v\n", result.Name, result.Err)
			continue
		}
		if _, err := writer.Write(result.Table); err != nil {
			return fmt.Errorf("failed to write report %s: %w", result.Name, err)
		}
		if db != nil {
			if err := db.SaveReportRun(ctx, result.Name, requests[i].Params, result.Table); err != nil {
				logger.Error("failed to save report run", "report", result.Name, "error", err)
			}
		}
	}

	logger.Info("reports finished",
		"requested", len(requests),
		"failed", failed,
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	// Skipped-row warnings went to stderr as they happened; repeat the
	// count so it isn't lost above a tall report.
	if n := captured.WarningCount(); n > 0 {
		fmt.Fprintf(os.Stderr, "\n%d warning(s) during this run (rerun with --verbose for detail)\n", n)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d reports failed", failed, len(requests))
	}
	return nil
}

// openOutput returns the destination writer for report output.
// When path is empty, output goes to stdout and close is a no-op.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// newResultWriter picks the output format. Text is the default.
func newResultWriter(cfg *config.Config, out io.Writer) report.Writer {
	switch {
	case cfg.JSONOutput:
		return report.NewJSONWriter(out, report.WithPrettyPrint())
	case cfg.MarkdownOutput:
		return report.NewMarkdownWriter(out)
	case cfg.CSVOutput:
		return report.NewCSVWriter(out)
	default:
		return report.NewTextWriter(out)
	}
}
