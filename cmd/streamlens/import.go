package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/streamlens/internal/config"
	"github.com/nao1215/streamlens/internal/database"
	"github.com/nao1215/streamlens/internal/loader"
	"github.com/nao1215/streamlens/internal/log"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Import a catalog CSV into the local database",
		Long: `Import loads a catalog CSV export into the local SQLite database.

Once imported, reports can run without --input and report runs are
recorded for the history command. Re-importing the same dataset updates
existing records in place; it never duplicates them.

Examples:
  # Import the Netflix titles dataset
  streamlens import netflix_titles.csv

  # Import into a custom database directory
  streamlens import netflix_titles.csv --db-dir ./data`,
		Args: cobra.ExactArgs(1),
		RunE: runImportCmd,
	}

	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory for the catalog database")

	return cmd
}

// runImportCmd executes the import command.
func runImportCmd(cmd *cobra.Command, args []string) error {
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}

	logger, _ := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	result, err := loader.NewCSVLoader(loader.WithLogger(logger)).Load(args[0])
	if err != nil {
		return err
	}

	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	imported, err := db.ImportRecords(ctx, result.Records)
	if err != nil {
		return fmt.Errorf("failed to import records: %w", err)
	}

	total, err := db.CountRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d record(s) from %s\n", imported, args[0])
	if len(result.Skipped) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Skipped %d malformed row(s)\n", len(result.Skipped))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Catalog now holds %d record(s) at %s\n", total, db.Path())

	return nil
}
