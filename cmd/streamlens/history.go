package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/streamlens/internal/config"
	"github.com/nao1215/streamlens/internal/database"
	"github.com/nao1215/streamlens/internal/report"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [report-name]",
		Short: "Show saved report runs",
		Long: `History lists report runs recorded in the catalog database,
newest first. Pass a report name to narrow the listing, or --show with
a run ID to print that run's stored result.

Examples:
  # List every saved run
  streamlens history

  # List runs of one report
  streamlens history top-countries

  # Print the stored result of run 3
  streamlens history --show 3`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().Int64("show", 0,
		"Print the stored result of the run with this ID")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory for the catalog database")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}

	runID, err := cmd.Flags().GetInt64("show")
	if err != nil {
		return err
	}

	db, err := database.Open(dbDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if runID > 0 {
		return showRun(ctx, cmd, db, runID)
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	return listRuns(ctx, cmd, db, name)
}

// listRuns prints the run history table.
func listRuns(ctx context.Context, cmd *cobra.Command, db *database.CatalogDB, name string) error {
	runs, err := db.GetRunHistory(ctx, name)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved report runs.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREPORT\tROWS\tRUN AT")
	for _, run := range runs {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n",
			run.ID, run.Report, run.RowCount, run.Timestamp.Format(time.DateTime))
	}
	return w.Flush()
}

// showRun prints one stored result in the text format.
func showRun(ctx context.Context, cmd *cobra.Command, db *database.CatalogDB, id int64) error {
	table, err := db.GetRunResult(ctx, id)
	if err != nil {
		return err
	}
	if table == nil {
		return fmt.Errorf("no saved run with ID %d", id)
	}

	_, err = report.NewTextWriter(cmd.OutOrStdout(), report.WithShowEmpty(true)).Write(table)
	return err
}
