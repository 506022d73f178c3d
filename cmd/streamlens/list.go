package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nao1215/streamlens/internal/report"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every available report",
		Long: `List prints every report the report command can run, together with
the parameter flags each one reads.

Examples:
  streamlens list
  streamlens report by-year --year 2021 -i netflix_titles.csv`,
		Args: cobra.NoArgs,
		RunE: runListCmd,
	}
}

// runListCmd executes the list command.
func runListCmd(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "NAME\tPARAMETERS\tDESCRIPTION")
	for _, def := range report.Definitions() {
		hint := def.ParamHint
		if hint == "" {
			hint = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", def.Name, hint, def.Description)
	}

	return w.Flush()
}
