// Package main provides the entry point for the streamlens CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for streamlens.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streamlens",
		Short: "Reporting tool for streaming catalog datasets",
		Long: `streamlens runs read-only reports over a flat catalog of movies and
TV shows, such as the public Netflix titles dataset.

Records are loaded from a CSV export with --input, or from the local
SQLite catalog created by the import command. Run 'streamlens list'
to see every available report.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}
