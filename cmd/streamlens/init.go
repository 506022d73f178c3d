package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/streamlens/internal/config"
)

//go:embed templates/streamlens.yaml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new streamlens configuration file",
		Long: `Initialize creates a new .streamlens configuration file in the current directory.

The generated file includes:
- Default parameter values shared by every report
- Commented examples for per-report overrides
- Documentation for all available options

Examples:
  # Create .streamlens in current directory
  streamlens init

  # Create config file at a specific path
  streamlens init -o myconfig.yaml

  # Force overwrite existing file
  streamlens init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/streamlens.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to pin report parameters such as:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - A home country for country-scoped reports")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Row limits for ranked reports")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Keywords for the categorization report")

	return nil
}
