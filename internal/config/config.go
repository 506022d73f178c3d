package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultConcurrency is the number of reports run at once when several
	// are requested. Reports are CPU-bound passes over an in-memory slice,
	// so a small fixed limit keeps `report all` predictable without flags.
	DefaultConcurrency = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "streamlens"
)

// Config holds all configuration options for streamlens.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., SourceConfig, OutputConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// Reports is the list of report names to run. The single entry "all"
	// expands to every registered report.
	Reports []string

	// DatasetPath is the path to the source CSV file. When empty, records
	// are loaded from the catalog database instead.
	DatasetPath string

	// DBDir is the directory holding the SQLite catalog database.
	// Defaults to the XDG data directory (~/.local/share/streamlens on Linux).
	DBDir string

	// SaveToDB indicates whether report runs are persisted to the database
	// for later inspection via the history command.
	SaveToDB bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// Concurrency is the number of reports run concurrently.
	Concurrency int

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .streamlens in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// ReportDefaults holds per-report parameter defaults loaded from the
	// config file. This is populated by LoadConfigFile.
	ReportDefaults *File

	// JSONOutput enables JSON report output instead of the aligned text
	// format (default). Mutually exclusive with MarkdownOutput and CSVOutput.
	JSONOutput bool

	// MarkdownOutput enables GitHub Flavored Markdown output with tables
	// and pie charts. Mutually exclusive with JSONOutput and CSVOutput.
	MarkdownOutput bool

	// CSVOutput enables CSV output suitable for spreadsheets and pipelines.
	// Mutually exclusive with JSONOutput and MarkdownOutput.
	CSVOutput bool

	// OutputFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	OutputFile string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because some defaults are non-zero (concurrency, DB directory).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Concurrency: DefaultConcurrency,
		DBDir:       XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for streamlens.
// On Linux: ~/.local/share/streamlens
// On macOS: ~/Library/Application Support/streamlens
// On Windows: %LOCALAPPDATA%\streamlens
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for streamlens.
// On Linux: ~/.config/streamlens
// On macOS: ~/Library/Application Support/streamlens
// On Windows: %APPDATA%\streamlens
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for streamlens.
// On Linux: ~/.cache/streamlens
// On macOS: ~/Library/Caches/streamlens
// On Windows: %LOCALAPPDATA%\streamlens\cache
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any records are loaded.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if len(c.Reports) == 0 {
		return ErrNoReport
	}

	// Exactly one output format may be chosen; text is the fallback.
	formats := 0
	for _, enabled := range []bool{c.JSONOutput, c.MarkdownOutput, c.CSVOutput} {
		if enabled {
			formats++
		}
	}
	if formats > 1 {
		return ErrConflictingFormats
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	return nil
}
