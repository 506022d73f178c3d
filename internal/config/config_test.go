package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.Concurrency != DefaultConcurrency {
		t.Errorf("expected concurrency %d, got %d", DefaultConcurrency, cfg.Concurrency)
	}
	if cfg.DBDir == "" {
		t.Error("expected a default database directory")
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := NewConfig()
		cfg.Reports = []string{"count-by-type"}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "valid config passes",
			mutate: func(*Config) {},
		},
		{
			name:    "no report",
			mutate:  func(c *Config) { c.Reports = nil },
			wantErr: ErrNoReport,
		},
		{
			name: "json and markdown conflict",
			mutate: func(c *Config) {
				c.JSONOutput = true
				c.MarkdownOutput = true
			},
			wantErr: ErrConflictingFormats,
		},
		{
			name: "csv and json conflict",
			mutate: func(c *Config) {
				c.CSVOutput = true
				c.JSONOutput = true
			},
			wantErr: ErrConflictingFormats,
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.Concurrency = 0 },
			wantErr: ErrInvalidConcurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(cfg)

			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestXDGDirs(t *testing.T) {
	t.Parallel()

	for name, dir := range map[string]string{
		"data":   XDGDataDir(),
		"config": XDGConfigDir(),
		"cache":  XDGCacheDir(),
	} {
		if filepath.Base(dir) != AppName {
			t.Errorf("%s dir %q does not end with %q", name, dir, AppName)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads defaults and per-report overrides", func(t *testing.T) {
		t.Parallel()

		content := `
dataset: titles.csv
defaults:
  top: 3
  years: 10
reports:
  top-actors-by-country:
    country: India
    top: 10
  actor-recent-movies:
    actor: Alice Example
`
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("failed to load config file: %v", err)
		}

		t.Run("override wins over default", func(t *testing.T) {
			opts := cf.GetReportOptions("top-actors-by-country")
			if opts.Country != "India" {
				t.Errorf("expected country India, got %q", opts.Country)
			}
			if opts.Top != 10 {
				t.Errorf("expected top 10, got %d", opts.Top)
			}
			if opts.Years != 10 {
				t.Errorf("expected inherited years 10, got %d", opts.Years)
			}
		})

		t.Run("dataset path is read", func(t *testing.T) {
			if cf.Dataset != "titles.csv" {
				t.Errorf("expected dataset titles.csv, got %q", cf.Dataset)
			}
		})

		t.Run("unconfigured report gets defaults", func(t *testing.T) {
			opts := cf.GetReportOptions("count-by-type")
			if opts.Top != 3 {
				t.Errorf("expected default top 3, got %d", opts.Top)
			}
		})
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("reports: [not a map"), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected an error for invalid YAML")
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yml")
		if err := os.WriteFile(path, []byte("defaults: {}"), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("missing explicit path returns empty", func(t *testing.T) {
		if got := FindConfigFile(filepath.Join(t.TempDir(), "nope")); got != "" {
			t.Errorf("expected empty path, got %q", got)
		}
	})
}
