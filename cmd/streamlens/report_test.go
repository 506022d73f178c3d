package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/streamlens/internal/config"
	"github.com/nao1215/streamlens/internal/report"
)

// sampleCSV is a minimal catalog export for CLI tests.
const sampleCSV = `show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in,description
s1,Movie,First Film,Jane Doe,Alice Example,India,"September 9, 2021",2020,PG-13,90 min,Dramas,A quiet film about hope.
s2,TV Show,Second Show,,Bob Example,Japan,"January 5, 2020",2021,TV-MA,7 Seasons,Crime TV Shows,A detective hunts a killer.
s3,Movie,Third Film,John Roe,Alice Example,India,"March 1, 2019",2020,R,120 min,Documentaries,A true story.
`

// writeSampleCSV writes the fixture dataset into a temp directory.
func writeSampleCSV(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "titles.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

// TestNewReportCmd tests the report command creation.
func TestNewReportCmd(t *testing.T) {
	t.Parallel()

	cmd := NewReportCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "report [report-name...]" {
			t.Errorf("unexpected use: %q", cmd.Use)
		}
	})

	t.Run("has expected flags", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{
			"input", "db-dir", "year", "country", "director", "actor",
			"keywords", "top", "years", "seasons", "config",
			"json", "markdown", "csv", "output", "no-save", "concurrency",
		} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected flag %q", name)
			}
		}
	})
}

func TestExpandReportNames(t *testing.T) {
	t.Parallel()

	t.Run("all expands to every report in menu order", func(t *testing.T) {
		t.Parallel()

		names := expandReportNames([]string{"all"})
		want := report.Names()
		if len(names) != len(want) {
			t.Fatalf("expected %d names, got %d", len(want), len(names))
		}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("name %d: expected %q, got %q", i, want[i], names[i])
			}
		}
	})

	t.Run("duplicates are dropped", func(t *testing.T) {
		t.Parallel()

		names := expandReportNames([]string{"count-by-type", "count-by-type", "by-year"})
		if len(names) != 2 {
			t.Errorf("expected 2 names, got %v", names)
		}
	})
}

func TestBuildParams(t *testing.T) {
	t.Parallel()

	t.Run("flags override config file defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewReportCmd()
		if err := cmd.Flags().Parse([]string{"--top", "7", "--year", "2020"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg := config.NewConfig()
		cfg.ReportDefaults = &config.File{
			Defaults: config.ReportOptions{Top: 3, Country: "India"},
		}

		p, err := buildParams(cmd, cfg, report.NameTopCountries)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.TopN != 7 {
			t.Errorf("expected flag top 7 to win, got %d", p.TopN)
		}
		if p.Year != 2020 {
			t.Errorf("expected year 2020, got %d", p.Year)
		}
		if p.Country != "India" {
			t.Errorf("expected config country India, got %q", p.Country)
		}
	})

	t.Run("per-report config beats shared defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewReportCmd()

		cfg := config.NewConfig()
		cfg.ReportDefaults = &config.File{
			Defaults: config.ReportOptions{Top: 3},
			Reports: map[string]config.ReportOptions{
				report.NameTopActorsByCountry: {Country: "Japan", Top: 10},
			},
		}

		p, err := buildParams(cmd, cfg, report.NameTopActorsByCountry)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Country != "Japan" || p.TopN != 10 {
			t.Errorf("expected Japan/10, got %q/%d", p.Country, p.TopN)
		}
	})
}

// TestRunReportCmd exercises the command end to end against a CSV fixture.
func TestRunReportCmd(t *testing.T) {
	csvPath := writeSampleCSV(t)

	t.Run("count-by-type writes a text table", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "out.txt")

		root := NewRootCmd()
		root.SetArgs([]string{
			"report", "count-by-type",
			"-i", csvPath,
			"-o", outPath,
			"--no-save",
			"--db-dir", t.TempDir(),
		})
		if err := root.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outPath) //nolint:gosec // Test-owned path
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}

		out := string(data)
		for _, want := range []string{"COUNT-BY-TYPE", "Movie", "TV Show", "2"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q:\n%s", want, out)
			}
		}
	})

	t.Run("json output is selected by flag", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "out.json")

		root := NewRootCmd()
		root.SetArgs([]string{
			"report", "genre-counts",
			"-i", csvPath,
			"-o", outPath,
			"--json",
			"--no-save",
			"--db-dir", t.TempDir(),
		})
		if err := root.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outPath) //nolint:gosec // Test-owned path
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}
		if !strings.Contains(string(data), `"report": "genre-counts"`) {
			t.Errorf("expected pretty JSON output, got:\n%s", string(data))
		}
	})

	t.Run("unknown report fails", func(t *testing.T) {
		root := NewRootCmd()
		root.SetArgs([]string{
			"report", "no-such-report",
			"-i", csvPath,
			"--no-save",
			"--db-dir", t.TempDir(),
		})
		if err := root.Execute(); err == nil {
			t.Error("expected an error for an unknown report")
		}
	})

	t.Run("missing parameter fails", func(t *testing.T) {
		root := NewRootCmd()
		root.SetArgs([]string{
			"report", "by-year",
			"-i", csvPath,
			"--no-save",
			"--db-dir", t.TempDir(),
		})
		if err := root.Execute(); err == nil {
			t.Error("expected an error when --year is missing")
		}
	})

	t.Run("no report name fails validation", func(t *testing.T) {
		root := NewRootCmd()
		root.SetArgs([]string{"report", "-i", csvPath})
		if err := root.Execute(); err == nil {
			t.Error("expected a configuration error without report names")
		}
	})

	t.Run("conflicting formats fail validation", func(t *testing.T) {
		root := NewRootCmd()
		root.SetArgs([]string{
			"report", "count-by-type",
			"-i", csvPath,
			"--json", "--markdown",
		})
		if err := root.Execute(); err == nil {
			t.Error("expected a configuration error for conflicting formats")
		}
	})

	t.Run("missing dataset fails", func(t *testing.T) {
		root := NewRootCmd()
		root.SetArgs([]string{
			"report", "count-by-type",
			"--db-dir", t.TempDir(),
			"--no-save",
		})
		if err := root.Execute(); err == nil {
			t.Error("expected an error when no dataset is available")
		}
	})
}
