package database

import (
	"context"
	"testing"
	"time"

	"github.com/nao1215/streamlens/internal/model"
)

// openTestDB opens a fresh database in a temp directory and registers cleanup.
func openTestDB(t *testing.T) *CatalogDB {
	t.Helper()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})
	return db
}

func testRecords() []model.ContentRecord {
	return []model.ContentRecord{
		{
			ID:          "s1",
			Kind:        model.KindMovie,
			Title:       "First Film",
			Director:    "Jane Doe",
			Cast:        "Alice Example, Bob Example",
			Countries:   "India",
			DateAdded:   "September 9, 2021",
			ReleaseYear: 2020,
			Rating:      "PG-13",
			Duration:    "90 min",
			Genres:      "Dramas",
			Description: "A first film.",
		},
		{
			ID:          "s2",
			Kind:        model.KindTVShow,
			Title:       "Second Show",
			Countries:   "Japan",
			ReleaseYear: 2021,
			Rating:      "TV-MA",
			Duration:    "2 Seasons",
			Genres:      "Crime TV Shows",
		},
	}
}

func TestCatalogDBOpen(t *testing.T) {
	t.Parallel()

	t.Run("create and reopen", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		db, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		if err := db.Close(); err != nil {
			t.Fatalf("failed to close database: %v", err)
		}

		reopened, err := Open(dir, Options{CreateIfNotExists: false, EnableWAL: true})
		if err != nil {
			t.Fatalf("failed to reopen database: %v", err)
		}
		if err := reopened.Close(); err != nil {
			t.Fatalf("failed to close reopened database: %v", err)
		}
	})

	t.Run("missing database is an error without create", func(t *testing.T) {
		t.Parallel()

		if _, err := Open(t.TempDir(), Options{CreateIfNotExists: false}); err == nil {
			t.Error("expected an error opening a missing database")
		}
	})
}

func TestCatalogDBImportAndLoad(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()

	n, err := db.ImportRecords(ctx, testRecords())
	if err != nil {
		t.Fatalf("failed to import records: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 records imported, got %d", n)
	}

	t.Run("count matches import", func(t *testing.T) {
		count, err := db.CountRecords(ctx)
		if err != nil {
			t.Fatalf("failed to count records: %v", err)
		}
		if count != 2 {
			t.Errorf("expected 2 records, got %d", count)
		}
	})

	t.Run("load round-trips every field", func(t *testing.T) {
		records, err := db.LoadRecords(ctx)
		if err != nil {
			t.Fatalf("failed to load records: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}

		got := records[0]
		want := testRecords()[0]
		if got != want {
			t.Errorf("record mismatch:\n got %+v\nwant %+v", got, want)
		}
	})

	t.Run("reimport upserts instead of duplicating", func(t *testing.T) {
		updated := testRecords()
		updated[0].Title = "First Film (Director's Cut)"

		if _, err := db.ImportRecords(ctx, updated); err != nil {
			t.Fatalf("failed to reimport records: %v", err)
		}

		count, err := db.CountRecords(ctx)
		if err != nil {
			t.Fatalf("failed to count records: %v", err)
		}
		if count != 2 {
			t.Errorf("expected 2 records after reimport, got %d", count)
		}

		records, err := db.LoadRecords(ctx)
		if err != nil {
			t.Fatalf("failed to load records: %v", err)
		}
		if records[0].Title != "First Film (Director's Cut)" {
			t.Errorf("expected updated title, got %q", records[0].Title)
		}
	})
}

func TestCatalogDBReportRuns(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()

	table := model.NewResultTable("count-by-type", "type", "count")
	table.AddRow("Movie", "1")
	table.AddRow("TV Show", "1")

	if err := db.SaveReportRun(ctx, "count-by-type", map[string]int{"top": 5}, table); err != nil {
		t.Fatalf("failed to save report run: %v", err)
	}

	t.Run("history lists the run", func(t *testing.T) {
		history, err := db.GetRunHistory(ctx, "count-by-type")
		if err != nil {
			t.Fatalf("failed to get history: %v", err)
		}
		if len(history) != 1 {
			t.Fatalf("expected 1 run, got %d", len(history))
		}
		if history[0].Report != "count-by-type" {
			t.Errorf("expected report count-by-type, got %q", history[0].Report)
		}
		if history[0].RowCount != 2 {
			t.Errorf("expected row count 2, got %d", history[0].RowCount)
		}
		if history[0].Timestamp.IsZero() {
			t.Error("expected a parsed timestamp")
		}
	})

	t.Run("empty filter covers every report", func(t *testing.T) {
		history, err := db.GetRunHistory(ctx, "")
		if err != nil {
			t.Fatalf("failed to get history: %v", err)
		}
		if len(history) != 1 {
			t.Errorf("expected 1 run, got %d", len(history))
		}
	})

	t.Run("result round-trips by run ID", func(t *testing.T) {
		history, err := db.GetRunHistory(ctx, "count-by-type")
		if err != nil {
			t.Fatalf("failed to get history: %v", err)
		}

		got, err := db.GetRunResult(ctx, history[0].ID)
		if err != nil {
			t.Fatalf("failed to get run result: %v", err)
		}
		if got == nil {
			t.Fatal("expected a stored result table")
		}
		if got.Name != table.Name || got.Len() != table.Len() {
			t.Errorf("result mismatch: got %+v, want %+v", got, table)
		}
	})

	t.Run("unknown run ID returns nil", func(t *testing.T) {
		got, err := db.GetRunResult(ctx, 9999)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil result, got %+v", got)
		}
	})

	t.Run("report names are distinct", func(t *testing.T) {
		names, err := db.ListReportNames(ctx)
		if err != nil {
			t.Fatalf("failed to list report names: %v", err)
		}
		if len(names) != 1 || names[0] != "count-by-type" {
			t.Errorf("expected [count-by-type], got %v", names)
		}
	})
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "sqlite default format",
			input: "2024-06-01 12:30:45",
			want:  time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC),
		},
		{
			name:  "iso 8601 with Z",
			input: "2024-06-01T12:30:45Z",
			want:  time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC),
		},
		{
			name:  "unparsable returns zero time",
			input: "not a timestamp",
			want:  time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := parseTimestamp(tt.input); !got.Equal(tt.want) {
				t.Errorf("parseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
