package report

import (
	"strconv"
	"testing"

	"github.com/nao1215/streamlens/internal/model"
)

// tableCount parses the count cell of the row whose first cell equals label.
// It returns -1 when no such row exists.
func tableCount(t *testing.T, table *model.ResultTable, label string) int {
	t.Helper()
	for _, row := range table.Rows {
		if row[0] == label {
			n, err := strconv.Atoi(row[len(row)-1])
			if err != nil {
				t.Fatalf("count cell %q is not a number: %v", row[len(row)-1], err)
			}
			return n
		}
	}
	return -1
}

func TestCountByType(t *testing.T) {
	t.Parallel()

	t.Run("counts sum to the record total", func(t *testing.T) {
		t.Parallel()

		records := []model.ContentRecord{
			{ID: "s1", Kind: model.KindMovie},
			{ID: "s2", Kind: model.KindMovie},
			{ID: "s3", Kind: model.KindTVShow},
		}

		table := CountByType(records)

		sum := 0
		for _, row := range table.Rows {
			n, err := strconv.Atoi(row[1])
			if err != nil {
				t.Fatalf("count cell %q is not a number: %v", row[1], err)
			}
			sum += n
		}
		if sum != len(records) {
			t.Errorf("expected counts to sum to %d, got %d", len(records), sum)
		}
	})

	t.Run("one row per kind present", func(t *testing.T) {
		t.Parallel()

		records := []model.ContentRecord{
			{ID: "s1", Kind: model.KindMovie, ReleaseYear: 2020, Countries: "India,US"},
			{ID: "s2", Kind: model.KindTVShow, ReleaseYear: 2020, Countries: "India"},
		}

		table := CountByType(records)

		if table.Len() != 2 {
			t.Fatalf("expected 2 rows, got %d", table.Len())
		}
		if got := tableCount(t, table, "Movie"); got != 1 {
			t.Errorf("expected Movie count 1, got %d", got)
		}
		if got := tableCount(t, table, "TV Show"); got != 1 {
			t.Errorf("expected TV Show count 1, got %d", got)
		}
	})

	t.Run("absent kind produces no row", func(t *testing.T) {
		t.Parallel()

		records := []model.ContentRecord{{ID: "s1", Kind: model.KindMovie}}
		table := CountByType(records)

		if table.Len() != 1 {
			t.Errorf("expected 1 row, got %d", table.Len())
		}
		if got := tableCount(t, table, "TV Show"); got != -1 {
			t.Errorf("expected no TV Show row, got count %d", got)
		}
	})

	t.Run("empty table is a valid result", func(t *testing.T) {
		t.Parallel()

		table := CountByType(nil)
		if !table.Empty() {
			t.Errorf("expected empty table, got %d rows", table.Len())
		}
	})
}

func TestGenreCounts(t *testing.T) {
	t.Parallel()

	t.Run("records contribute one count per genre", func(t *testing.T) {
		t.Parallel()

		records := []model.ContentRecord{
			{ID: "s1", Genres: "Dramas, Comedies"},
			{ID: "s2", Genres: "Dramas"},
			{ID: "s3", Genres: ""},
		}

		table := GenreCounts(records)

		if got := tableCount(t, table, "Dramas"); got != 2 {
			t.Errorf("expected Dramas count 2, got %d", got)
		}
		if got := tableCount(t, table, "Comedies"); got != 1 {
			t.Errorf("expected Comedies count 1, got %d", got)
		}

		// Multi-genre records make the sum exceed the record count; the
		// empty-genre record contributes nothing.
		sum := 0
		for _, row := range table.Rows {
			n, _ := strconv.Atoi(row[1])
			sum += n
		}
		if sum != 3 {
			t.Errorf("expected genre counts to sum to 3, got %d", sum)
		}
	})

	t.Run("labels are alphabetically ordered", func(t *testing.T) {
		t.Parallel()

		records := []model.ContentRecord{
			{ID: "s1", Genres: "Thrillers"},
			{ID: "s2", Genres: "Action"},
			{ID: "s3", Genres: "Dramas"},
		}

		table := GenreCounts(records)

		want := []string{"Action", "Dramas", "Thrillers"}
		for i, label := range want {
			if table.Rows[i][0] != label {
				t.Errorf("expected row %d label %q, got %q", i, label, table.Rows[i][0])
			}
		}
	})
}

func TestCategorizeByKeyword(t *testing.T) {
	t.Parallel()

	records := []model.ContentRecord{
		{ID: "s1", Description: "A violent crime thriller."},
		{ID: "s2", Description: "A heartwarming family story."},
		{ID: "s3", Description: "KILLER on the loose."},
	}

	t.Run("good plus bad equals the record total", func(t *testing.T) {
		t.Parallel()

		table := CategorizeByKeyword([]string{"violent", "killer"})(records)

		good := tableCount(t, table, "Good")
		bad := tableCount(t, table, "Bad")
		if good+bad != len(records) {
			t.Errorf("expected Good+Bad=%d, got %d+%d", len(records), good, bad)
		}
		if bad != 2 {
			t.Errorf("expected 2 Bad records, got %d", bad)
		}
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		table := CategorizeByKeyword([]string{"KiLlEr"})(records)
		if got := tableCount(t, table, "Bad"); got != 1 {
			t.Errorf("expected 1 Bad record, got %d", got)
		}
	})

	t.Run("both categories are zero-filled", func(t *testing.T) {
		t.Parallel()

		table := CategorizeByKeyword([]string{"zombie"})(records)

		if table.Len() != 2 {
			t.Fatalf("expected 2 rows, got %d", table.Len())
		}
		if got := tableCount(t, table, "Bad"); got != 0 {
			t.Errorf("expected Bad count 0, got %d", got)
		}
		if got := tableCount(t, table, "Good"); got != len(records) {
			t.Errorf("expected Good count %d, got %d", len(records), got)
		}
	})

	t.Run("empty table still emits both rows", func(t *testing.T) {
		t.Parallel()

		table := CategorizeByKeyword([]string{"violent"})(nil)
		if table.Len() != 2 {
			t.Fatalf("expected 2 rows, got %d", table.Len())
		}
		if got := tableCount(t, table, "Good"); got != 0 {
			t.Errorf("expected Good count 0, got %d", got)
		}
	})
}
