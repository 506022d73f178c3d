package report

import (
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nao1215/streamlens/internal/model"
)

// CountByType counts catalog entries per content type.
// Only kinds present in the table produce a row, in canonical kind order.
func CountByType(records []model.ContentRecord) *model.ResultTable {
	counts := make(map[model.ContentKind]int)
	for _, r := range records {
		counts[r.Kind]++
	}

	table := model.NewResultTable(NameCountByType, "type", "count")
	for _, kind := range model.Kinds {
		if n, ok := counts[kind]; ok {
			table.AddRow(kind.String(), strconv.Itoa(n))
		}
	}
	return table
}

// GenreCounts counts catalog entries per genre label. A record contributes
// one count per genre it is listed in, so the counts may sum to more than
// the record total. Records with an empty genre field contribute nothing.
//
// The menu does not promise any particular order, so we sort labels by
// English collation to keep output deterministic and diffable.
func GenreCounts(records []model.ContentRecord) *model.ResultTable {
	counts := make(map[string]int)
	for _, r := range records {
		for _, genre := range r.GenreList() {
			counts[genre]++
		}
	}

	labels := make([]string, 0, len(counts))
	for genre := range counts {
		labels = append(labels, genre)
	}
	collate.New(language.English).SortStrings(labels)

	table := model.NewResultTable(NameGenreCounts, "genre", "count")
	for _, genre := range labels {
		table.AddRow(genre, strconv.Itoa(counts[genre]))
	}
	return table
}

// Category labels for CategorizeByKeyword.
const (
	categoryGood = "Good"
	categoryBad  = "Bad"
)

// CategorizeByKeyword classifies every record as "Bad" when its description
// contains any of the keywords (case-insensitively), "Good" otherwise, and
// counts both categories. Both rows are always emitted, zero-filled when a
// category is absent, so count(Good)+count(Bad) equals the record total.
func CategorizeByKeyword(keywords []string) Func {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			lowered = append(lowered, kw)
		}
	}

	return func(records []model.ContentRecord) *model.ResultTable {
		var good, bad int
		for _, r := range records {
			if matchesAny(r.Description, lowered) {
				bad++
			} else {
				good++
			}
		}

		table := model.NewResultTable(NameCategorize, "category", "count")
		table.AddRow(categoryGood, strconv.Itoa(good))
		table.AddRow(categoryBad, strconv.Itoa(bad))
		return table
	}
}

// matchesAny reports whether the description contains any lowered keyword.
func matchesAny(description string, lowered []string) bool {
	desc := strings.ToLower(description)
	for _, kw := range lowered {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}
