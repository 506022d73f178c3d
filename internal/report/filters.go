package report

import (
	"strings"
	"time"

	"github.com/nao1215/streamlens/internal/model"
)

// recordTable builds a full-record result table from records matching keep,
// preserving table order.
func recordTable(name string, records []model.ContentRecord, keep func(*model.ContentRecord) bool) *model.ResultTable {
	table := model.NewResultTable(name, model.RecordColumns...)
	for i := range records {
		if keep(&records[i]) {
			table.AddRow(records[i].Row()...)
		}
	}
	return table
}

// FilterByYear returns every title released in the given year.
func FilterByYear(year int) Func {
	return func(records []model.ContentRecord) *model.ResultTable {
		return recordTable(NameByYear, records, func(r *model.ContentRecord) bool {
			return r.ReleaseYear == year
		})
	}
}

// AddedWithinYears returns every title added to the catalog on or after
// now minus the given number of years. Records whose date_added is missing
// or unparsable are excluded, not errors.
func AddedWithinYears(years int, now time.Time) Func {
	return func(records []model.ContentRecord) *model.ResultTable {
		cutoff := now.AddDate(-years, 0, 0)
		return recordTable(NameRecentlyAdded, records, func(r *model.ContentRecord) bool {
			added, ok := r.AddedAt()
			return ok && !added.Before(cutoff)
		})
	}
}

// ByDirector returns every title whose director list contains the exact
// name. Records without a director credit never match.
func ByDirector(name string) Func {
	return func(records []model.ContentRecord) *model.ResultTable {
		return recordTable(NameByDirector, records, func(r *model.ContentRecord) bool {
			return r.DirectedBy(name)
		})
	}
}

// TVShowsOverSeasons returns every TV show with strictly more than the
// given number of seasons. Shows whose duration does not parse as seasons
// are excluded without error.
func TVShowsOverSeasons(threshold int) Func {
	return func(records []model.ContentRecord) *model.ResultTable {
		return recordTable(NameLongRunningShows, records, func(r *model.ContentRecord) bool {
			if r.Kind != model.KindTVShow {
				return false
			}
			seasons, ok := r.Seasons()
			return ok && seasons > threshold
		})
	}
}

// documentariesSuffix is the genre label the original question singles out:
// titles whose listed_in value ends with this label.
const documentariesSuffix = "Documentaries"

// Documentaries returns every title whose genre list ends with the
// Documentaries label.
func Documentaries(records []model.ContentRecord) *model.ResultTable {
	return recordTable(NameDocumentaries, records, func(r *model.ContentRecord) bool {
		return strings.HasSuffix(strings.TrimSpace(r.Genres), documentariesSuffix)
	})
}

// MissingDirector returns every title without any director credit.
func MissingDirector(records []model.ContentRecord) *model.ResultTable {
	return recordTable(NameMissingDirector, records, func(r *model.ContentRecord) bool {
		return len(r.Directors()) == 0
	})
}

// ActorRecentMovies returns every title featuring the actor that was
// released after the current year minus the window. The actor must appear
// in the cast list as an exact token.
func ActorRecentMovies(actor string, years int, now time.Time) Func {
	return func(records []model.ContentRecord) *model.ResultTable {
		floor := now.Year() - years
		return recordTable(NameActorRecentMovies, records, func(r *model.ContentRecord) bool {
			return r.HasActor(actor) && r.ReleaseYear > floor
		})
	}
}
