package report

import (
	"fmt"

	"github.com/nao1215/streamlens/internal/model"
)

// Report names as exposed on the command line.
const (
	NameCountByType        = "count-by-type"
	NameTopRatingByType    = "top-rating-by-type"
	NameByYear             = "by-year"
	NameTopCountries       = "top-countries"
	NameLongestMovies      = "longest-movies"
	NameRecentlyAdded      = "recently-added"
	NameByDirector         = "by-director"
	NameLongRunningShows   = "long-running-shows"
	NameGenreCounts        = "genre-counts"
	NameTopYearsByCountry  = "top-years-by-country"
	NameDocumentaries      = "documentaries"
	NameMissingDirector    = "missing-director"
	NameActorRecentMovies  = "actor-recent-movies"
	NameTopActorsByCountry = "top-actors-by-country"
	NameCategorize         = "categorize-by-keyword"
)

// Func computes one report over the full record slice.
// Implementations must treat the slice as read-only.
type Func func(records []model.ContentRecord) *model.ResultTable

// Definition describes one named report: what it answers, which parameters
// it takes, and how to bind those parameters into a runnable Func.
type Definition struct {
	// Name is the report identifier used on the command line.
	Name string

	// Description is a one-line summary shown by the list command.
	Description string

	// ParamHint names the flags the report reads, for the list command.
	ParamHint string

	// Bind validates the parameters and returns the runnable report.
	Bind func(p Params) (Func, error)
}

// registry holds every report definition in menu order.
//
// Design decision: We keep an ordered slice rather than a map so the list
// command and `report all` always present reports in a stable, documented
// order. Lookup walks the slice; fifteen entries do not need an index.
var registry = []Definition{
	{
		Name:        NameCountByType,
		Description: "Count titles per content type",
		Bind: func(Params) (Func, error) {
			return CountByType, nil
		},
	},
	{
		Name:        NameTopRatingByType,
		Description: "Most frequent maturity rating per content type",
		Bind: func(Params) (Func, error) {
			return TopRatingByType, nil
		},
	},
	{
		Name:        NameByYear,
		Description: "All titles released in a given year",
		ParamHint:   "--year",
		Bind: func(p Params) (Func, error) {
			if p.Year == 0 {
				return nil, ErrMissingYear
			}
			return FilterByYear(p.Year), nil
		},
	},
	{
		Name:        NameTopCountries,
		Description: "Countries with the most titles",
		ParamHint:   "--top",
		Bind: func(p Params) (Func, error) {
			if p.TopN < 0 {
				return nil, ErrInvalidTopN
			}
			return TopCountries(p.topN(DefaultTopCountries)), nil
		},
	},
	{
		Name:        NameLongestMovies,
		Description: "Movies sorted by runtime, longest first",
		Bind: func(Params) (Func, error) {
			return LongestMovies, nil
		},
	},
	{
		Name:        NameRecentlyAdded,
		Description: "Titles added to the catalog within the last N years",
		ParamHint:   "--years",
		Bind: func(p Params) (Func, error) {
			if p.Years < 0 {
				return nil, ErrInvalidWindow
			}
			return AddedWithinYears(p.window(DefaultYearWindow), p.now()), nil
		},
	},
	{
		Name:        NameByDirector,
		Description: "All titles by an exact director name",
		ParamHint:   "--director",
		Bind: func(p Params) (Func, error) {
			if p.Director == "" {
				return nil, ErrMissingDirector
			}
			return ByDirector(p.Director), nil
		},
	},
	{
		Name:        NameLongRunningShows,
		Description: "TV shows running longer than N seasons",
		ParamHint:   "--seasons",
		Bind: func(p Params) (Func, error) {
			if p.Seasons < 0 {
				return nil, ErrInvalidSeasons
			}
			threshold := p.Seasons
			if threshold == 0 {
				threshold = DefaultSeasonThreshold
			}
			return TVShowsOverSeasons(threshold), nil
		},
	},
	{
		Name:        NameGenreCounts,
		Description: "Title count per genre label",
		Bind: func(Params) (Func, error) {
			return GenreCounts, nil
		},
	},
	{
		Name:        NameTopYearsByCountry,
		Description: "Release years with the highest share of a country's titles",
		ParamHint:   "--country, --top",
		Bind: func(p Params) (Func, error) {
			if p.Country == "" {
				return nil, ErrMissingCountry
			}
			if p.TopN < 0 {
				return nil, ErrInvalidTopN
			}
			return TopYearsByCountry(p.Country, p.topN(DefaultTopYears)), nil
		},
	},
	{
		Name:        NameDocumentaries,
		Description: "Titles whose genre list ends in Documentaries",
		Bind: func(Params) (Func, error) {
			return Documentaries, nil
		},
	},
	{
		Name:        NameMissingDirector,
		Description: "Titles without any director credit",
		Bind: func(Params) (Func, error) {
			return MissingDirector, nil
		},
	},
	{
		Name:        NameActorRecentMovies,
		Description: "Recent titles featuring an actor",
		ParamHint:   "--actor, --years",
		Bind: func(p Params) (Func, error) {
			if p.Actor == "" {
				return nil, ErrMissingActor
			}
			if p.Years < 0 {
				return nil, ErrInvalidWindow
			}
			return ActorRecentMovies(p.Actor, p.window(DefaultYearWindow), p.now()), nil
		},
	},
	{
		Name:        NameTopActorsByCountry,
		Description: "Actors with the most titles produced in a country",
		ParamHint:   "--country, --top",
		Bind: func(p Params) (Func, error) {
			if p.Country == "" {
				return nil, ErrMissingCountry
			}
			if p.TopN < 0 {
				return nil, ErrInvalidTopN
			}
			return TopActorsByCountry(p.Country, p.topN(DefaultTopActors)), nil
		},
	},
	{
		Name:        NameCategorize,
		Description: "Classify titles as Good or Bad by description keywords",
		ParamHint:   "--keywords",
		Bind: func(p Params) (Func, error) {
			if len(p.Keywords) == 0 {
				return nil, ErrMissingKeywords
			}
			return CategorizeByKeyword(p.Keywords), nil
		},
	},
}

// Definitions returns every report definition in menu order.
// The returned slice is a copy; callers may reorder it freely.
func Definitions() []Definition {
	defs := make([]Definition, len(registry))
	copy(defs, registry)
	return defs
}

// Names returns every report name in menu order.
func Names() []string {
	names := make([]string, len(registry))
	for i, def := range registry {
		names[i] = def.Name
	}
	return names
}

// Lookup returns the definition for the named report.
func Lookup(name string) (Definition, bool) {
	for _, def := range registry {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

// Bind resolves a report name and binds its parameters in one step.
func Bind(name string, p Params) (Func, error) {
	def, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReport, name)
	}
	return def.Bind(p)
}
