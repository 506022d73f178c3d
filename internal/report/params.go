package report

import (
	"errors"
	"time"
)

// Parameter validation errors.
// These are returned by Definition.Bind when a report's required parameter
// is absent or out of range, before any records are touched.
var (
	// ErrUnknownReport is returned when no report with the requested name exists.
	ErrUnknownReport = errors.New("unknown report")

	// ErrMissingYear is returned when a year-filtered report has no year.
	ErrMissingYear = errors.New("missing required parameter: year")

	// ErrMissingCountry is returned when a country-scoped report has no country.
	ErrMissingCountry = errors.New("missing required parameter: country")

	// ErrMissingDirector is returned when the director report has no name.
	ErrMissingDirector = errors.New("missing required parameter: director")

	// ErrMissingActor is returned when an actor-scoped report has no name.
	ErrMissingActor = errors.New("missing required parameter: actor")

	// ErrMissingKeywords is returned when the keyword report has no keywords.
	ErrMissingKeywords = errors.New("missing required parameter: keywords")

	// ErrInvalidTopN is returned when a top-N override is negative.
	ErrInvalidTopN = errors.New("invalid top-n: must be positive")

	// ErrInvalidWindow is returned when a year window is not positive.
	ErrInvalidWindow = errors.New("invalid year window: must be positive")

	// ErrInvalidSeasons is returned when the season threshold is negative.
	ErrInvalidSeasons = errors.New("invalid season threshold: must be non-negative")
)

// Default parameter values, matching the questions the report set was
// designed to answer.
const (
	// DefaultTopCountries is the row limit for the top-countries report.
	DefaultTopCountries = 5

	// DefaultTopYears is the row limit for the top-years-by-country report.
	DefaultTopYears = 5

	// DefaultTopActors is the row limit for the top-actors-by-country report.
	DefaultTopActors = 10

	// DefaultSeasonThreshold is the season count a show must exceed for the
	// long-running-shows report.
	DefaultSeasonThreshold = 5

	// DefaultYearWindow is the look-back window in years for date-relative
	// reports (recently-added, actor-recent-movies).
	DefaultYearWindow = 5
)

// Params carries every report parameter. Each report reads only the fields
// it needs; Definition.Bind validates them.
//
// Design decision: We use a single flat struct instead of per-report
// parameter types for simplicity. The number of parameters is small, the CLI
// maps flags onto it directly, and a shared struct lets one invocation run
// several reports against the same parameter set.
type Params struct {
	// Year filters the by-year report.
	Year int

	// Country scopes top-years-by-country and top-actors-by-country.
	Country string

	// Director is the exact name for the by-director report.
	Director string

	// Actor is the exact name for actor-scoped reports.
	Actor string

	// Keywords are the case-insensitive markers for categorize-by-keyword.
	Keywords []string

	// TopN overrides a ranked report's default row limit when positive.
	TopN int

	// Years is the look-back window for date-relative reports.
	// Zero means the report's default window.
	Years int

	// Seasons is the threshold for the long-running-shows report.
	// Zero means the default threshold.
	Seasons int

	// Now anchors "today" for date-relative reports.
	// The zero value means the wall clock; tests inject a fixed time.
	Now time.Time
}

// now returns the anchor time for date-relative reports.
func (p Params) now() time.Time {
	if p.Now.IsZero() {
		return time.Now()
	}
	return p.Now
}

// topN returns the row limit, falling back to def when no override is set.
func (p Params) topN(def int) int {
	if p.TopN > 0 {
		return p.TopN
	}
	return def
}

// window returns the look-back window in years, falling back to def.
func (p Params) window(def int) int {
	if p.Years > 0 {
		return p.Years
	}
	return def
}
