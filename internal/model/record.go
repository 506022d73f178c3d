package model

import (
	"strconv"
	"strings"
)

// ContentRecord is an immutable catalog entry: one movie or TV show with its
// descriptive and categorical attributes.
//
// Multi-valued fields (Director, Cast, Countries, Genres) keep the raw
// comma-separated string from the source file. Reports that aggregate per
// item split on demand via the accessor methods, so records loaded once can
// be shared by every report without preprocessing.
type ContentRecord struct {
	// ID is the unique show identifier (show_id column). Never empty.
	ID string `json:"show_id"`

	// Kind is the record type: movie or TV show.
	Kind ContentKind `json:"-"`

	// Title is the display title.
	Title string `json:"title"`

	// Director is a comma-separated list of director names. May be empty.
	Director string `json:"director,omitempty"`

	// Cast is a comma-separated list of actor names. May be empty.
	Cast string `json:"cast,omitempty"`

	// Countries is a comma-separated list of production countries. May be empty.
	Countries string `json:"country,omitempty"`

	// DateAdded is the raw catalog-addition date ("Month DD, YYYY").
	// May be empty or unparsable; use AddedAt for the parsed form.
	DateAdded string `json:"date_added,omitempty"`

	// ReleaseYear is the year of release.
	ReleaseYear int `json:"release_year"`

	// Rating is the maturity rating code (e.g. "TV-MA"). May be empty.
	Rating string `json:"rating,omitempty"`

	// Duration is the raw duration string ("90 min" or "3 Seasons").
	Duration string `json:"duration,omitempty"`

	// Genres is a comma-separated list of genre labels (listed_in column).
	Genres string `json:"listed_in,omitempty"`

	// Description is the free-text synopsis.
	Description string `json:"description,omitempty"`
}

// SplitList splits a comma-separated multi-valued field into trimmed,
// non-empty tokens. An empty or absent field yields no tokens, never an
// empty-string token, so split-based groupings cannot produce a null group.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Directors returns the individual director names.
func (r *ContentRecord) Directors() []string {
	return SplitList(r.Director)
}

// CastMembers returns the individual actor names.
func (r *ContentRecord) CastMembers() []string {
	return SplitList(r.Cast)
}

// CountryList returns the individual production countries.
func (r *ContentRecord) CountryList() []string {
	return SplitList(r.Countries)
}

// GenreList returns the individual genre labels.
func (r *ContentRecord) GenreList() []string {
	return SplitList(r.Genres)
}

// DirectedBy reports whether name appears in the director list.
// Matching is exact on the trimmed token.
func (r *ContentRecord) DirectedBy(name string) bool {
	return containsToken(r.Directors(), name)
}

// HasActor reports whether name appears in the cast list.
func (r *ContentRecord) HasActor(name string) bool {
	return containsToken(r.CastMembers(), name)
}

// FromCountry reports whether country appears in the country list.
func (r *ContentRecord) FromCountry(country string) bool {
	return containsToken(r.CountryList(), country)
}

// containsToken reports whether want is one of the tokens.
func containsToken(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}

// RecordColumns lists the column labels for reports that emit full records,
// in source-file order.
var RecordColumns = []string{
	"show_id", "type", "title", "director", "cast", "country",
	"date_added", "release_year", "rating", "duration", "listed_in",
	"description",
}

// Row renders the record as one result-table row matching RecordColumns.
func (r *ContentRecord) Row() []string {
	return []string{
		r.ID,
		r.Kind.String(),
		r.Title,
		r.Director,
		r.Cast,
		r.Countries,
		r.DateAdded,
		strconv.Itoa(r.ReleaseYear),
		r.Rating,
		r.Duration,
		r.Genres,
		r.Description,
	}
}
