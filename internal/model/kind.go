package model

import (
	"errors"
	"strings"
)

// ErrUnknownKind is returned when a record type string is neither a movie
// nor a TV show.
var ErrUnknownKind = errors.New("unknown content kind")

// ContentKind represents the type of a catalog entry.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and grouping. The String() method provides
// the canonical dataset spelling when needed.
type ContentKind int

const (
	// KindMovie indicates a feature-length title whose duration is measured
	// in minutes.
	KindMovie ContentKind = iota

	// KindTVShow indicates an episodic title whose duration is measured
	// in seasons.
	KindTVShow
)

// Kinds lists all content kinds in canonical order.
// Reports that group by kind iterate this slice so output ordering is stable.
var Kinds = []ContentKind{KindMovie, KindTVShow}

// String returns the canonical dataset spelling of the kind.
func (k ContentKind) String() string {
	switch k {
	case KindMovie:
		return "Movie"
	case KindTVShow:
		return "TV Show"
	default:
		return "unknown"
	}
}

// ParseKind converts a raw type cell into a ContentKind.
// Matching is case-insensitive and tolerant of surrounding whitespace
// because the column is free text in the source file.
func ParseKind(s string) (ContentKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie":
		return KindMovie, nil
	case "tv show", "tvshow":
		return KindTVShow, nil
	default:
		return KindMovie, ErrUnknownKind
	}
}
