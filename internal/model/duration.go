package model

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidDuration is returned when a duration string has no parsable
// numeric prefix. Callers treat this as "field absent" rather than a fatal
// error: records with unparsable durations are excluded from numeric sorts
// and comparisons, never aborting a report.
var ErrInvalidDuration = errors.New("invalid duration string")

// DurationUnit identifies how a duration value is measured.
type DurationUnit int

const (
	// UnitMinutes is used by movie durations ("90 min").
	UnitMinutes DurationUnit = iota

	// UnitSeasons is used by TV show durations ("3 Seasons", "1 Season").
	UnitSeasons
)

// String returns a human-readable unit name.
func (u DurationUnit) String() string {
	switch u {
	case UnitMinutes:
		return "min"
	case UnitSeasons:
		return "seasons"
	default:
		return "unknown"
	}
}

// Duration is a parsed duration cell: a non-negative integer plus its unit.
type Duration struct {
	// Value is the numeric prefix of the duration string.
	Value int

	// Unit is minutes for movies, seasons for TV shows.
	Unit DurationUnit
}

// ParseDuration parses a raw duration cell such as "90 min", "1 Season" or
// "3 Seasons". The numeric prefix must parse as a non-negative integer.
// The unit defaults to minutes unless the suffix mentions seasons.
func ParseDuration(s string) (Duration, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return Duration{}, ErrInvalidDuration
	}

	value, err := strconv.Atoi(fields[0])
	if err != nil || value < 0 {
		return Duration{}, ErrInvalidDuration
	}

	unit := UnitMinutes
	if len(fields) > 1 && strings.HasPrefix(strings.ToLower(fields[1]), "season") {
		unit = UnitSeasons
	}

	return Duration{Value: value, Unit: unit}, nil
}

// Minutes returns the movie runtime in minutes.
// The second return value is false when the duration is missing, unparsable,
// or measured in seasons.
func (r *ContentRecord) Minutes() (int, bool) {
	d, err := ParseDuration(r.Duration)
	if err != nil || d.Unit != UnitMinutes {
		return 0, false
	}
	return d.Value, true
}

// Seasons returns the TV show season count.
// The second return value is false when the duration is missing, unparsable,
// or measured in minutes.
func (r *ContentRecord) Seasons() (int, bool) {
	d, err := ParseDuration(r.Duration)
	if err != nil || d.Unit != UnitSeasons {
		return 0, false
	}
	return d.Value, true
}
