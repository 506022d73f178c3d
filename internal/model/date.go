package model

import (
	"strings"
	"time"
)

// addedDateFormats contains the date layouts that the date_added column may
// use. The source files write "September 9, 2019" but some exports pad the
// day or drop the comma, so we try a few layouts before giving up.
var addedDateFormats = []string{
	"January 2, 2006",
	"January _2, 2006",
	"2 January 2006",
	"2006-01-02",
}

// ParseAddedDate parses a date_added cell ("Month DD, YYYY").
// The second return value is false when the cell is empty or matches no
// known layout. Callers treat an unparsable date as an absent field: the
// record is excluded from date-relative reports without raising an error.
func ParseAddedDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range addedDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AddedAt returns the parsed catalog-addition date.
// The second return value is false when date_added is absent or unparsable.
func (r *ContentRecord) AddedAt() (time.Time, bool) {
	return ParseAddedDate(r.DateAdded)
}
