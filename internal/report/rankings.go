package report

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/nao1215/streamlens/internal/model"
)

// counter tallies string keys while remembering the order in which keys
// were first encountered. Stable sorts over its entries therefore break
// count ties in first-seen order, which is the documented tie-break for
// every ranked report.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

// add increments key, registering it on first encounter.
func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// ranked returns the keys sorted by count descending, ties first-seen first.
func (c *counter) ranked() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	return keys
}

// TopRatingByType finds the most frequent maturity rating for each content
// type. Records without a rating are ignored. When two ratings tie, the one
// seen first in the table wins; exactly one row is emitted per kind present.
func TopRatingByType(records []model.ContentRecord) *model.ResultTable {
	byKind := make(map[model.ContentKind]*counter)
	for _, r := range records {
		if r.Rating == "" {
			continue
		}
		c, ok := byKind[r.Kind]
		if !ok {
			c = newCounter()
			byKind[r.Kind] = c
		}
		c.add(r.Rating)
	}

	table := model.NewResultTable(NameTopRatingByType, "type", "rating", "count")
	for _, kind := range model.Kinds {
		c, ok := byKind[kind]
		if !ok {
			continue
		}
		top := c.ranked()[0]
		table.AddRow(kind.String(), top, strconv.Itoa(c.counts[top]))
	}
	return table
}

// TopCountries counts titles per production country and returns the n most
// frequent. A title listing several countries counts once for each.
func TopCountries(n int) Func {
	return func(records []model.ContentRecord) *model.ResultTable {
		c := newCounter()
		for _, r := range records {
			for _, country := range r.CountryList() {
				c.add(country)
			}
		}

		table := model.NewResultTable(NameTopCountries, "country", "count")
		for _, country := range limit(c.ranked(), n) {
			table.AddRow(country, strconv.Itoa(c.counts[country]))
		}
		return table
	}
}

// LongestMovies returns every movie sorted by runtime, longest first.
// Movies whose duration does not parse as minutes are excluded rather than
// failing the report. Runtime ties keep table order.
func LongestMovies(records []model.ContentRecord) *model.ResultTable {
	type timed struct {
		record  model.ContentRecord
		minutes int
	}

	movies := make([]timed, 0)
	for _, r := range records {
		if r.Kind != model.KindMovie {
			continue
		}
		minutes, ok := r.Minutes()
		if !ok {
			continue
		}
		movies = append(movies, timed{record: r, minutes: minutes})
	}

	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].minutes > movies[j].minutes
	})

	table := model.NewResultTable(NameLongestMovies, model.RecordColumns...)
	for _, m := range movies {
		table.AddRow(m.record.Row()...)
	}
	return table
}

// TopYearsByCountry ranks release years by their share of a country's
// titles. The percentage divides each year's count by the country's total
// at query time, rounded to two decimals; when the country has no titles
// the report returns an empty table instead of dividing by zero.
func TopYearsByCountry(country string, n int) Func {
	return func(records []model.ContentRecord) *model.ResultTable {
		table := model.NewResultTable(NameTopYearsByCountry, "release_year", "count", "percentage")

		c := newCounter()
		total := 0
		for _, r := range records {
			if !r.FromCountry(country) {
				continue
			}
			c.add(strconv.Itoa(r.ReleaseYear))
			total++
		}
		if total == 0 {
			return table
		}

		for _, year := range limit(c.ranked(), n) {
			count := c.counts[year]
			percentage := float64(count) * 100 / float64(total)
			table.AddRow(year, strconv.Itoa(count), fmt.Sprintf("%.2f", percentage))
		}
		return table
	}
}

// TopActorsByCountry counts cast appearances across a country's titles and
// returns the n most frequent actors.
func TopActorsByCountry(country string, n int) Func {
	return func(records []model.ContentRecord) *model.ResultTable {
		c := newCounter()
		for _, r := range records {
			if !r.FromCountry(country) {
				continue
			}
			for _, actor := range r.CastMembers() {
				c.add(actor)
			}
		}

		table := model.NewResultTable(NameTopActorsByCountry, "actor", "count")
		for _, actor := range limit(c.ranked(), n) {
			table.AddRow(actor, strconv.Itoa(c.counts[actor]))
		}
		return table
	}
}

// limit truncates keys to at most n entries.
func limit(keys []string, n int) []string {
	if n < len(keys) {
		return keys[:n]
	}
	return keys
}
