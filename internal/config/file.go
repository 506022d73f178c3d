package config

// ReportOptions holds report parameter defaults for a single report.
// This allows pinning frequently used parameters (a home country, a
// favorite actor) in the config file instead of repeating flags.
type ReportOptions struct {
	// Year filters year-scoped reports.
	Year int `yaml:"year,omitempty"`

	// Country scopes country-based reports.
	Country string `yaml:"country,omitempty"`

	// Director scopes director-based reports.
	Director string `yaml:"director,omitempty"`

	// Actor scopes actor-based reports.
	Actor string `yaml:"actor,omitempty"`

	// Keywords drive the keyword categorization report.
	Keywords []string `yaml:"keywords,omitempty"`

	// Top overrides the row limit of ranked reports.
	Top int `yaml:"top,omitempty"`

	// Years overrides the look-back window of date-relative reports.
	Years int `yaml:"years,omitempty"`

	// Seasons overrides the season threshold for long-running shows.
	Seasons int `yaml:"seasons,omitempty"`
}

// File represents the structure of the .streamlens configuration file.
type File struct {
	// Dataset is the default CSV path used when --input is not given.
	// An imported catalog database still takes over when this is empty.
	Dataset string `yaml:"dataset,omitempty"`

	// Reports maps report names to their parameter defaults.
	Reports map[string]ReportOptions `yaml:"reports,omitempty"`

	// Defaults contains parameter defaults applied to every report
	// unless overridden in the report-specific configuration.
	Defaults ReportOptions `yaml:"defaults,omitempty"`
}

// GetReportOptions returns the effective options for a report.
// It merges the report-specific configuration over the defaults.
func (cf *File) GetReportOptions(name string) ReportOptions {
	result := cf.Defaults

	if opts, ok := cf.Reports[name]; ok {
		if opts.Year != 0 {
			result.Year = opts.Year
		}
		if opts.Country != "" {
			result.Country = opts.Country
		}
		if opts.Director != "" {
			result.Director = opts.Director
		}
		if opts.Actor != "" {
			result.Actor = opts.Actor
		}
		if len(opts.Keywords) > 0 {
			result.Keywords = opts.Keywords
		}
		if opts.Top != 0 {
			result.Top = opts.Top
		}
		if opts.Years != 0 {
			result.Years = opts.Years
		}
		if opts.Seasons != 0 {
			result.Seasons = opts.Seasons
		}
	}

	return result
}
