package model

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    ContentKind
		wantErr bool
	}{
		{name: "canonical movie", input: "Movie", want: KindMovie},
		{name: "canonical tv show", input: "TV Show", want: KindTVShow},
		{name: "lowercase movie", input: "movie", want: KindMovie},
		{name: "whitespace around tv show", input: "  tv show ", want: KindTVShow},
		{name: "compact tvshow", input: "TVShow", want: KindTVShow},
		{name: "empty string", input: "", wantErr: true},
		{name: "unrelated value", input: "Documentary", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseKind(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownKind) {
					t.Errorf("expected ErrUnknownKind, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestContentKindString(t *testing.T) {
	t.Parallel()

	t.Run("movie spelling matches the dataset", func(t *testing.T) {
		t.Parallel()
		if got := KindMovie.String(); got != "Movie" {
			t.Errorf("expected 'Movie', got %q", got)
		}
	})

	t.Run("tv show spelling matches the dataset", func(t *testing.T) {
		t.Parallel()
		if got := KindTVShow.String(); got != "TV Show" {
			t.Errorf("expected 'TV Show', got %q", got)
		}
	})

	t.Run("out of range kind is unknown", func(t *testing.T) {
		t.Parallel()
		if got := ContentKind(42).String(); got != "unknown" {
			t.Errorf("expected 'unknown', got %q", got)
		}
	})
}
