package catalog

import (
	"encoding/json"
	"testing"
)

func TestRefEquals(t *testing.T) {
	movie := Ref{Kind: KindMovie, ID: 5}
	series := Ref{Kind: KindSeries, ID: 5}

	// Same numeric id in different kinds must never match
	if movie.Equals(series) {
		t.Error("Movie ref matched series ref with same id")
	}
	if series.Equals(movie) {
		t.Error("Series ref matched movie ref with same id")
	}

	if !movie.Equals(Ref{Kind: KindMovie, ID: 5}) {
		t.Error("Identical movie refs did not match")
	}

	if movie.Equals(Ref{Kind: KindMovie, ID: 6}) {
		t.Error("Movie refs with different ids matched")
	}

	// None matches nothing, not even another None
	var none Ref
	if none.Equals(none) {
		t.Error("None ref matched itself")
	}
	if movie.Equals(none) || none.Equals(movie) {
		t.Error("None ref matched a movie ref")
	}
}

func TestProductionRefs(t *testing.T) {
	movie := Movie{ID: 42, Title: "Blade Runner"}
	series := Series{ID: 42, Name: "Twin Peaks"}

	if movie.Ref().Kind != KindMovie {
		t.Errorf("Expected movie kind, got %v", movie.Ref().Kind)
	}
	if series.Ref().Kind != KindSeries {
		t.Errorf("Expected series kind, got %v", series.Ref().Kind)
	}
	if movie.Ref().Equals(series.Ref()) {
		t.Error("Movie and series with the same id compared equal")
	}
}

func TestTrailerYouTubeURL(t *testing.T) {
	trailer := Trailer{
		Name:     "Official Trailer",
		Key:      "dQw4w9WgXcQ",
		Site:     "YouTube",
		Official: true,
	}

	expected := "https://youtube.com/watch?v=dQw4w9WgXcQ"
	if url := trailer.YouTubeURL(); url != expected {
		t.Errorf("Expected URL %s, got %s", expected, url)
	}
}

func TestMovieJSONFieldNames(t *testing.T) {
	poster := "/poster.jpg"
	movie := Movie{
		ID:               7,
		Title:            "Alien",
		OriginalLanguage: "en",
		Overview:         "In space no one can hear you scream.",
		Popularity:       80.5,
		PosterPath:       &poster,
		ReleaseDate:      "1979-05-25",
		VoteAverage:      8.1,
		VoteCount:        12000,
		Adult:            false,
	}

	data, err := json.Marshal(movie)
	if err != nil {
		t.Fatalf("Failed to marshal movie: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Failed to unmarshal movie: %v", err)
	}

	for _, key := range []string{"id", "title", "original_language", "overview",
		"popularity", "poster_path", "release_date", "vote_average", "vote_count", "adult"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("Expected field %q in movie JSON", key)
		}
	}
}

func TestSeriesJSONFieldNames(t *testing.T) {
	series := Series{
		ID:           9,
		Name:         "The Wire",
		FirstAirDate: "2002-06-02",
		VoteAverage:  9.3,
	}

	data, err := json.Marshal(series)
	if err != nil {
		t.Fatalf("Failed to marshal series: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Failed to unmarshal series: %v", err)
	}

	for _, key := range []string{"id", "name", "first_air_date", "vote_average"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("Expected field %q in series JSON", key)
		}
	}
}
