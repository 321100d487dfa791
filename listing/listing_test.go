package listing

import (
	"testing"

	"watchlog/catalog"
)

func TestFromMovie(t *testing.T) {
	poster := "/blade_runner.jpg"
	movie := catalog.Movie{
		ID:          78,
		Title:       "Blade Runner",
		PosterPath:  &poster,
		VoteAverage: 8.1,
	}

	entry := FromMovie(movie)
	if entry.Ref.Kind != catalog.KindMovie || entry.Ref.ID != 78 {
		t.Errorf("Unexpected ref: %+v", entry.Ref)
	}
	if entry.Name != "Blade Runner" {
		t.Errorf("Expected name Blade Runner, got %s", entry.Name)
	}
	if entry.Rating != 8.1 {
		t.Errorf("Expected rating 8.1, got %f", entry.Rating)
	}
	if entry.PosterPath == nil || *entry.PosterPath != poster {
		t.Errorf("Poster path not carried over: %v", entry.PosterPath)
	}
}

func TestFromSeries(t *testing.T) {
	series := catalog.Series{
		ID:          1438,
		Name:        "The Wire",
		VoteAverage: 9.3,
	}

	entry := FromSeries(series)
	if entry.Ref.Kind != catalog.KindSeries || entry.Ref.ID != 1438 {
		t.Errorf("Unexpected ref: %+v", entry.Ref)
	}
	if entry.Name != "The Wire" {
		t.Errorf("Expected name The Wire, got %s", entry.Name)
	}
}

func TestFromProduction(t *testing.T) {
	var p catalog.Production = catalog.Movie{ID: 1, Title: "Heat"}
	if entry := FromProduction(p); entry.Ref.Kind != catalog.KindMovie {
		t.Errorf("Expected movie entry, got %+v", entry.Ref)
	}

	p = catalog.Series{ID: 1, Name: "Fargo"}
	if entry := FromProduction(p); entry.Ref.Kind != catalog.KindSeries {
		t.Errorf("Expected series entry, got %+v", entry.Ref)
	}
}

func TestIsSelectedAcrossKinds(t *testing.T) {
	movieEntry := FromMovie(catalog.Movie{ID: 5, Title: "Alien"})
	seriesEntry := FromSeries(catalog.Series{ID: 5, Name: "The Wire"})

	// Same numeric id must never match across kinds
	if movieEntry.IsSelected(seriesEntry.Ref) {
		t.Error("Movie entry matched a series ref with the same id")
	}
	if seriesEntry.IsSelected(movieEntry.Ref) {
		t.Error("Series entry matched a movie ref with the same id")
	}

	if !movieEntry.IsSelected(catalog.Ref{Kind: catalog.KindMovie, ID: 5}) {
		t.Error("Movie entry did not match its own ref")
	}

	// A None ref selects nothing
	if movieEntry.IsSelected(catalog.Ref{}) {
		t.Error("Movie entry matched a None ref")
	}
}

func testEntries() []Entry {
	return []Entry{
		{Ref: catalog.Ref{Kind: catalog.KindMovie, ID: 1}, Name: "B", Rating: 7.2},
		{Ref: catalog.Ref{Kind: catalog.KindSeries, ID: 2}, Name: "A", Rating: 3.1},
		{Ref: catalog.Ref{Kind: catalog.KindMovie, ID: 3}, Name: "C", Rating: 9.0},
	}
}

func TestSortAlphabetic(t *testing.T) {
	entries := testEntries()
	Sort(entries, OrderAlphabetic)

	got := []string{entries[0].Name, entries[1].Name, entries[2].Name}
	want := []string{"A", "B", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Alphabetic order: expected %v, got %v", want, got)
		}
	}
}

func TestSortRatingDescending(t *testing.T) {
	entries := testEntries()
	Sort(entries, OrderRatingDescending)

	got := []float64{entries[0].Rating, entries[1].Rating, entries[2].Rating}
	want := []float64{9.0, 7.2, 3.1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Rating descending: expected %v, got %v", want, got)
		}
	}
}

func TestSortRatingAscending(t *testing.T) {
	entries := testEntries()
	Sort(entries, OrderRatingAscending)

	got := []float64{entries[0].Rating, entries[1].Rating, entries[2].Rating}
	want := []float64{3.1, 7.2, 9.0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Rating ascending: expected %v, got %v", want, got)
		}
	}
}

func TestSortUserDefined(t *testing.T) {
	entries := testEntries()
	Sort(entries, OrderUserDefined)

	// Insertion order untouched
	if entries[0].Name != "B" || entries[1].Name != "A" || entries[2].Name != "C" {
		t.Errorf("User-defined order changed insertion order: %+v", entries)
	}
}
