package listing

import (
	"sort"
	"strings"

	"watchlog/catalog"
)

// Entry is one row of the unified browse list. It is derived fresh from a
// catalog record and never persisted; the kind-tagged ref is its only
// identity.
type Entry struct {
	Ref        catalog.Ref
	Name       string
	PosterPath *string
	Rating     float64
}

// FromMovie projects a movie record into a list entry.
func FromMovie(m catalog.Movie) Entry {
	return Entry{
		Ref:        m.Ref(),
		Name:       m.Title,
		PosterPath: m.PosterPath,
		Rating:     m.VoteAverage,
	}
}

// FromSeries projects a series record into a list entry.
func FromSeries(s catalog.Series) Entry {
	return Entry{
		Ref:        s.Ref(),
		Name:       s.Name,
		PosterPath: s.PosterPath,
		Rating:     s.VoteAverage,
	}
}

// FromProduction projects either record kind into a list entry.
func FromProduction(p catalog.Production) Entry {
	switch v := p.(type) {
	case catalog.Movie:
		return FromMovie(v)
	case catalog.Series:
		return FromSeries(v)
	default:
		return Entry{}
	}
}

// IsSelected reports whether this entry is the one the given ref points
// at. Selection only matches within a kind: a movie entry never matches a
// series ref even when the ids coincide, and a KindNone ref selects
// nothing.
func (e Entry) IsSelected(ref catalog.Ref) bool {
	return e.Ref.Equals(ref)
}

// Ordering selects how the browse list is sorted.
type Ordering int

const (
	// OrderUserDefined keeps the list's own stored order untouched.
	OrderUserDefined Ordering = iota
	OrderAlphabetic
	OrderRatingAscending
	OrderRatingDescending
)

// Sort reorders entries in place according to the ordering. The sort is
// stable, so entries that compare equal keep their relative insertion
// order. Catalog records are never touched.
func Sort(entries []Entry, ordering Ordering) {
	switch ordering {
	case OrderAlphabetic:
		sort.SliceStable(entries, func(i, j int) bool {
			return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
		})
	case OrderRatingAscending:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Rating < entries[j].Rating
		})
	case OrderRatingDescending:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Rating > entries[j].Rating
		})
	case OrderUserDefined:
		// Insertion order is the user-defined order
	}
}
