package annotations

import "watchlog/catalog"

// UserMovie is a user's annotation on a movie record.
type UserMovie struct {
	Movie      catalog.Movie `json:"movie"`
	UserRating float64       `json:"user_rating"`
	Note       string        `json:"note"`
}

// UserSeries is a user's annotation on a series record, including the
// per-season note tree. SeasonNotes[0] is season 1.
type UserSeries struct {
	Series      catalog.Series `json:"series"`
	UserRating  float64        `json:"user_rating"`
	Note        string         `json:"note"`
	SeasonNotes []SeasonNotes  `json:"season_notes"`
}

// SeasonNotes holds the note for one season plus one note per episode.
// EpisodeNotes[0] is episode 1.
type SeasonNotes struct {
	Note         string   `json:"note"`
	EpisodeNotes []string `json:"episode_notes"`
}

// Collection is the full persisted annotation set. Both slices keep
// insertion order; order is display order, not an identity key.
type Collection struct {
	Series []UserSeries `json:"series"`
	Movies []UserMovie  `json:"movies"`
}

// grow extends s to at least n elements, appending values produced by
// fill. Existing elements are never touched and the slice never shrinks,
// so calling with n <= len(s) is a no-op.
func grow[T any](s []T, n int, fill func() T) []T {
	for len(s) < n {
		s = append(s, fill())
	}
	return s
}

// EnsureSeasons guarantees the series has note slots for at least n
// seasons. New seasons start with an empty note and no episode notes.
func (u *UserSeries) EnsureSeasons(n int) {
	u.SeasonNotes = grow(u.SeasonNotes, n, func() SeasonNotes {
		return SeasonNotes{EpisodeNotes: []string{}}
	})
}

// EnsureEpisodes guarantees the season has note slots for at least n
// episodes. New episode notes start empty.
func (s *SeasonNotes) EnsureEpisodes(n int) {
	s.EpisodeNotes = grow(s.EpisodeNotes, n, func() string { return "" })
}
