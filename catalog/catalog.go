package catalog

// Kind identifies which catalog a record came from. Movie and series ids
// live in separate number spaces, so an id is only meaningful together
// with its kind.
type Kind int

const (
	KindNone Kind = iota
	KindMovie
	KindSeries
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindSeries:
		return "series"
	default:
		return "none"
	}
}

// Ref is a kind-tagged reference to a catalog record. The zero value
// (KindNone) refers to nothing and never equals another ref.
type Ref struct {
	Kind Kind
	ID   int64
}

// Equals reports whether two refs point at the same record. A movie ref
// never equals a series ref even when the numeric ids coincide, and a
// KindNone ref matches nothing, including another KindNone ref.
func (r Ref) Equals(other Ref) bool {
	if r.Kind == KindNone || other.Kind == KindNone {
		return false
	}
	return r.Kind == other.Kind && r.ID == other.ID
}

// Movie is a movie record as supplied by the external catalog.
type Movie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	Popularity       float64 `json:"popularity"`
	PosterPath       *string `json:"poster_path,omitempty"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
	Adult            bool    `json:"adult"`
}

// Series is a series record as supplied by the external catalog.
type Series struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	Popularity       float64 `json:"popularity"`
	PosterPath       *string `json:"poster_path,omitempty"`
	FirstAirDate     string  `json:"first_air_date"`
	VoteAverage      float64 `json:"vote_average"`
}

// Production is the closed union over the two record kinds. Only Movie
// and Series implement it, so a switch over the concrete types is
// exhaustive.
type Production interface {
	Ref() Ref
	DisplayName() string
	Poster() *string
	Rating() float64

	isProduction()
}

// Ref returns the kind-tagged identity of the movie.
func (m Movie) Ref() Ref { return Ref{Kind: KindMovie, ID: m.ID} }

func (m Movie) DisplayName() string { return m.Title }

func (m Movie) Poster() *string { return m.PosterPath }

func (m Movie) Rating() float64 { return m.VoteAverage }

func (m Movie) isProduction() {}

// Ref returns the kind-tagged identity of the series.
func (s Series) Ref() Ref { return Ref{Kind: KindSeries, ID: s.ID} }

func (s Series) DisplayName() string { return s.Name }

func (s Series) Poster() *string { return s.PosterPath }

func (s Series) Rating() float64 { return s.VoteAverage }

func (s Series) isProduction() {}
