package catalog

// Trailer describes a promotional video hosted on an external site.
type Trailer struct {
	Name        string `json:"name"`
	Key         string `json:"key"`
	PublishedAt string `json:"published_at"`
	Site        string `json:"site"`
	Size        int    `json:"size"`
	Official    bool   `json:"official"`
}

// YouTubeURL derives the playable URL from the provider key. The URL is
// not stored anywhere; it is always recomputed from the key.
func (t Trailer) YouTubeURL() string {
	return "https://youtube.com/watch?v=" + t.Key
}
