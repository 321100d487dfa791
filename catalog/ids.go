package catalog

// ExternalIDs cross-references a catalog record with identifiers in other
// systems. Every field besides the catalog id is optional; a nil pointer
// means the external system has no entry for this record.
type ExternalIDs struct {
	ID          int64   `json:"id"`
	FacebookID  *string `json:"facebook_id,omitempty"`
	FreebaseID  *string `json:"freebase_id,omitempty"`
	FreebaseMID *string `json:"freebase_mid,omitempty"`
	IMDBID      *string `json:"imdb_id,omitempty"`
	InstagramID *string `json:"instagram_id,omitempty"`
	TVDBID      *int64  `json:"tvdb_id,omitempty"`
	TVRageID    *int64  `json:"tvrage_id,omitempty"`
	TwitterID   *string `json:"twitter_id,omitempty"`
	WikidataID  *string `json:"wikidata_id,omitempty"`
}
