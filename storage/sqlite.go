package storage

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"watchlog/catalog"
)

// CatalogCache is a local SQLite cache of catalog records so the library
// stays browsable without the external metadata fetcher. Records are
// keyed by (id, kind) because a movie and a series may share a numeric id.
type CatalogCache struct {
	db       *sql.DB
	dbPath   string
	dataPath string
}

func NewCatalogCache(dataPath string) *CatalogCache {
	dbPath := filepath.Join(dataPath, "watchlog.db")
	return &CatalogCache{
		dbPath:   dbPath,
		dataPath: dataPath,
	}
}

func (c *CatalogCache) Initialize() error {
	// Create data directory if it doesn't exist
	if err := os.MkdirAll(c.dataPath, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}

	db, err := sql.Open("sqlite3", c.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %v", err)
	}

	c.db = db

	// Initialize and run migrations using Goose
	migrationManager := NewMigrationManager(c.db)
	if err := migrationManager.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize migrations: %v", err)
	}

	if err := migrationManager.Up(); err != nil {
		return fmt.Errorf("failed to run migrations: %v", err)
	}

	log.Printf("Catalog cache initialized at: %s", c.dbPath)
	return nil
}

// SaveMovie inserts or updates the cached movie record.
func (c *CatalogCache) SaveMovie(m catalog.Movie) error {
	return c.saveRecord(m.ID, catalog.KindMovie, m.Title, m.OriginalLanguage, m.Overview,
		m.Popularity, m.PosterPath, m.ReleaseDate, m.VoteAverage, m.VoteCount, m.Adult)
}

// SaveSeries inserts or updates the cached series record.
func (c *CatalogCache) SaveSeries(s catalog.Series) error {
	return c.saveRecord(s.ID, catalog.KindSeries, s.Name, s.OriginalLanguage, s.Overview,
		s.Popularity, s.PosterPath, s.FirstAirDate, s.VoteAverage, 0, false)
}

func (c *CatalogCache) saveRecord(id int64, kind catalog.Kind, title, language, overview string,
	popularity float64, posterPath *string, airDate string, voteAverage float64,
	voteCount int64, adult bool) error {

	var exists bool
	err := c.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM catalog WHERE id = ? AND kind = ?)`,
		id, kind.String()).Scan(&exists)

	if err != nil {
		return fmt.Errorf("failed to check if record exists: %v", err)
	}

	if exists {
		query := `
		UPDATE catalog
		SET title = ?, original_language = ?, overview = ?, popularity = ?, poster_path = ?,
			air_date = ?, vote_average = ?, vote_count = ?, adult = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND kind = ?
		`

		_, err := c.db.Exec(query, title, language, overview, popularity, posterPath,
			airDate, voteAverage, voteCount, adult, id, kind.String())
		if err != nil {
			return fmt.Errorf("failed to update record: %v", err)
		}
	} else {
		query := `
		INSERT INTO catalog (id, kind, title, original_language, overview, popularity,
			poster_path, air_date, vote_average, vote_count, adult, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		`

		_, err := c.db.Exec(query, id, kind.String(), title, language, overview, popularity,
			posterPath, airDate, voteAverage, voteCount, adult)
		if err != nil {
			return fmt.Errorf("failed to insert record: %v", err)
		}
	}

	return nil
}

// GetMovie fetches a cached movie by id.
func (c *CatalogCache) GetMovie(id int64) (catalog.Movie, error) {
	var m catalog.Movie
	query := `
	SELECT id, title, original_language, overview, popularity, poster_path,
		air_date, vote_average, vote_count, adult
	FROM catalog
	WHERE id = ? AND kind = 'movie'
	`

	err := c.db.QueryRow(query, id).Scan(&m.ID, &m.Title, &m.OriginalLanguage, &m.Overview,
		&m.Popularity, &m.PosterPath, &m.ReleaseDate, &m.VoteAverage, &m.VoteCount, &m.Adult)
	if err != nil {
		return catalog.Movie{}, fmt.Errorf("failed to get movie %d: %v", id, err)
	}

	return m, nil
}

// GetSeries fetches a cached series by id.
func (c *CatalogCache) GetSeries(id int64) (catalog.Series, error) {
	var s catalog.Series
	var voteCount int64
	var adult bool
	query := `
	SELECT id, title, original_language, overview, popularity, poster_path,
		air_date, vote_average, vote_count, adult
	FROM catalog
	WHERE id = ? AND kind = 'series'
	`

	err := c.db.QueryRow(query, id).Scan(&s.ID, &s.Name, &s.OriginalLanguage, &s.Overview,
		&s.Popularity, &s.PosterPath, &s.FirstAirDate, &s.VoteAverage, &voteCount, &adult)
	if err != nil {
		return catalog.Series{}, fmt.Errorf("failed to get series %d: %v", id, err)
	}

	return s, nil
}

// ListMovies returns all cached movies, newest cache entries first.
func (c *CatalogCache) ListMovies() ([]catalog.Movie, error) {
	query := `
	SELECT id, title, original_language, overview, popularity, poster_path,
		air_date, vote_average, vote_count, adult
	FROM catalog
	WHERE kind = 'movie'
	ORDER BY created_at DESC
	`

	rows, err := c.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %v", err)
	}
	defer rows.Close()

	var movies []catalog.Movie
	for rows.Next() {
		var m catalog.Movie
		err := rows.Scan(&m.ID, &m.Title, &m.OriginalLanguage, &m.Overview, &m.Popularity,
			&m.PosterPath, &m.ReleaseDate, &m.VoteAverage, &m.VoteCount, &m.Adult)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %v", err)
		}
		movies = append(movies, m)
	}

	return movies, rows.Err()
}

// ListSeries returns all cached series, newest cache entries first.
func (c *CatalogCache) ListSeries() ([]catalog.Series, error) {
	query := `
	SELECT id, title, original_language, overview, popularity, poster_path,
		air_date, vote_average
	FROM catalog
	WHERE kind = 'series'
	ORDER BY created_at DESC
	`

	rows, err := c.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query series: %v", err)
	}
	defer rows.Close()

	var series []catalog.Series
	for rows.Next() {
		var s catalog.Series
		err := rows.Scan(&s.ID, &s.Name, &s.OriginalLanguage, &s.Overview, &s.Popularity,
			&s.PosterPath, &s.FirstAirDate, &s.VoteAverage)
		if err != nil {
			return nil, fmt.Errorf("failed to scan series: %v", err)
		}
		series = append(series, s)
	}

	return series, rows.Err()
}

// SaveExternalIDs stores the external cross-reference record for a
// production, replacing any previous one.
func (c *CatalogCache) SaveExternalIDs(kind catalog.Kind, ids catalog.ExternalIDs) error {
	query := `
	INSERT INTO external_ids (production_id, kind, facebook_id, freebase_id, freebase_mid,
		imdb_id, instagram_id, tvdb_id, tvrage_id, twitter_id, wikidata_id)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(production_id, kind) DO UPDATE SET
		facebook_id = excluded.facebook_id,
		freebase_id = excluded.freebase_id,
		freebase_mid = excluded.freebase_mid,
		imdb_id = excluded.imdb_id,
		instagram_id = excluded.instagram_id,
		tvdb_id = excluded.tvdb_id,
		tvrage_id = excluded.tvrage_id,
		twitter_id = excluded.twitter_id,
		wikidata_id = excluded.wikidata_id
	`

	_, err := c.db.Exec(query, ids.ID, kind.String(), ids.FacebookID, ids.FreebaseID,
		ids.FreebaseMID, ids.IMDBID, ids.InstagramID, ids.TVDBID, ids.TVRageID,
		ids.TwitterID, ids.WikidataID)
	if err != nil {
		return fmt.Errorf("failed to save external ids: %v", err)
	}

	return nil
}

// GetExternalIDs fetches the external cross-reference record for a
// production, if one has been cached.
func (c *CatalogCache) GetExternalIDs(kind catalog.Kind, id int64) (catalog.ExternalIDs, error) {
	var ids catalog.ExternalIDs
	query := `
	SELECT production_id, facebook_id, freebase_id, freebase_mid, imdb_id,
		instagram_id, tvdb_id, tvrage_id, twitter_id, wikidata_id
	FROM external_ids
	WHERE production_id = ? AND kind = ?
	`

	err := c.db.QueryRow(query, id, kind.String()).Scan(&ids.ID, &ids.FacebookID,
		&ids.FreebaseID, &ids.FreebaseMID, &ids.IMDBID, &ids.InstagramID,
		&ids.TVDBID, &ids.TVRageID, &ids.TwitterID, &ids.WikidataID)
	if err != nil {
		return catalog.ExternalIDs{}, fmt.Errorf("failed to get external ids: %v", err)
	}

	return ids, nil
}

// SaveTrailer stores a trailer reference for a production.
func (c *CatalogCache) SaveTrailer(kind catalog.Kind, productionID int64, t catalog.Trailer) error {
	query := `
	INSERT INTO trailers (production_id, kind, name, provider_key, published_at, site, size, official)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := c.db.Exec(query, productionID, kind.String(), t.Name, t.Key,
		t.PublishedAt, t.Site, t.Size, t.Official)
	if err != nil {
		return fmt.Errorf("failed to save trailer: %v", err)
	}

	return nil
}

// ListTrailers returns all cached trailers for a production.
func (c *CatalogCache) ListTrailers(kind catalog.Kind, productionID int64) ([]catalog.Trailer, error) {
	query := `
	SELECT name, provider_key, published_at, site, size, official
	FROM trailers
	WHERE production_id = ? AND kind = ?
	ORDER BY published_at DESC
	`

	rows, err := c.db.Query(query, productionID, kind.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query trailers: %v", err)
	}
	defer rows.Close()

	var trailers []catalog.Trailer
	for rows.Next() {
		var t catalog.Trailer
		err := rows.Scan(&t.Name, &t.Key, &t.PublishedAt, &t.Site, &t.Size, &t.Official)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trailer: %v", err)
		}
		trailers = append(trailers, t)
	}

	return trailers, rows.Err()
}

func (c *CatalogCache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func (c *CatalogCache) GetDB() (*sql.DB, error) {
	if c.db == nil {
		// Open database connection if not already open
		db, err := sql.Open("sqlite3", c.dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %v", err)
		}
		c.db = db
	}
	return c.db, nil
}

func (c *CatalogCache) GetStats() (map[string]int, error) {
	stats := make(map[string]int)

	// Total cached records
	var total int
	err := c.db.QueryRow("SELECT COUNT(*) FROM catalog").Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("failed to get total count: %v", err)
	}
	stats["total"] = total

	// Movies count
	var movies int
	err = c.db.QueryRow("SELECT COUNT(*) FROM catalog WHERE kind = 'movie'").Scan(&movies)
	if err != nil {
		return nil, fmt.Errorf("failed to get movies count: %v", err)
	}
	stats["movies"] = movies

	// Series count
	var series int
	err = c.db.QueryRow("SELECT COUNT(*) FROM catalog WHERE kind = 'series'").Scan(&series)
	if err != nil {
		return nil, fmt.Errorf("failed to get series count: %v", err)
	}
	stats["series"] = series

	return stats, nil
}

// Migration management methods
func (c *CatalogCache) GetMigrationManager() *MigrationManager {
	return NewMigrationManager(c.db)
}

func (c *CatalogCache) GetDatabaseVersion() (int64, error) {
	migrationManager := c.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return 0, err
	}
	return migrationManager.Version()
}

func (c *CatalogCache) RunMigrations() error {
	migrationManager := c.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return err
	}
	return migrationManager.Up()
}

func (c *CatalogCache) RollbackMigration() error {
	migrationManager := c.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return err
	}
	return migrationManager.Down()
}

func (c *CatalogCache) ResetDatabase() error {
	migrationManager := c.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return err
	}
	return migrationManager.Reset()
}
