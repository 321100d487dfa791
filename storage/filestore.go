package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"watchlog/annotations"
)

// StoreFileName is the canonical annotation store file inside the data
// directory. The temp file written during a save sits next to it under a
// fixed name so crash-recovery tooling can find it.
const (
	StoreFileName = "user_prod.json"
	tempSuffix    = ".tmp"
)

// DecodeError reports a structurally invalid store document. It is
// distinct from I/O errors so callers can tell a corrupt file apart from
// a missing or unreadable one.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode store document: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode store document: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FileStore persists a full annotation collection as a single JSON
// document. Saves are atomic: the document is written to a temp file next
// to the canonical path and renamed over it in one step, so a reader
// never observes a partially written store and a crash mid-write leaves
// the previous file intact.
type FileStore struct {
	path string
}

// NewFileStore creates a file store rooted at dataPath. The store file
// itself is created on first save.
func NewFileStore(dataPath string) *FileStore {
	if dataPath == "" {
		dataPath = "./data"
	}
	return &FileStore{path: filepath.Join(dataPath, StoreFileName)}
}

// Path returns the canonical store file location.
func (s *FileStore) Path() string { return s.path }

// Save writes the entire collection to disk. On any failure the previous
// store file is left untouched; the caller may retry. A leftover temp
// file from a failed attempt is overwritten by the next successful save.
func (s *FileStore) Save(c annotations.Collection) error {
	if c.Series == nil {
		c.Series = []annotations.UserSeries{}
	}
	if c.Movies == nil {
		c.Movies = []annotations.UserMovie{}
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	// Write to the fixed sibling temp path, then atomically replace the
	// canonical file with a single rename. Copy+delete would reopen the
	// partial-write window.
	tmpPath := s.path + tempSuffix
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Load reads the collection back from disk. Both the "series" and
// "movies" keys are required; a document missing either fails with a
// *DecodeError rather than defaulting to an empty collection. Unknown
// extra fields are ignored. File-not-found and permission errors pass
// through wrapped, so errors.Is against fs.ErrNotExist and
// fs.ErrPermission still works.
func (s *FileStore) Load() (annotations.Collection, error) {
	var c annotations.Collection

	data, err := os.ReadFile(s.path)
	if err != nil {
		return c, fmt.Errorf("read store file: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return c, &DecodeError{Reason: "malformed document", Err: err}
	}

	seriesRaw, ok := doc["series"]
	if !ok {
		return c, &DecodeError{Reason: `missing required key "series"`}
	}
	moviesRaw, ok := doc["movies"]
	if !ok {
		return c, &DecodeError{Reason: `missing required key "movies"`}
	}

	if err := json.Unmarshal(seriesRaw, &c.Series); err != nil {
		return annotations.Collection{}, &DecodeError{Reason: "invalid series list", Err: err}
	}
	if err := json.Unmarshal(moviesRaw, &c.Movies); err != nil {
		return annotations.Collection{}, &DecodeError{Reason: "invalid movies list", Err: err}
	}

	if c.Series == nil {
		c.Series = []annotations.UserSeries{}
	}
	if c.Movies == nil {
		c.Movies = []annotations.UserMovie{}
	}

	return c, nil
}
