package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sethvargo/go-retry"

	"watchlog/storage"
)

// BackupJob snapshots the annotation store file into a backups directory,
// keeping only the most recent copies. The canonical store file is only
// ever read, never modified.
type BackupJob struct {
	store     *storage.FileStore
	backupDir string
	retention int
}

// NewBackupJob creates a backup job for the given store. retention is the
// number of snapshots to keep; values below 1 fall back to 7.
func NewBackupJob(store *storage.FileStore, backupDir string, retention int) *BackupJob {
	if retention < 1 {
		retention = 7
	}
	return &BackupJob{
		store:     store,
		backupDir: backupDir,
		retention: retention,
	}
}

// Name returns the name of the job
func (j *BackupJob) Name() string {
	return "store_backup"
}

// Run executes the job
func (j *BackupJob) Run(ctx context.Context) error {
	data, err := j.readStore(ctx)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Nothing to back up until the first save happens
			log.Printf("No store file at %s yet, skipping backup", j.store.Path())
			return nil
		}
		return fmt.Errorf("failed to read store file: %v", err)
	}

	if err := os.MkdirAll(j.backupDir, 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %v", err)
	}

	name := fmt.Sprintf("user_prod-%s.json", time.Now().Format("20060102-150405"))
	backupPath := filepath.Join(j.backupDir, name)

	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup %s: %v", backupPath, err)
	}

	log.Printf("Backed up store file to %s (%d bytes)", backupPath, len(data))

	if err := j.prune(); err != nil {
		log.Printf("Error pruning old backups: %v", err)
	}

	return nil
}

// readStore reads the canonical store file, retrying briefly on transient
// failures. A missing file is not retried.
func (j *BackupJob) readStore(ctx context.Context) ([]byte, error) {
	var data []byte

	backoff := retry.WithMaxRetries(3, retry.NewConstant(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var readErr error
		data, readErr = os.ReadFile(j.store.Path())
		if readErr == nil {
			return nil
		}
		if errors.Is(readErr, fs.ErrNotExist) {
			return readErr
		}
		return retry.RetryableError(readErr)
	})

	return data, err
}

// prune removes the oldest snapshots beyond the retention count. The
// timestamped names sort lexicographically, newest last.
func (j *BackupJob) prune() error {
	matches, err := filepath.Glob(filepath.Join(j.backupDir, "user_prod-*.json"))
	if err != nil {
		return err
	}
	if len(matches) <= j.retention {
		return nil
	}

	sort.Strings(matches)
	for _, stale := range matches[:len(matches)-j.retention] {
		if err := os.Remove(stale); err != nil {
			log.Printf("Error removing old backup %s: %v", stale, err)
		} else {
			log.Printf("Removed old backup %s", stale)
		}
	}

	return nil
}
