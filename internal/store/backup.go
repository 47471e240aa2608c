package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// BackupResult names the files a backup produced.
type BackupResult struct {
	Dir          string `json:"dir"`
	SnapshotPath string `json:"snapshotPath"`
	SQLitePath   string `json:"sqlitePath,omitempty"`
	Itineraries  int    `json:"itineraries"`
	Keywords     int    `json:"keywords"`
}

// WriteSnapshotFile writes st as indented JSON, atomically.
func WriteSnapshotFile(path string, st State) error {
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, append(b, '\n'))
}

// ReadSnapshotFile reads a file written by WriteSnapshotFile or a browser
// blob export.
func ReadSnapshotFile(path string) (State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return State{}, err
	}
	return ImportSnapshot(b)
}

// Backup writes snapshot-<ts>.json into toDir and copies the SQLite file
// next to it.
func (s Store) Backup(ctx context.Context, toDir string, now time.Time) (BackupResult, error) {
	if toDir == "" {
		return BackupResult{}, fmt.Errorf("backup: missing target dir")
	}
	st, err := s.Load(ctx)
	if err != nil {
		return BackupResult{}, fmt.Errorf("backup: load state: %w", err)
	}
	stamp := now.UTC().Format("20060102T150405Z")
	res := BackupResult{
		Dir:          toDir,
		SnapshotPath: filepath.Join(toDir, "snapshot-"+stamp+".json"),
		Itineraries:  len(st.Itineraries),
		Keywords:     len(st.Keywords),
	}
	if err := WriteSnapshotFile(res.SnapshotPath, *st); err != nil {
		return BackupResult{}, fmt.Errorf("backup: write snapshot: %w", err)
	}

	// A WAL-mode database may hold recent pages outside the main file; fold
	// them in before copying.
	db, err := s.openSQLite(ctx)
	if err != nil {
		return BackupResult{}, err
	}
	_, ckErr := db.ExecContext(ctx, `PRAGMA wal_checkpoint(TRUNCATE);`)
	_ = db.Close()
	if ckErr != nil {
		return BackupResult{}, fmt.Errorf("backup: checkpoint: %w", ckErr)
	}
	dest := filepath.Join(toDir, "studio-"+stamp+".sqlite")
	if err := CopyFile(s.SQLitePath(), dest); err != nil {
		return BackupResult{}, fmt.Errorf("backup: copy sqlite: %w", err)
	}
	res.SQLitePath = dest
	return res, nil
}
