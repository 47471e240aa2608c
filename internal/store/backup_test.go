package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"itinerary-studio/internal/model"
)

func TestBackup_WritesSnapshotAndSQLiteCopy(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	st := &State{
		Itineraries: []model.Itinerary{sampleItinerary("a", "AH24-DOM-FIT-001")},
		Keywords:    []model.Keyword{{ID: "k", Keyword: "Ooty", Activities: []string{"Lake"}}},
	}
	if err := s.Save(ctx, st); err != nil {
		t.Fatalf("save: %v", err)
	}

	to := t.TempDir()
	res, err := s.Backup(ctx, to, testNow)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if res.SnapshotPath != filepath.Join(to, "snapshot-20240501T093000Z.json") {
		t.Fatalf("unexpected snapshot path %q", res.SnapshotPath)
	}
	if res.Itineraries != 1 || res.Keywords != 1 {
		t.Fatalf("unexpected counts: %+v", res)
	}

	got, err := ReadSnapshotFile(res.SnapshotPath)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if len(got.Itineraries) != 1 || got.Itineraries[0].ID != "a" {
		t.Fatalf("unexpected snapshot contents: %+v", got.Itineraries)
	}

	restoreDir := t.TempDir()
	if err := CopyFile(res.SQLitePath, filepath.Join(restoreDir, "studio.sqlite")); err != nil {
		t.Fatalf("copy sqlite backup: %v", err)
	}
	restored, err := Store{Dir: restoreDir}.Load(ctx)
	if err != nil {
		t.Fatalf("load sqlite copy: %v", err)
	}
	if len(restored.Keywords) != 1 || restored.Keywords[0].Keyword != "Ooty" {
		t.Fatalf("unexpected sqlite copy contents: %+v", restored.Keywords)
	}
}

func TestWriteFileAtomic_Overwrites(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "out.json")
	if err := WriteFileAtomic(p, []byte("one")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteFileAtomic(p, []byte("two")); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "two" {
		t.Fatalf("expected two, got %q", b)
	}
	entries, _ := os.ReadDir(filepath.Dir(p))
	if len(entries) != 1 {
		t.Fatalf("expected temp files cleaned up, got %d entries", len(entries))
	}
}

func TestCopyFile_ReplacesDestAndLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.sqlite")
	dest := filepath.Join(dir, "out", "copy.sqlite")
	if err := os.WriteFile(src, []byte("fresh"), 0o644); err != nil {
		t.Fatalf("write src: %v", err)
	}
	if err := WriteFileAtomic(dest, []byte("stale and longer")); err != nil {
		t.Fatalf("seed dest: %v", err)
	}
	if err := CopyFile(src, dest); err != nil {
		t.Fatalf("copy: %v", err)
	}
	b, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "fresh" {
		t.Fatalf("expected fresh, got %q", b)
	}
	entries, _ := os.ReadDir(filepath.Dir(dest))
	if len(entries) != 1 {
		t.Fatalf("expected only the copy, got %d entries", len(entries))
	}

	if err := CopyFile(filepath.Join(dir, "missing"), dest); err == nil {
		t.Fatalf("expected error for missing src")
	}
	if b, _ := os.ReadFile(dest); string(b) != "fresh" {
		t.Fatalf("failed copy must keep the previous file, got %q", b)
	}
}
