package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiskArchiver(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "attendance.csv")
	if err := os.WriteFile(src, []byte("Date,Time,Student Name,Status\n"), 0644); err != nil {
		t.Fatal(err)
	}

	archiver := &DiskArchiver{Dir: filepath.Join(dir, "archive")}
	if err := archiver.Archive(src, "attendance-2026-03-01.csv"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "archive", "attendance-2026-03-01.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Date,Time,Student Name,Status\n" {
		t.Errorf("archived content = %q", data)
	}
}

func TestDiskArchiverMissingSource(t *testing.T) {
	archiver := &DiskArchiver{Dir: t.TempDir()}
	if err := archiver.Archive("does-not-exist.csv", "x.csv"); err == nil {
		t.Error("expected an error for a missing source file")
	}
}
