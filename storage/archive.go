package storage

import (
	"io"
	"os"
	"path/filepath"
)

// DiskArchiver copies attendance log snapshots into a local directory.
type DiskArchiver struct {
	Dir string
}

func (d *DiskArchiver) Archive(localPath, name string) error {
	if err := os.MkdirAll(d.Dir, 0777); err != nil {
		return err
	}
	src, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(d.Dir, name))
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	return err
}
