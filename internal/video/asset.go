package video

import (
	"fmt"
	"os"
)

// Asset is one rendered video on local disk. The pipeline owns at most one at
// a time; Release removes the file and is safe to call more than once, but
// only the first call does work.
type Asset struct {
	path     string
	size     int64
	released bool
}

// Path returns the playable file path, or "" after release.
func (a *Asset) Path() string {
	if a == nil || a.released {
		return ""
	}
	return a.path
}

// Size returns the payload size in bytes.
func (a *Asset) Size() int64 {
	if a == nil {
		return 0
	}
	return a.size
}

// Released reports whether the backing file has been removed.
func (a *Asset) Released() bool {
	return a == nil || a.released
}

// NewAssetForTest builds an Asset over an arbitrary path. The path does not
// need to exist; Release tolerates a missing file.
func NewAssetForTest(path string, size int64) *Asset {
	return &Asset{path: path, size: size}
}

// Release deletes the backing file. Idempotent.
func (a *Asset) Release() error {
	if a == nil || a.released {
		return nil
	}
	a.released = true
	if err := os.Remove(a.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove video file: %w", err)
	}
	return nil
}
