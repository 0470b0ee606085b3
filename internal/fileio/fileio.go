// Package fileio reads and writes a single text file through an afero
// filesystem.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/nhle/todokeeper/internal/model"
)

// File is a handle on one file path. Every storage failure it returns
// wraps model.ErrIO.
type File struct {
	fs   afero.Fs
	path string
}

// New returns a handle on path within fs.
func New(fs afero.Fs, path string) *File {
	return &File{fs: fs, path: path}
}

// NewOS returns a handle on path in the host filesystem.
func NewOS(path string) *File {
	return New(afero.NewOsFs(), path)
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

func ioError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", model.ErrIO, op, path, err)
}

// Exists reports whether the file exists.
func (f *File) Exists() (bool, error) {
	ok, err := afero.Exists(f.fs, f.path)
	if err != nil {
		return false, ioError("checking", f.path, err)
	}
	return ok, nil
}

// Create creates an empty file, and any missing parent directories. It
// reports false without touching anything if the file already exists.
func (f *File) Create() (bool, error) {
	exists, err := f.Exists()
	if err != nil || exists {
		return false, err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := f.fs.MkdirAll(dir, 0o755); err != nil {
			return false, ioError("creating directory", dir, err)
		}
	}

	file, err := f.fs.OpenFile(f.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return false, ioError("creating", f.path, err)
	}
	if err := file.Close(); err != nil {
		return false, ioError("closing", f.path, err)
	}
	return true, nil
}

// Save replaces the file content with data. It reports false without
// writing if the file does not exist. The content is written to a
// sibling temp file first and renamed over the target, so a failed write
// leaves the previous content in place. The target keeps its permissions.
func (f *File) Save(data string) (bool, error) {
	info, err := f.fs.Stat(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, ioError("checking", f.path, err)
	}

	tmp, err := afero.TempFile(f.fs, filepath.Dir(f.path), "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return false, ioError("creating temp file for", f.path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(data); err != nil {
		tmp.Close()
		f.fs.Remove(tmpPath)
		return false, ioError("writing", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		f.fs.Remove(tmpPath)
		return false, ioError("closing", tmpPath, err)
	}
	if err := f.fs.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		f.fs.Remove(tmpPath)
		return false, ioError("setting mode of", tmpPath, err)
	}
	if err := f.fs.Rename(tmpPath, f.path); err != nil {
		f.fs.Remove(tmpPath)
		return false, ioError("replacing", f.path, err)
	}
	return true, nil
}

// Load returns the file content. It reports false with no error if the
// file does not exist.
func (f *File) Load() (string, bool, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, ioError("reading", f.path, err)
	}
	return string(data), true, nil
}
