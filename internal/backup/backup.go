// Package backup encodes todo lists into a flat, line-oriented text format
// and saves and restores them through a fileio.File.
//
// The format is a record count followed by four lines per todo:
//
//	<N>
//	<title>
//	<description>
//	<creation, RFC 3339 with nanoseconds>
//	<tag, tag:COLOR, ...>
//
// Newlines inside a field are written as NUL bytes and turned back into
// newlines on decode. Tags with the default color are written as their
// bare name.
package backup

import (
	"fmt"
	"strings"

	"github.com/nhle/todokeeper/internal/fileio"
	"github.com/nhle/todokeeper/internal/model"
	"github.com/nhle/todokeeper/internal/store"
)

var errNilList = fmt.Errorf("%w: nil list", model.ErrInvalidArgument)

// Backup saves and restores a ToDoList to one file.
type Backup struct {
	file *fileio.File
}

// New returns a Backup writing to file.
func New(file *fileio.File) *Backup {
	return &Backup{file: file}
}

// Path returns the backup file path.
func (b *Backup) Path() string {
	return b.file.Path()
}

// Save writes list to the backup file, creating the file if needed.
func (b *Backup) Save(list *store.ToDoList) error {
	if list == nil {
		return fmt.Errorf("saving backup: %w", errNilList)
	}
	if _, err := b.file.Create(); err != nil {
		return fmt.Errorf("saving backup: %w", err)
	}
	ok, err := b.file.Save(Encode(list.Snapshot()))
	if err != nil {
		return fmt.Errorf("saving backup: %w", err)
	}
	if !ok {
		return fmt.Errorf("saving backup: %s disappeared before writing", b.file.Path())
	}
	return nil
}

// Restore reads the backup file into a new list. A missing or empty file
// yields an empty list. The file is never modified.
func (b *Backup) Restore() (*store.ToDoList, error) {
	text, ok, err := b.file.Load()
	if err != nil {
		return nil, fmt.Errorf("restoring backup: %w", err)
	}
	if !ok || strings.TrimSpace(text) == "" {
		return store.NewToDoList()
	}

	todos, err := Decode(text)
	if err != nil {
		return nil, fmt.Errorf("restoring backup %s: %w", b.file.Path(), err)
	}
	list, err := store.NewToDoList(todos...)
	if err != nil {
		return nil, fmt.Errorf("restoring backup %s: %w", b.file.Path(), err)
	}
	return list, nil
}
