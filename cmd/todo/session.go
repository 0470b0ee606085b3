package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nhle/todokeeper/internal/backup"
	"github.com/nhle/todokeeper/internal/fileio"
	"github.com/nhle/todokeeper/internal/model"
	"github.com/nhle/todokeeper/internal/store"
)

// session carries the state shared by every command of one invocation.
type session struct {
	configPath string
	backupPath string
	logLevel   string

	cfg *model.AppConfig
	log *log.Logger
	out io.Writer
}

func (s *session) backup() *backup.Backup {
	return backup.New(fileio.NewOS(s.cfg.Backup.Path))
}

// load restores the list from the backup file.
func (s *session) load() (*store.ToDoList, error) {
	list, err := s.backup().Restore()
	if err != nil {
		return nil, err
	}
	s.log.Debug("list restored", "path", s.cfg.Backup.Path, "todos", list.Size())
	return list, nil
}

// save writes list to the backup file and, when enabled, to the mirror.
func (s *session) save(ctx context.Context, list *store.ToDoList) error {
	if err := s.backup().Save(list); err != nil {
		return err
	}
	s.log.Debug("list saved", "path", s.cfg.Backup.Path, "todos", list.Size())

	if !s.cfg.Store.Enabled {
		return nil
	}
	return s.push(ctx, list)
}

// update restores the list, applies fn and saves the result. Nothing is
// written when fn fails.
func (s *session) update(ctx context.Context, fn func(list *store.ToDoList) error) error {
	list, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(list); err != nil {
		return err
	}
	return s.save(ctx, list)
}

func (s *session) openStore() (*store.SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(s.cfg.Store.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return store.NewSQLiteStore(s.cfg.Store.Path)
}

// push replaces the mirror contents with list.
func (s *session) push(ctx context.Context, list *store.ToDoList) error {
	db, err := s.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.SaveList(ctx, db, list); err != nil {
		return err
	}
	s.log.Debug("mirror updated", "path", s.cfg.Store.Path, "todos", list.Size())
	return nil
}

// pull reads the list stored in the mirror.
func (s *session) pull(ctx context.Context) (*store.ToDoList, error) {
	db, err := s.openStore()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return store.LoadList(ctx, db)
}

// resolve returns the todo at the 1-based position arg of the listing.
func resolve(list *store.ToDoList, arg string) (model.ToDo, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return model.ToDo{}, fmt.Errorf("%w: index %q is not a number", model.ErrInvalidArgument, arg)
	}
	todos := list.Snapshot()
	if n < 1 || n > len(todos) {
		return model.ToDo{}, fmt.Errorf("%w: index %d out of range [1, %d]", model.ErrInvalidArgument, n, len(todos))
	}
	return todos[n-1], nil
}

// parseTag parses "name" or "name:COLOR". Tags given without a color get
// the configured default color.
func (s *session) parseTag(arg string) (model.Tag, error) {
	if i := strings.LastIndex(arg, ":"); i >= 0 && model.Color(strings.ToUpper(arg[i+1:])).Valid() {
		return model.ParseTag(arg)
	}
	return model.NewColoredTag(arg, s.cfg.TagColor())
}
