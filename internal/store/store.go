// Package store holds todos: ToDoList is the in-memory, copy-on-write set
// the application works on, and SQLiteStore mirrors it to a database.
package store

import (
	"context"
	"fmt"

	"github.com/nhle/todokeeper/internal/model"
)

// Store defines the persistence interface for todo snapshots.
type Store interface {
	// SaveToDos replaces the stored snapshot.
	SaveToDos(ctx context.Context, todos []model.ToDo) error
	// LoadToDos returns the stored snapshot in saved order.
	LoadToDos(ctx context.Context) ([]model.ToDo, error)
	CountToDos(ctx context.Context) (int, error)
	GetTags(ctx context.Context) ([]model.Tag, error)
	Close() error
}

var _ Store = (*SQLiteStore)(nil)

// SaveList writes a snapshot of list to s.
func SaveList(ctx context.Context, s Store, list *ToDoList) error {
	if err := s.SaveToDos(ctx, list.Snapshot()); err != nil {
		return fmt.Errorf("saving list: %w", err)
	}
	return nil
}

// LoadList reads the snapshot in s into a new list.
func LoadList(ctx context.Context, s Store) (*ToDoList, error) {
	todos, err := s.LoadToDos(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading list: %w", err)
	}
	return NewToDoList(todos...)
}
