// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/nhle/todokeeper/internal/model"
	"github.com/nhle/todokeeper/internal/store"
)

// Creation is a fixed creation timestamp for fixtures.
var Creation = time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// Tag parses "name" or "name:COLOR" and fails the test on error.
func Tag(t *testing.T, s string) model.Tag {
	t.Helper()

	tag, err := model.ParseTag(s)
	if err != nil {
		t.Fatalf("parsing tag %q: %v", s, err)
	}
	return tag
}

// ToDo builds a todo created at Creation and fails the test on error.
func ToDo(t *testing.T, title, description string, tags ...string) model.ToDo {
	t.Helper()

	parsed := make([]model.Tag, 0, len(tags))
	for _, s := range tags {
		parsed = append(parsed, Tag(t, s))
	}
	todo, err := model.RestoreToDo(title, description, Creation, parsed...)
	if err != nil {
		t.Fatalf("building todo %q: %v", title, err)
	}
	return todo
}

// NewTestList builds a list holding todos and fails the test on error.
func NewTestList(t *testing.T, todos ...model.ToDo) *store.ToDoList {
	t.Helper()

	list, err := store.NewToDoList(todos...)
	if err != nil {
		t.Fatalf("building list: %v", err)
	}
	return list
}
