package store

import (
	"fmt"
	"iter"
	"slices"

	"github.com/nhle/todokeeper/internal/model"
)

// ToDoList is an in-memory set of todos keyed by todo equality.
//
// The list owns private copies of its entries: every argument is cloned
// on the way in and every result is cloned on the way out, so callers can
// never alias stored state. Iteration follows insertion order; an entry
// replaced by a mutator keeps its position.
//
// A ToDoList is not safe for concurrent use.
type ToDoList struct {
	entries map[string]model.ToDo
	order   []string
}

// NewToDoList creates a list seeded with todos. Duplicates are dropped,
// keeping the first occurrence.
func NewToDoList(todos ...model.ToDo) (*ToDoList, error) {
	l := &ToDoList{entries: make(map[string]model.ToDo, len(todos))}
	for i, todo := range todos {
		if _, err := l.AddToDo(todo); err != nil {
			return nil, fmt.Errorf("seeding todo %d: %w", i, err)
		}
	}
	return l, nil
}

func checkToDo(todo model.ToDo) error {
	if !todo.Valid() {
		return fmt.Errorf("%w: zero todo", model.ErrInvalidArgument)
	}
	return nil
}

func checkTag(tag model.Tag) error {
	if tag.IsZero() {
		return fmt.Errorf("%w: zero tag", model.ErrInvalidArgument)
	}
	return nil
}

// Size returns the number of stored todos.
func (l *ToDoList) Size() int {
	return len(l.order)
}

// Contains reports whether a todo equal to todo is stored.
func (l *ToDoList) Contains(todo model.ToDo) (bool, error) {
	if err := checkToDo(todo); err != nil {
		return false, err
	}
	_, ok := l.entries[todo.Key()]
	return ok, nil
}

// AddToDo stores a copy of todo and reports true, or reports false if an
// equal todo is already stored.
func (l *ToDoList) AddToDo(todo model.ToDo) (bool, error) {
	if err := checkToDo(todo); err != nil {
		return false, err
	}
	key := todo.Key()
	if _, ok := l.entries[key]; ok {
		return false, nil
	}
	if l.entries == nil {
		l.entries = make(map[string]model.ToDo)
	}
	l.entries[key] = todo.Clone()
	l.order = append(l.order, key)
	return true, nil
}

// RemoveToDo removes the todo equal to todo and reports true, or reports
// false if none is stored.
func (l *ToDoList) RemoveToDo(todo model.ToDo) (bool, error) {
	if err := checkToDo(todo); err != nil {
		return false, err
	}
	key := todo.Key()
	if _, ok := l.entries[key]; !ok {
		return false, nil
	}
	delete(l.entries, key)
	l.order = slices.DeleteFunc(slices.Clip(l.order), func(k string) bool { return k == key })
	return true, nil
}

// ModifyTitle retitles the stored todo equal to todo and returns a copy of
// the updated entry. It returns nil if no equal todo is stored.
func (l *ToDoList) ModifyTitle(todo model.ToDo, title string) (*model.ToDo, error) {
	if err := checkToDo(todo); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, &model.FieldError{Field: "title", Err: model.ErrEmptyField}
	}
	return l.modify(todo, func(t *model.ToDo) (bool, error) {
		return true, t.ChangeTitle(title)
	})
}

// ModifyDescription replaces the description of the stored todo equal to
// todo and returns a copy of the updated entry, or nil if none is stored.
func (l *ToDoList) ModifyDescription(todo model.ToDo, description string) (*model.ToDo, error) {
	if err := checkToDo(todo); err != nil {
		return nil, err
	}
	return l.modify(todo, func(t *model.ToDo) (bool, error) {
		return true, t.ChangeDescription(description)
	})
}

// AddTag attaches tag to the stored todo equal to todo and returns a copy
// of the updated entry. It returns nil if no equal todo is stored, and a
// copy of todo itself, leaving the list untouched, if the tag is already
// attached.
func (l *ToDoList) AddTag(todo model.ToDo, tag model.Tag) (*model.ToDo, error) {
	if err := checkToDo(todo); err != nil {
		return nil, err
	}
	if err := checkTag(tag); err != nil {
		return nil, err
	}
	return l.modify(todo, func(t *model.ToDo) (bool, error) {
		return t.AddTag(tag)
	})
}

// DeleteTag detaches tag from the stored todo equal to todo. Results
// mirror AddTag.
func (l *ToDoList) DeleteTag(todo model.ToDo, tag model.Tag) (*model.ToDo, error) {
	if err := checkToDo(todo); err != nil {
		return nil, err
	}
	if err := checkTag(tag); err != nil {
		return nil, err
	}
	return l.modify(todo, func(t *model.ToDo) (bool, error) {
		return t.DeleteTag(tag)
	})
}

// modify applies update to a fresh copy of the stored entry equal to todo
// and swaps it in. When update reports no change, the store is left as is
// and a copy of todo is returned. When the updated value equals another
// stored entry, the two collapse into that entry.
func (l *ToDoList) modify(todo model.ToDo, update func(*model.ToDo) (bool, error)) (*model.ToDo, error) {
	oldKey := todo.Key()
	stored, ok := l.entries[oldKey]
	if !ok {
		return nil, nil
	}

	updated := stored.Clone()
	changed, err := update(&updated)
	if err != nil {
		return nil, err
	}
	if !changed {
		unchanged := todo.Clone()
		return &unchanged, nil
	}

	newKey := updated.Key()
	switch {
	case newKey == oldKey:
		l.entries[oldKey] = updated
	case l.entries[newKey].Valid():
		delete(l.entries, oldKey)
		l.order = slices.DeleteFunc(slices.Clip(l.order), func(k string) bool { return k == oldKey })
		updated = l.entries[newKey]
	default:
		delete(l.entries, oldKey)
		l.entries[newKey] = updated
		i := slices.Index(l.order, oldKey)
		l.order = slices.Clone(l.order)
		l.order[i] = newKey
	}

	result := updated.Clone()
	return &result, nil
}

// Get returns a copy of the stored todo equal to todo, or nil.
func (l *ToDoList) Get(todo model.ToDo) (*model.ToDo, error) {
	if err := checkToDo(todo); err != nil {
		return nil, err
	}
	stored, ok := l.entries[todo.Key()]
	if !ok {
		return nil, nil
	}
	result := stored.Clone()
	return &result, nil
}

// Snapshot returns copies of all todos in iteration order. Later changes
// to the list are not reflected.
func (l *ToDoList) Snapshot() []model.ToDo {
	todos := make([]model.ToDo, len(l.order))
	for i, key := range l.order {
		todos[i] = l.entries[key].Clone()
	}
	return todos
}

// All iterates over a snapshot of the list.
func (l *ToDoList) All() iter.Seq[model.ToDo] {
	return slices.Values(l.Snapshot())
}

// Clone returns an independent copy of the list.
func (l *ToDoList) Clone() *ToDoList {
	c := &ToDoList{
		entries: make(map[string]model.ToDo, len(l.entries)),
		order:   slices.Clone(l.order),
	}
	for key, todo := range l.entries {
		c.entries[key] = todo.Clone()
	}
	return c
}

// Equal reports whether both lists hold equal todos, ignoring order. A nil
// list equals only another nil list.
func (l *ToDoList) Equal(o *ToDoList) bool {
	if l == nil || o == nil {
		return l == o
	}
	if l.Size() != o.Size() {
		return false
	}
	for key := range l.entries {
		if _, ok := o.entries[key]; !ok {
			return false
		}
	}
	return true
}
