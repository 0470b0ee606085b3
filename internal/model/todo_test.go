package model

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func mustTag(t *testing.T, name string, color Color) Tag {
	t.Helper()
	tag, err := NewColoredTag(name, color)
	if err != nil {
		t.Fatalf("NewColoredTag(%q, %s) error = %v", name, color, err)
	}
	return tag
}

func TestNewToDo(t *testing.T) {
	before := time.Now().UTC()
	todo, err := NewToDo("Buy milk", "")
	if err != nil {
		t.Fatalf("NewToDo() error = %v", err)
	}
	if todo.Title() != "Buy milk" || todo.Description() != "" {
		t.Errorf("NewToDo() = %q/%q", todo.Title(), todo.Description())
	}
	if todo.Creation().Before(before) || todo.Creation().Location() != time.UTC {
		t.Errorf("Creation() = %v, want UTC at or after %v", todo.Creation(), before)
	}
	if len(todo.Tags()) != 0 {
		t.Errorf("Tags() = %v, want empty", todo.Tags())
	}
	if !todo.Valid() {
		t.Error("Valid() = false")
	}
}

func TestNewToDoEmptyTitle(t *testing.T) {
	_, err := NewToDo("", "desc")
	if !errors.Is(err, ErrEmptyField) {
		t.Errorf("NewToDo(\"\") error = %v, want ErrEmptyField", err)
	}
	if (ToDo{}).Valid() {
		t.Error("zero ToDo is valid")
	}
}

func TestNewToDoDedupsTags(t *testing.T) {
	a := mustTag(t, "a", ColorBlue)
	b := mustTag(t, "b", ColorRed)

	todo, err := NewToDo("t", "", a, b, a)
	if err != nil {
		t.Fatalf("NewToDo() error = %v", err)
	}
	if diff := cmp.Diff([]Tag{a, b}, todo.Tags(), cmp.AllowUnexported(Tag{})); diff != "" {
		t.Errorf("Tags() mismatch (-want +got):\n%s", diff)
	}

	if _, err := NewToDo("t", "", Tag{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewToDo with zero tag error = %v, want ErrInvalidArgument", err)
	}
}

func TestToDoAddTagTwice(t *testing.T) {
	todo, _ := NewToDo("Pay rent", "")
	urgent := mustTag(t, "urgent", ColorBlue)

	added, err := todo.AddTag(urgent)
	if err != nil || !added {
		t.Fatalf("first AddTag() = %v, %v; want true, nil", added, err)
	}
	added, err = todo.AddTag(urgent)
	if err != nil || added {
		t.Fatalf("second AddTag() = %v, %v; want false, nil", added, err)
	}
	if n := len(todo.Tags()); n != 1 {
		t.Errorf("len(Tags()) = %d, want 1", n)
	}
}

func TestToDoDeleteTag(t *testing.T) {
	a := mustTag(t, "a", ColorBlue)
	b := mustTag(t, "b", ColorBlue)
	c := mustTag(t, "c", ColorBlue)
	todo, _ := NewToDo("t", "", a, b, c)

	deleted, err := todo.DeleteTag(b)
	if err != nil || !deleted {
		t.Fatalf("DeleteTag() = %v, %v; want true, nil", deleted, err)
	}
	deleted, _ = todo.DeleteTag(b)
	if deleted {
		t.Error("deleting a missing tag reported true")
	}
	if diff := cmp.Diff([]Tag{a, c}, todo.Tags(), cmp.AllowUnexported(Tag{})); diff != "" {
		t.Errorf("Tags() mismatch (-want +got):\n%s", diff)
	}
	if _, err := todo.DeleteTag(Tag{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("DeleteTag(zero) error = %v, want ErrInvalidArgument", err)
	}
}

func TestToDoCopiesAreIndependent(t *testing.T) {
	a := mustTag(t, "a", ColorBlue)
	b := mustTag(t, "b", ColorBlue)
	orig, _ := NewToDo("t", "", a)

	// Plain assignment shares the backing array until a mutation.
	cp := orig
	if _, err := cp.AddTag(b); err != nil {
		t.Fatal(err)
	}
	if orig.HasTag(b) {
		t.Error("AddTag on a copy leaked into the original")
	}

	cp = orig
	if _, err := cp.DeleteTag(a); err != nil {
		t.Fatal(err)
	}
	if !orig.HasTag(a) {
		t.Error("DeleteTag on a copy leaked into the original")
	}

	tags := orig.Tags()
	tags[0] = b
	if !orig.HasTag(a) {
		t.Error("mutating Tags() result changed the todo")
	}
}

func TestToDoChangeTitle(t *testing.T) {
	todo, _ := NewToDo("old", "")
	if err := todo.ChangeTitle(""); !errors.Is(err, ErrEmptyField) {
		t.Errorf("ChangeTitle(\"\") error = %v, want ErrEmptyField", err)
	}
	if todo.Title() != "old" {
		t.Errorf("failed ChangeTitle changed title to %q", todo.Title())
	}
	if err := todo.ChangeTitle("new"); err != nil {
		t.Fatalf("ChangeTitle() error = %v", err)
	}
	if err := todo.ChangeDescription("line1\nline2"); err != nil {
		t.Fatalf("ChangeDescription() error = %v", err)
	}
	if todo.Title() != "new" || todo.Description() != "line1\nline2" {
		t.Errorf("got %q/%q", todo.Title(), todo.Description())
	}
}

func TestToDoEqual(t *testing.T) {
	a := mustTag(t, "a", ColorBlue)
	b := mustTag(t, "b", ColorRed)
	earlier := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Hour)

	x, _ := RestoreToDo("t", "d", earlier, a, b)
	y, _ := RestoreToDo("t", "d", later, b, a)
	z, _ := RestoreToDo("t", "d", earlier, a, mustTag(t, "b", ColorBlue))

	if !x.Equal(y) || x.Key() != y.Key() {
		t.Error("todos differing only in creation and tag order compare unequal")
	}
	if x.Equal(z) || x.Key() == z.Key() {
		t.Error("todos with differently colored tags compare equal")
	}
}

func TestToDoKeyDistinguishesFields(t *testing.T) {
	x, _ := RestoreToDo("a b", "", time.Time{})
	y, _ := RestoreToDo("a", "b", time.Time{})
	if x.Key() == y.Key() {
		t.Errorf("Key() collision: %s", x.Key())
	}
}

func TestToDoData(t *testing.T) {
	creation := time.Date(2024, 3, 5, 9, 30, 0, 123000000, time.UTC)
	todo, _ := RestoreToDo("t", "d", creation, mustTag(t, "x", ColorRed), mustTag(t, "y", ColorBlue))

	want := Data{
		Title:       "t",
		Description: "d",
		Creation:    "2024-03-05T09:30:00.123Z",
		Tags:        []string{"x", "y"},
	}
	if diff := cmp.Diff(want, todo.Data()); diff != "" {
		t.Errorf("Data() mismatch (-want +got):\n%s", diff)
	}
}

func TestCarriageReturnRejected(t *testing.T) {
	tests := []struct {
		name        string
		title, desc string
	}{
		{"bare title", "\r", ""},
		{"trailing in title", "x\r", ""},
		{"inside title", "a\rb", ""},
		{"trailing in description", "x", "d\r"},
		{"CRLF description", "x", "line1\r\nline2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewToDo(tt.title, tt.desc)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("NewToDo(%q, %q) error = %v, want ErrInvalidArgument", tt.title, tt.desc, err)
			}
		})
	}

	todo, _ := NewToDo("ok", "fine")
	if err := todo.ChangeTitle("x\r"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ChangeTitle error = %v, want ErrInvalidArgument", err)
	}
	if err := todo.ChangeDescription("d\r"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ChangeDescription error = %v, want ErrInvalidArgument", err)
	}
	if todo.Title() != "ok" || todo.Description() != "fine" {
		t.Errorf("rejected changes applied: %q/%q", todo.Title(), todo.Description())
	}
}
