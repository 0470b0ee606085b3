// Package model holds the value types of the todo store: ToDo, the
// attributes a todo can carry, colors, errors and configuration.
//
// Todos carry only Tags. Deadline shares the Attribute interface and is
// rendered by the theme, but no todo, list or backup stores one.
package model

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// CreationLayout is the string form of a todo creation timestamp.
const CreationLayout = time.RFC3339Nano

// ToDo is a task with a title, an optional description, a creation
// timestamp and a set of tags.
//
// Two todos are equal iff their titles, descriptions and tag sets are
// equal; the creation timestamp does not take part in equality.
//
// A ToDo is a value. Mutators never write into storage shared with
// another copy, so a copy made with plain assignment is unaffected by
// later mutations of the original. Use Clone for an explicit deep copy.
type ToDo struct {
	title       string
	description string
	creation    time.Time
	tags        []Tag
}

// Data is the read-only projection of a todo used by encoders.
type Data struct {
	Title       string
	Description string
	Creation    string
	Tags        []string
}

// NewToDo creates a todo stamped with the current time. Duplicate tags
// are dropped, keeping the first occurrence.
func NewToDo(title, description string, tags ...Tag) (ToDo, error) {
	return RestoreToDo(title, description, time.Now().UTC(), tags...)
}

// RestoreToDo creates a todo with an explicit creation timestamp.
func RestoreToDo(title, description string, creation time.Time, tags ...Tag) (ToDo, error) {
	if err := checkTitle(title); err != nil {
		return ToDo{}, err
	}
	if err := checkDescription(description); err != nil {
		return ToDo{}, err
	}
	t := ToDo{
		title:       title,
		description: description,
		creation:    creation,
	}
	for _, tag := range tags {
		if tag.IsZero() {
			return ToDo{}, invalidField("tags", "zero tag")
		}
		if !slices.Contains(t.tags, tag) {
			t.tags = append(t.tags, tag)
		}
	}
	return t, nil
}

// Backup lines are split on \n or \r\n, so a carriage return inside a
// field would not survive a save and restore.
func checkText(field, s string) error {
	if strings.Contains(s, "\r") {
		return invalidField(field, "%s must not contain a carriage return", field)
	}
	return nil
}

func checkTitle(title string) error {
	if title == "" {
		return emptyField("title")
	}
	return checkText("title", title)
}

func checkDescription(description string) error {
	return checkText("description", description)
}

// Clone returns an independent deep copy of t.
func (t ToDo) Clone() ToDo {
	t.tags = slices.Clone(t.tags)
	return t
}

// Valid reports whether t satisfies the todo invariants. The zero ToDo
// is not valid.
func (t ToDo) Valid() bool {
	return t.title != ""
}

// Title returns the todo title.
func (t ToDo) Title() string { return t.title }

// Description returns the todo description.
func (t ToDo) Description() string { return t.description }

// Creation returns the creation timestamp.
func (t ToDo) Creation() time.Time { return t.creation }

// Tags returns a copy of the tag set in insertion order.
func (t ToDo) Tags() []Tag { return slices.Clone(t.tags) }

// HasTag reports whether an equal tag is attached.
func (t ToDo) HasTag(tag Tag) bool {
	return slices.Contains(t.tags, tag)
}

// ChangeTitle replaces the title.
func (t *ToDo) ChangeTitle(title string) error {
	if err := checkTitle(title); err != nil {
		return err
	}
	t.title = title
	return nil
}

// ChangeDescription replaces the description. It may be empty or span
// several lines but must not contain a carriage return.
func (t *ToDo) ChangeDescription(description string) error {
	if err := checkDescription(description); err != nil {
		return err
	}
	t.description = description
	return nil
}

// AddTag attaches tag and reports true, or reports false without
// changes if an equal tag is already attached.
func (t *ToDo) AddTag(tag Tag) (bool, error) {
	if tag.IsZero() {
		return false, invalidField("tag", "zero tag")
	}
	if t.HasTag(tag) {
		return false, nil
	}
	// Clip forces a fresh backing array; copies of t keep theirs.
	t.tags = append(slices.Clip(t.tags), tag)
	return true, nil
}

// DeleteTag detaches tag and reports true, or reports false without
// changes if no equal tag is attached.
func (t *ToDo) DeleteTag(tag Tag) (bool, error) {
	if tag.IsZero() {
		return false, invalidField("tag", "zero tag")
	}
	i := slices.Index(t.tags, tag)
	if i < 0 {
		return false, nil
	}
	kept := make([]Tag, 0, len(t.tags)-1)
	kept = append(kept, t.tags[:i]...)
	t.tags = append(kept, t.tags[i+1:]...)
	return true, nil
}

// Data projects t into plain strings.
func (t ToDo) Data() Data {
	names := make([]string, len(t.tags))
	for i, tag := range t.tags {
		names[i] = tag.name
	}
	return Data{
		Title:       t.title,
		Description: t.description,
		Creation:    t.creation.Format(CreationLayout),
		Tags:        names,
	}
}

// Equal compares title, description and tag set.
func (t ToDo) Equal(o ToDo) bool {
	if t.title != o.title || t.description != o.description {
		return false
	}
	if len(t.tags) != len(o.tags) {
		return false
	}
	for _, tag := range t.tags {
		if !o.HasTag(tag) {
			return false
		}
	}
	return true
}

// Key returns a canonical identity string: two todos are Equal iff
// their keys are identical.
func (t ToDo) Key() string {
	tags := slices.Clone(t.tags)
	slices.SortFunc(tags, func(a, b Tag) int {
		return cmp.Or(cmp.Compare(a.name, b.name), cmp.Compare(a.color, b.color))
	})

	var b strings.Builder
	b.WriteString(strconv.Quote(t.title))
	b.WriteByte(' ')
	b.WriteString(strconv.Quote(t.description))
	for _, tag := range tags {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(tag.name))
		b.WriteByte(':')
		b.WriteString(string(tag.color))
	}
	return b.String()
}

func (t ToDo) String() string {
	return strconv.Quote(t.title)
}
