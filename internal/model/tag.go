package model

import (
	"fmt"
	"strings"
)

// Tag is a named, colored marker attached to a todo. Tags are values:
// two tags are equal iff their names and colors are equal.
type Tag struct {
	name  string
	color Color
}

// NewTag creates a tag with the default color.
func NewTag(name string) (Tag, error) {
	return NewColoredTag(name, DefaultColor)
}

// NewColoredTag creates a tag with an explicit color.
func NewColoredTag(name string, color Color) (Tag, error) {
	if err := checkTagName(name); err != nil {
		return Tag{}, err
	}
	if err := checkColor(color); err != nil {
		return Tag{}, err
	}
	return Tag{name: name, color: color}, nil
}

// ParseTag parses "name" or "name:COLOR". A suffix that is not a color
// name is kept as part of the tag name.
func ParseTag(s string) (Tag, error) {
	if i := strings.LastIndex(s, ":"); i >= 0 {
		if c := Color(strings.ToUpper(s[i+1:])); c.Valid() {
			return NewColoredTag(s[:i], c)
		}
	}
	return NewTag(s)
}

func checkTagName(name string) error {
	if name == "" {
		return emptyField("name")
	}
	if strings.Contains(name, ",") {
		return invalidField("name", "tag name %q must not contain a comma", name)
	}
	return checkText("name", name)
}

// Name returns the tag name.
func (t Tag) Name() string { return t.name }

// Color returns the tag color.
func (t Tag) Color() Color { return t.color }

// Text returns the tag name.
func (t Tag) Text() string { return t.name }

// IsZero reports whether t is the zero Tag, which is never valid.
func (t Tag) IsZero() bool { return t.name == "" }

// WithName returns a copy of t renamed to name.
func (t Tag) WithName(name string) (Tag, error) {
	if err := checkTagName(name); err != nil {
		return t, err
	}
	t.name = name
	return t, nil
}

// WithColor returns a copy of t with the given color.
func (t Tag) WithColor(color Color) (Tag, error) {
	if err := checkColor(color); err != nil {
		return t, err
	}
	t.color = color
	return t, nil
}

// Equal reports whether a is a Tag with the same name and color.
func (t Tag) Equal(a Attribute) bool {
	o, ok := a.(Tag)
	return ok && o == t
}

// String formats the tag as "name:COLOR".
func (t Tag) String() string {
	return fmt.Sprintf("%s:%s", t.name, t.color)
}

func (Tag) attribute() {}
