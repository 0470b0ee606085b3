package model

import (
	"fmt"
	"time"
)

// Attribute is the common interface of the markers a todo can carry.
// The set of implementations is closed: Tag and Deadline.
type Attribute interface {
	// Text returns the human-readable content of the attribute.
	Text() string
	// Color returns the attribute color.
	Color() Color
	// Equal reports value equality with another attribute.
	Equal(Attribute) bool

	attribute()
}

var (
	_ Attribute = Tag{}
	_ Attribute = Deadline{}
)

// Deadline is a time-based attribute.
type Deadline struct {
	due   time.Time
	color Color
}

// now is swapped in tests.
var now = time.Now

// NewDeadline creates a deadline with the default color. The due time
// must not be in the past.
func NewDeadline(due time.Time) (Deadline, error) {
	return NewColoredDeadline(due, DefaultColor)
}

// NewColoredDeadline creates a deadline with an explicit color.
func NewColoredDeadline(due time.Time, color Color) (Deadline, error) {
	if err := checkDue(due); err != nil {
		return Deadline{}, err
	}
	if err := checkColor(color); err != nil {
		return Deadline{}, err
	}
	return Deadline{due: due, color: color}, nil
}

func checkDue(due time.Time) error {
	if due.IsZero() {
		return emptyField("due")
	}
	if due.Before(now()) {
		return invalidField("due", "%s is in the past", due.Format(time.RFC3339))
	}
	return nil
}

// Due returns the deadline instant.
func (d Deadline) Due() time.Time { return d.due }

// Color returns the deadline color.
func (d Deadline) Color() Color { return d.color }

// Text returns the due instant in RFC 3339 form.
func (d Deadline) Text() string { return d.due.Format(time.RFC3339) }

// Overdue reports whether the deadline has passed.
func (d Deadline) Overdue() bool { return d.due.Before(now()) }

// WithDue returns a copy of d moved to due.
func (d Deadline) WithDue(due time.Time) (Deadline, error) {
	if err := checkDue(due); err != nil {
		return d, err
	}
	d.due = due
	return d, nil
}

// WithColor returns a copy of d with the given color.
func (d Deadline) WithColor(color Color) (Deadline, error) {
	if err := checkColor(color); err != nil {
		return d, err
	}
	d.color = color
	return d, nil
}

// Equal reports whether a is a Deadline at the same instant with the same color.
func (d Deadline) Equal(a Attribute) bool {
	o, ok := a.(Deadline)
	return ok && o.due.Equal(d.due) && o.color == d.color
}

func (d Deadline) String() string {
	return fmt.Sprintf("due %s:%s", d.Text(), d.color)
}

func (Deadline) attribute() {}
