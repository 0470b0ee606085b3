package backup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nhle/todokeeper/internal/model"
)

const (
	// sentinel replaces newlines inside a field.
	sentinel = "\x00"

	// tagSeparator joins tag entries on the tag line.
	tagSeparator = ", "

	// linesPerRecord is title, description, creation and tag line.
	linesPerRecord = 4
)

// DecodeError reports backup text that could not be decoded. It matches
// model.ErrCorruptBackup as well as its cause under errors.Is.
type DecodeError struct {
	Line int   // 1-based line number, 0 if not tied to a line
	Err  error // underlying cause
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v: line %d: %v", model.ErrCorruptBackup, e.Line, e.Err)
	}
	return fmt.Sprintf("%v: %v", model.ErrCorruptBackup, e.Err)
}

// Unwrap returns the corrupt-backup sentinel and the cause.
func (e *DecodeError) Unwrap() []error {
	return []error{model.ErrCorruptBackup, e.Err}
}

func corrupt(line int, format string, args ...any) error {
	return &DecodeError{Line: line, Err: fmt.Errorf(format, args...)}
}

func sanitize(field string) string {
	return strings.ReplaceAll(field, "\n", sentinel)
}

func unsanitize(field string) string {
	return strings.ReplaceAll(field, sentinel, "\n")
}

// encodeTag writes a default-colored tag as its bare name. Other colors,
// and names that could be mistaken for a colored entry, get a ":COLOR"
// suffix.
func encodeTag(tag model.Tag) string {
	if tag.Color() == model.DefaultColor && !strings.Contains(tag.Name(), ":") {
		return tag.Name()
	}
	return tag.Name() + ":" + string(tag.Color())
}

// Encode renders todos in the backup text format: the count on the first
// line, then title, description, creation and tag line for each todo.
// Every line, the last included, ends with a newline.
func Encode(todos []model.ToDo) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(todos)))
	b.WriteByte('\n')

	for _, todo := range todos {
		data := todo.Data()
		for _, field := range []string{data.Title, data.Description, data.Creation} {
			b.WriteString(sanitize(field))
			b.WriteByte('\n')
		}

		tags := todo.Tags()
		entries := make([]string, len(tags))
		for i, tag := range tags {
			entries[i] = encodeTag(tag)
		}
		b.WriteString(sanitize(strings.Join(entries, tagSeparator)))
		b.WriteByte('\n')
	}

	return b.String()
}

// splitLines splits on \n or \r\n. The empty remainder after a final
// newline is not a line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Decode parses backup text produced by Encode. Any malformed record
// fails the whole decode with a *DecodeError; no partial result is
// returned.
func Decode(text string) ([]model.ToDo, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, corrupt(0, "missing record count")
	}

	count, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, corrupt(1, "invalid record count %q", lines[0])
	}
	if count < 0 {
		return nil, corrupt(1, "negative record count %d", count)
	}
	if count > (len(lines)-1)/linesPerRecord {
		return nil, corrupt(len(lines), "expected %d records, found %d lines", count, len(lines)-1)
	}

	todos := make([]model.ToDo, 0, count)
	for i := range count {
		first := 1 + i*linesPerRecord
		todo, err := decodeRecord(lines[first:first+linesPerRecord], first+1)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	for i := 1 + count*linesPerRecord; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			return nil, corrupt(i+1, "unexpected content after %d records", count)
		}
	}

	return todos, nil
}

// decodeRecord rebuilds one todo from its four lines; line is the 1-based
// number of the title line.
func decodeRecord(record []string, line int) (model.ToDo, error) {
	title := unsanitize(record[0])
	description := unsanitize(record[1])

	creation, err := time.Parse(model.CreationLayout, unsanitize(record[2]))
	if err != nil {
		return model.ToDo{}, &DecodeError{Line: line + 2, Err: fmt.Errorf("parsing creation: %w", err)}
	}

	var tags []model.Tag
	if tagLine := unsanitize(record[3]); tagLine != "" {
		for _, entry := range strings.Split(tagLine, tagSeparator) {
			tag, err := model.ParseTag(entry)
			if err != nil {
				return model.ToDo{}, &DecodeError{Line: line + 3, Err: fmt.Errorf("parsing tag %q: %w", entry, err)}
			}
			tags = append(tags, tag)
		}
	}

	todo, err := model.RestoreToDo(title, description, creation, tags...)
	if err != nil {
		at := line + 3
		var fe *model.FieldError
		if errors.As(err, &fe) {
			switch fe.Field {
			case "title":
				at = line
			case "description":
				at = line + 1
			}
		}
		return model.ToDo{}, &DecodeError{Line: at, Err: err}
	}
	return todo, nil
}
