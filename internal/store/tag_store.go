package store

import (
	"context"
	"fmt"

	"github.com/nhle/todokeeper/internal/model"
)

// tagRow is a row of the tags table.
type tagRow struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Color string `db:"color"`
}

func (r tagRow) toTag() (model.Tag, error) {
	tag, err := model.NewColoredTag(r.Name, model.Color(r.Color))
	if err != nil {
		return model.Tag{}, fmt.Errorf("scanning tag %s: %w", r.ID, err)
	}
	return tag, nil
}

// GetTags retrieves all stored tags ordered by name, then color.
func (s *SQLiteStore) GetTags(ctx context.Context) ([]model.Tag, error) {
	var rows []tagRow
	if err := s.db.SelectContext(ctx, &rows,
		"SELECT id, name, color FROM tags ORDER BY name, color"); err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}

	tags := make([]model.Tag, 0, len(rows))
	for _, row := range rows {
		tag, err := row.toTag()
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// getTagsForToDo retrieves the tags attached to a todo in attachment order.
func (s *SQLiteStore) getTagsForToDo(ctx context.Context, todoID string) ([]model.Tag, error) {
	var rows []tagRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT t.id, t.name, t.color FROM tags t
		INNER JOIN todo_tags tt ON t.id = tt.tag_id
		WHERE tt.todo_id = ?
		ORDER BY tt.position`, todoID)
	if err != nil {
		return nil, fmt.Errorf("querying tags for todo %s: %w", todoID, err)
	}

	tags := make([]model.Tag, 0, len(rows))
	for _, row := range rows {
		tag, err := row.toTag()
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
