package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nhle/todokeeper/internal/model"
)

// todoRow is a row of the todos table.
type todoRow struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	CreatedAt   string `db:"created_at"`
	SortOrder   int    `db:"sort_order"`
}

// SaveToDos replaces the stored todos with todos, in order, inside one
// transaction. Creation timestamps and tag colors are preserved.
func (s *SQLiteStore) SaveToDos(ctx context.Context, todos []model.ToDo) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Clear the previous snapshot. CASCADE removes todo_tags.
	for _, table := range []string{"todos", "tags"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	tagIDs := make(map[model.Tag]string)
	for i, todo := range todos {
		if !todo.Valid() {
			return fmt.Errorf("saving todo %d: %w: zero todo", i, model.ErrInvalidArgument)
		}

		id := uuid.New().String()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO todos (id, title, description, created_at, sort_order)
			VALUES (?, ?, ?, ?, ?)`,
			id, todo.Title(), todo.Description(),
			todo.Creation().Format(model.CreationLayout), i+1,
		)
		if err != nil {
			return fmt.Errorf("inserting todo %s: %w", todo, err)
		}

		for pos, tag := range todo.Tags() {
			tagID, err := upsertTag(ctx, tx, tag, tagIDs)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO todo_tags (todo_id, tag_id, position) VALUES (?, ?, ?)",
				id, tagID, pos); err != nil {
				return fmt.Errorf("setting tag %s on todo %s: %w", tag, todo, err)
			}
		}
	}

	return tx.Commit()
}

// LoadToDos returns the stored todos in their saved order.
func (s *SQLiteStore) LoadToDos(ctx context.Context) ([]model.ToDo, error) {
	var rows []todoRow
	if err := s.db.SelectContext(ctx, &rows,
		"SELECT id, title, description, created_at, sort_order FROM todos ORDER BY sort_order"); err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}

	todos := make([]model.ToDo, 0, len(rows))
	for _, row := range rows {
		todo, err := s.scanToDo(ctx, row)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, nil
}

// CountToDos returns the number of stored todos.
func (s *SQLiteStore) CountToDos(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM todos"); err != nil {
		return 0, fmt.Errorf("counting todos: %w", err)
	}
	return count, nil
}

// scanToDo rebuilds a todo from its row and its tag associations.
func (s *SQLiteStore) scanToDo(ctx context.Context, row todoRow) (model.ToDo, error) {
	creation, err := time.Parse(model.CreationLayout, row.CreatedAt)
	if err != nil {
		return model.ToDo{}, fmt.Errorf("parsing created_at of todo %s: %w", row.ID, err)
	}

	tags, err := s.getTagsForToDo(ctx, row.ID)
	if err != nil {
		return model.ToDo{}, err
	}

	todo, err := model.RestoreToDo(row.Title, row.Description, creation, tags...)
	if err != nil {
		return model.ToDo{}, fmt.Errorf("scanning todo %s: %w", row.ID, err)
	}
	return todo, nil
}

// upsertTag returns the id of tag, inserting it if needed. ids caches
// tags seen earlier in the same transaction.
func upsertTag(ctx context.Context, tx *sqlx.Tx, tag model.Tag, ids map[model.Tag]string) (string, error) {
	if id, ok := ids[tag]; ok {
		return id, nil
	}

	id := uuid.New().String()
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO tags (id, name, color) VALUES (?, ?, ?)",
		id, tag.Name(), string(tag.Color())); err != nil {
		return "", fmt.Errorf("creating tag %s: %w", tag, err)
	}
	ids[tag] = id
	return id, nil
}
