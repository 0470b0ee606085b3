// Package importer seeds a todo list from YAML documents.
package importer

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nhle/todokeeper/internal/model"
	"github.com/nhle/todokeeper/internal/store"
)

// YAMLToDo represents a single todo in the YAML input. Tags are written
// as "name" or "name:COLOR".
type YAMLToDo struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// YAMLInput represents the root structure of the YAML input.
type YAMLInput struct {
	ToDos []YAMLToDo `yaml:"todos"`
}

// Import parses a YAML document and adds its todos to list. Todos equal
// to one already stored are skipped. Either every entry is valid and the
// list is updated, or an error is returned and the list is untouched.
// Returns the number of todos added.
func Import(list *store.ToDoList, yamlStr string) (int, error) {
	if list == nil {
		return 0, fmt.Errorf("%w: nil list", model.ErrInvalidArgument)
	}

	var input YAMLInput
	if err := yaml.Unmarshal([]byte(yamlStr), &input); err != nil {
		return 0, fmt.Errorf("YAML parse error: %w", err)
	}

	if len(input.ToDos) == 0 {
		return 0, fmt.Errorf("no todos found in YAML")
	}

	todos := make([]model.ToDo, 0, len(input.ToDos))
	for i, yt := range input.ToDos {
		todo, err := buildToDo(yt)
		if err != nil {
			return 0, fmt.Errorf("todo %d: %w", i+1, err)
		}
		todos = append(todos, todo)
	}

	staged := list.Clone()
	count := 0
	for _, todo := range todos {
		added, err := staged.AddToDo(todo)
		if err != nil {
			return 0, fmt.Errorf("add todo %s: %w", todo, err)
		}
		if added {
			count++
		}
	}

	*list = *staged
	return count, nil
}

func buildToDo(yt YAMLToDo) (model.ToDo, error) {
	tags := make([]model.Tag, 0, len(yt.Tags))
	for _, raw := range yt.Tags {
		tag, err := model.ParseTag(raw)
		if err != nil {
			return model.ToDo{}, fmt.Errorf("tag %q: %w", raw, err)
		}
		tags = append(tags, tag)
	}
	return model.NewToDo(yt.Title, yt.Description, tags...)
}
