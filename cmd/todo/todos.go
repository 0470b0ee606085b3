package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhle/todokeeper/internal/model"
	"github.com/nhle/todokeeper/internal/store"
)

func (s *session) printer() printer {
	return printer{w: s.out, plain: s.cfg.Display.Plain}
}

func newAddCmd(s *session) *cobra.Command {
	var (
		description string
		tagArgs     []string
	)

	cmd := &cobra.Command{
		Use:     "add TITLE",
		GroupID: "todos",
		Short:   "Add a todo",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := make([]model.Tag, 0, len(tagArgs))
			for _, arg := range tagArgs {
				tag, err := s.parseTag(arg)
				if err != nil {
					return fmt.Errorf("tag %q: %w", arg, err)
				}
				tags = append(tags, tag)
			}
			todo, err := model.NewToDo(args[0], description, tags...)
			if err != nil {
				return err
			}

			return s.update(cmd.Context(), func(list *store.ToDoList) error {
				added, err := list.AddToDo(todo)
				if err != nil {
					return err
				}
				if !added {
					s.log.Warn("todo already exists", "title", todo.Title())
					return nil
				}
				s.log.Info("todo added", "title", todo.Title(), "todos", list.Size())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "todo description")
	cmd.Flags().StringArrayVarP(&tagArgs, "tag", "t", nil, "tag as NAME or NAME:COLOR (repeatable)")
	return cmd
}

func newListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		GroupID: "todos",
		Short:   "List todos",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := s.load()
			if err != nil {
				return err
			}
			s.printer().list(list.Snapshot())
			return nil
		},
	}
}

func newRemoveCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "rm N",
		GroupID: "todos",
		Short:   "Remove the todo at position N",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.update(cmd.Context(), func(list *store.ToDoList) error {
				todo, err := resolve(list, args[0])
				if err != nil {
					return err
				}
				if _, err := list.RemoveToDo(todo); err != nil {
					return err
				}
				s.log.Info("todo removed", "title", todo.Title())
				return nil
			})
		},
	}
}

// modifyCmd builds a command that rewrites the todo at position N with the
// second argument.
func modifyCmd(s *session, use, short string, apply func(list *store.ToDoList, todo model.ToDo, arg string) (*model.ToDo, error)) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		GroupID: "todos",
		Short:   short,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.update(cmd.Context(), func(list *store.ToDoList) error {
				todo, err := resolve(list, args[0])
				if err != nil {
					return err
				}
				updated, err := apply(list, todo, args[1])
				if err != nil {
					return err
				}
				if updated == nil {
					return fmt.Errorf("todo %s vanished from the list", todo)
				}
				s.log.Info(cmd.Name()+" updated", "todo", updated.String(), "todos", list.Size())
				return nil
			})
		},
	}
}

func newTitleCmd(s *session) *cobra.Command {
	return modifyCmd(s, "title N TITLE", "Change the title of the todo at position N",
		func(list *store.ToDoList, todo model.ToDo, title string) (*model.ToDo, error) {
			return list.ModifyTitle(todo, title)
		})
}

func newDescribeCmd(s *session) *cobra.Command {
	return modifyCmd(s, "describe N DESCRIPTION", "Change the description of the todo at position N",
		func(list *store.ToDoList, todo model.ToDo, description string) (*model.ToDo, error) {
			return list.ModifyDescription(todo, description)
		})
}

func newTagCmd(s *session) *cobra.Command {
	return modifyCmd(s, "tag N NAME[:COLOR]", "Attach a tag to the todo at position N",
		func(list *store.ToDoList, todo model.ToDo, arg string) (*model.ToDo, error) {
			tag, err := s.parseTag(arg)
			if err != nil {
				return nil, fmt.Errorf("tag %q: %w", arg, err)
			}
			if todo.HasTag(tag) {
				s.log.Warn("tag already attached", "tag", tag.String())
			}
			return list.AddTag(todo, tag)
		})
}

func newUntagCmd(s *session) *cobra.Command {
	return modifyCmd(s, "untag N NAME[:COLOR]", "Detach a tag from the todo at position N",
		func(list *store.ToDoList, todo model.ToDo, arg string) (*model.ToDo, error) {
			tag, err := s.parseTag(arg)
			if err != nil {
				return nil, fmt.Errorf("tag %q: %w", arg, err)
			}
			if !todo.HasTag(tag) {
				s.log.Warn("tag not attached", "tag", tag.String())
			}
			return list.DeleteTag(todo, tag)
		})
}

func newTagsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "tags",
		GroupID: "todos",
		Short:   "List the distinct tags in use",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := s.load()
			if err != nil {
				return err
			}
			p := s.printer()
			for _, tag := range distinctTags(list) {
				fmt.Fprintln(p.w, p.attribute(tag))
			}
			return nil
		},
	}
}

// distinctTags returns every tag attached to some todo, in first-use order.
func distinctTags(list *store.ToDoList) []model.Tag {
	seen := make(map[model.Tag]bool)
	var tags []model.Tag
	for todo := range list.All() {
		for _, tag := range todo.Tags() {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
