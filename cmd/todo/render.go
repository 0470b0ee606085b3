package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todokeeper/internal/model"
	"github.com/nhle/todokeeper/internal/theme"
)

// printer renders todos, with or without color.
type printer struct {
	w     io.Writer
	plain bool
}

func (p printer) style(st lipgloss.Style, s string) string {
	if p.plain {
		return s
	}
	return st.Render(s)
}

func (p printer) attribute(a model.Attribute) string {
	if p.plain {
		if a.Color() == model.DefaultColor {
			return "#" + a.Text()
		}
		return fmt.Sprintf("#%s:%s", a.Text(), a.Color())
	}
	return theme.RenderAttribute(a)
}

func (p printer) todo(n int, todo model.ToDo) {
	line := fmt.Sprintf("%s %s", p.style(theme.IndexStyle, fmt.Sprintf("%3d.", n)), p.style(theme.TitleStyle, todo.Title()))
	if tags := todo.Tags(); len(tags) > 0 {
		chips := make([]string, 0, len(tags))
		for _, tag := range tags {
			chips = append(chips, p.attribute(tag))
		}
		line += "  " + strings.Join(chips, " ")
	}
	fmt.Fprintln(p.w, line)

	if d := todo.Description(); d != "" {
		for _, l := range strings.Split(d, "\n") {
			if p.plain {
				l = "    " + l
			} else {
				l = theme.DescriptionStyle.Render(l)
			}
			fmt.Fprintln(p.w, l)
		}
	}
}

func (p printer) list(todos []model.ToDo) {
	fmt.Fprintln(p.w, p.style(theme.HeaderStyle, fmt.Sprintf("Todos (%d)", len(todos))))
	if len(todos) == 0 {
		fmt.Fprintln(p.w, p.style(theme.HelpStyle, "Nothing to do. Add one with: todo add TITLE"))
		return
	}
	for i, todo := range todos {
		p.todo(i+1, todo)
	}
}
