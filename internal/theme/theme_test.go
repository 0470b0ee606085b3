package theme

import (
	"strings"
	"testing"
	"time"

	"github.com/nhle/todokeeper/internal/model"
)

func TestEveryColorHasForeground(t *testing.T) {
	for _, c := range model.Colors {
		if _, ok := palette[c]; !ok {
			t.Errorf("no palette entry for %s", c)
		}
	}
	if Foreground("TEAL") != ColorGray {
		t.Error("unknown color does not fall back to gray")
	}
}

func TestRenderAttribute(t *testing.T) {
	tag, err := model.NewColoredTag("urgent", model.ColorRed)
	if err != nil {
		t.Fatal(err)
	}
	if got := RenderAttribute(tag); !strings.Contains(got, "#urgent") {
		t.Errorf("RenderAttribute(tag) = %q", got)
	}

	due := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	d, err := model.NewDeadline(due)
	if err != nil {
		t.Fatal(err)
	}
	if got := RenderAttribute(d); !strings.Contains(got, "@"+due.Format(time.RFC3339)) {
		t.Errorf("RenderAttribute(deadline) = %q", got)
	}
	if AttributeStyle(d).GetReverse() {
		t.Error("future deadline rendered as overdue")
	}
	if !AttributeStyle(tag).GetBold() {
		t.Error("tag chip is not bold")
	}
}
