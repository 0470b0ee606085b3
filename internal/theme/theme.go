package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todokeeper/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue   = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen  = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorPurple = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorBrown  = lipgloss.AdaptiveColor{Dark: "#C08457", Light: "#7B4B2A"}
	ColorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite  = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorBlack  = lipgloss.AdaptiveColor{Dark: "#212529", Light: "#000000"}
	ColorSubtle = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
)

// palette maps attribute colors to terminal colors.
var palette = map[model.Color]lipgloss.AdaptiveColor{
	model.ColorRed:    ColorRed,
	model.ColorBlue:   ColorBlue,
	model.ColorYellow: ColorYellow,
	model.ColorGreen:  ColorGreen,
	model.ColorWhite:  ColorWhite,
	model.ColorBlack:  ColorBlack,
	model.ColorGray:   ColorGray,
	model.ColorPurple: ColorPurple,
	model.ColorBrown:  ColorBrown,
	model.ColorOrange: ColorOrange,
}

// HeaderStyle is used for the list title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// TitleStyle is used for todo titles.
var TitleStyle = lipgloss.NewStyle().Bold(true)

// IndexStyle is used for the position column of a listing.
var IndexStyle = lipgloss.NewStyle().Foreground(ColorGray)

// DescriptionStyle is used for todo descriptions.
var DescriptionStyle = lipgloss.NewStyle().
	PaddingLeft(4).
	Foreground(ColorGray)

// HelpStyle is used for hints and empty-state text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// Foreground returns the terminal color for an attribute color; unknown
// colors render gray.
func Foreground(c model.Color) lipgloss.AdaptiveColor {
	if fg, ok := palette[c]; ok {
		return fg
	}
	return ColorGray
}

// AttributeStyle returns the chip style for an attribute. Overdue
// deadlines are rendered in reverse video.
func AttributeStyle(a model.Attribute) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Foreground(Foreground(a.Color()))
	if d, ok := a.(model.Deadline); ok && d.Overdue() {
		return base.Reverse(true)
	}
	return base
}

// RenderAttribute renders an attribute chip such as "#urgent" or "@2026-01-02T15:04:05Z".
func RenderAttribute(a model.Attribute) string {
	prefix := "#"
	if _, ok := a.(model.Deadline); ok {
		prefix = "@"
	}
	return AttributeStyle(a).Render(prefix + a.Text())
}
