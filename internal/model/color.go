package model

import "strings"

// Color is the color of an attribute. The zero value means unset.
type Color string

// Attribute colors.
const (
	ColorRed    Color = "RED"
	ColorBlue   Color = "BLUE"
	ColorYellow Color = "YELLOW"
	ColorGreen  Color = "GREEN"
	ColorWhite  Color = "WHITE"
	ColorBlack  Color = "BLACK"
	ColorGray   Color = "GRAY"
	ColorPurple Color = "PURPLE"
	ColorBrown  Color = "BROWN"
	ColorOrange Color = "ORANGE"
)

// DefaultColor is applied when no color is given.
const DefaultColor = ColorBlue

// Colors lists every valid color in declaration order.
var Colors = []Color{
	ColorRed, ColorBlue, ColorYellow, ColorGreen, ColorWhite,
	ColorBlack, ColorGray, ColorPurple, ColorBrown, ColorOrange,
}

// Valid reports whether c is one of the declared colors.
func (c Color) Valid() bool {
	for _, known := range Colors {
		if c == known {
			return true
		}
	}
	return false
}

func (c Color) String() string {
	return string(c)
}

// ParseColor parses a color name case-insensitively.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", emptyField("color")
	}
	c := Color(strings.ToUpper(s))
	if !c.Valid() {
		return "", invalidField("color", "unknown color %q", s)
	}
	return c, nil
}

func checkColor(c Color) error {
	if c == "" {
		return emptyField("color")
	}
	if !c.Valid() {
		return invalidField("color", "unknown color %q", string(c))
	}
	return nil
}
