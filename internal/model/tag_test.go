package model

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr error
	}{
		{in: "RED", want: ColorRed},
		{in: "orange", want: ColorOrange},
		{in: " Gray ", want: ColorGray},
		{in: "", wantErr: ErrEmptyField},
		{in: "teal", wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseColor(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorsAreValid(t *testing.T) {
	if len(Colors) != 10 {
		t.Fatalf("len(Colors) = %d, want 10", len(Colors))
	}
	for _, c := range Colors {
		if !c.Valid() {
			t.Errorf("%s.Valid() = false", c)
		}
	}
	if Color("").Valid() {
		t.Error(`Color("").Valid() = true`)
	}
}

func TestNewTag(t *testing.T) {
	tag, err := NewTag("urgent")
	if err != nil {
		t.Fatalf("NewTag() error = %v", err)
	}
	if tag.Name() != "urgent" || tag.Color() != ColorBlue {
		t.Errorf("NewTag() = %s, want urgent:BLUE", tag)
	}
	if tag.Text() != "urgent" {
		t.Errorf("Text() = %q, want %q", tag.Text(), "urgent")
	}
}

func TestNewColoredTagErrors(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		color   Color
		wantErr error
	}{
		{"empty name", "", ColorRed, ErrEmptyField},
		{"comma in name", "a,b", ColorRed, ErrInvalidArgument},
		{"carriage return in name", "a\r", ColorRed, ErrInvalidArgument},
		{"empty color", "x", "", ErrEmptyField},
		{"unknown color", "x", "TEAL", ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewColoredTag(tt.tag, tt.color)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewColoredTag(%q, %q) error = %v, want %v", tt.tag, tt.color, err, tt.wantErr)
			}
		})
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		in        string
		wantName  string
		wantColor Color
	}{
		{"work", "work", ColorBlue},
		{"work:RED", "work", ColorRed},
		{"work:green", "work", ColorGreen},
		{"ratio:3", "ratio:3", ColorBlue},
		{"a:b:PURPLE", "a:b", ColorPurple},
		{"time:12:30", "time:12:30", ColorBlue},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tag, err := ParseTag(tt.in)
			if err != nil {
				t.Fatalf("ParseTag(%q) error = %v", tt.in, err)
			}
			if tag.Name() != tt.wantName || tag.Color() != tt.wantColor {
				t.Errorf("ParseTag(%q) = %s, want %s:%s", tt.in, tag, tt.wantName, tt.wantColor)
			}
		})
	}

	if _, err := ParseTag(":RED"); !errors.Is(err, ErrEmptyField) {
		t.Errorf(`ParseTag(":RED") error = %v, want ErrEmptyField`, err)
	}
}

func TestTagWithIsCopy(t *testing.T) {
	orig, _ := NewColoredTag("home", ColorGreen)

	renamed, err := orig.WithName("house")
	if err != nil {
		t.Fatalf("WithName() error = %v", err)
	}
	recolored, err := orig.WithColor(ColorRed)
	if err != nil {
		t.Fatalf("WithColor() error = %v", err)
	}

	if orig.Name() != "home" || orig.Color() != ColorGreen {
		t.Errorf("original changed to %s", orig)
	}
	if renamed.Name() != "house" || renamed.Color() != ColorGreen {
		t.Errorf("WithName() = %s", renamed)
	}
	if recolored.Name() != "home" || recolored.Color() != ColorRed {
		t.Errorf("WithColor() = %s", recolored)
	}

	if _, err := orig.WithName(""); !errors.Is(err, ErrEmptyField) {
		t.Errorf(`WithName("") error = %v, want ErrEmptyField`, err)
	}
}

func TestTagEqual(t *testing.T) {
	blue, _ := NewTag("x")
	blue2, _ := NewColoredTag("x", ColorBlue)
	red, _ := NewColoredTag("x", ColorRed)

	if !blue.Equal(blue2) {
		t.Error("equal tags compare unequal")
	}
	if blue.Equal(red) {
		t.Error("tags differing in color compare equal")
	}
}

func TestFieldErrorMessage(t *testing.T) {
	_, err := NewTag("")
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("error %T is not a *FieldError", err)
	}
	if fe.Field != "name" {
		t.Errorf("Field = %q, want %q", fe.Field, "name")
	}
	if got, want := err.Error(), "name must not be empty"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
