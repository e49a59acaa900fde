package core

import "testing"

func TestColorCode(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorOrange, "208"},
		{ColorPurple, "129"},
		{ColorBrightWhite, "15"},
		{ColorCount, ""},
		{Color(200), ""},
	}

	for _, tt := range tests {
		if got := tt.color.Code(); got != tt.want {
			t.Errorf("Color(%d).Code() = %q, want %q", tt.color, got, tt.want)
		}
	}
}

func TestEveryColorHasCode(t *testing.T) {
	for c := ColorDefault + 1; c < ColorCount; c++ {
		if c.Code() == "" {
			t.Errorf("Color(%d) has no ANSI code", c)
		}
	}
}
