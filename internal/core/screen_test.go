package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)
	c := Cell{Rune: '▀', FG: ColorGrass, BG: ColorDirt}

	s.SetCell(5, 5, c)
	if got := s.GetCell(5, 5); got != c {
		t.Errorf("GetCell(5, 5) = %+v, expected %+v", got, c)
	}

	s.Set(5, 5, 'X')
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.FG != ColorGrass {
		t.Errorf("Set should keep colors, got %+v", got)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, c)
	s.SetCell(0, 100, c)
	if got := s.GetCell(100, 100); got.Rune != ' ' {
		t.Errorf("out of bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(7, 1, "Hello", ColorWhite, ColorBlack)

	if got := s.GetCell(7, 1); got.Rune != 'H' || got.FG != ColorWhite || got.BG != ColorBlack {
		t.Errorf("first cell = %+v", got)
	}
	if s.Get(9, 1) != 'l' {
		t.Errorf("clipped text: Get(9, 1) = %q, expected 'l'", s.Get(9, 1))
	}

	s.DrawTextCentered(0, "PAUSED", ColorWhite, ColorBlack)
	if s.Get(2, 0) != 'P' {
		t.Errorf("centered text starts at %q, expected 'P' at x=2", s.Get(2, 0))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(0, 0, 'X')

	s.Resize(4, 2)
	if s.Get(0, 0) != 'X' {
		t.Error("Resize to the same size should keep content")
	}

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Errorf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should clear content")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab", ColorWhite, Transparent)
	s.Set(2, 1, 'z')

	expected := "ab \n  z"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if strings.Count(s.String(), "\n") != 1 {
		t.Error("expected one newline between two rows")
	}
}
