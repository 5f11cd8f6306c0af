package core

import (
	"strings"
	"testing"
)

// rows renders the screen as trimmed-right rows, which keeps expectations
// readable.
func rows(s *Screen) []string {
	out := make([]string, s.Height())
	for y := range out {
		out[y] = strings.TrimRight(s.Row(y), " ")
	}
	return out
}

func assertRows(t *testing.T, s *Screen, expected ...string) {
	t.Helper()
	got := rows(s)
	for y, want := range expected {
		if got[y] != want {
			t.Errorf("row %d = %q, expected %q", y, got[y], want)
		}
	}
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	if got := s.String(); got != strings.Repeat(" ", 12)+"\n"+strings.Repeat(" ", 12)+"\n"+strings.Repeat(" ", 12)+"\n"+strings.Repeat(" ", 12) {
		t.Errorf("new screen is not blank: %q", got)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(8, 2)
	s.SetColored(1, 0, '▀', ColorGreen)
	s.DrawTextColored(0, 1, "HP", ColorRed)

	if c := s.GetCell(1, 0); c.Rune != '▀' || c.Color != ColorGreen {
		t.Errorf("GetCell(1, 0) = %+v, expected green ▀", c)
	}
	if c := s.GetCell(1, 1); c.Rune != 'P' || c.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected red P", c)
	}

	// Set resets the color.
	s.Set(1, 0, 'x')
	if c := s.GetCell(1, 0); c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", c.Color)
	}

	s.Clear()
	if c := s.GetCell(0, 1); c != blank {
		t.Errorf("after Clear, GetCell(0, 1) = %+v, expected blank", c)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	for _, p := range []Point{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.SetColored(p.X, p.Y, '#', ColorRed)
		if c := s.GetCell(p.X, p.Y); c != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p.X, p.Y, c)
		}
	}
	if strings.ContainsRune(s.String(), '#') {
		t.Error("out-of-bounds writes leaked into the buffer")
	}
}

func TestScreenTextClipping(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(7, 0, "Score")
	s.DrawText(-2, 1, "Level")
	s.DrawTextCentered(2, "GO")

	assertRows(t, s,
		"       Sco",
		"vel",
		"    GO",
	)
}

func TestScreenShapes(t *testing.T) {
	s := NewScreen(8, 6)
	s.DrawBox(NewRect(0, 0, 6, 4))
	s.DrawRect(NewRect(1, 1, 2, 2), '#')
	s.DrawRect(NewRect(7, 2, 1, 10), '|')
	s.DrawText(0, 4, "===")

	assertRows(t, s,
		"┌────┐",
		"│##  │",
		"│##  │ |",
		"└────┘ |",
		"===    |",
		"       |",
	)
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(3, 2)
	s.FillCell(Cell{Rune: '~', Color: ColorBlue})

	if got := s.String(); got != "~~~\n~~~" {
		t.Errorf("String() = %q, expected %q", got, "~~~\n~~~")
	}
	if s.GetCell(2, 1).Color != ColorBlue {
		t.Error("FillCell should set the color")
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 3, "World")

	s.Resize(3, 2)
	assertRows(t, s, "Hel", "")

	s.Resize(12, 5)
	if s.Width() != 12 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, expected 12x5", s.Width(), s.Height())
	}
	assertRows(t, s, "Hel", "", "", "", "")
	if len(strings.Split(s.String(), "\n")[0]) != 12 {
		t.Error("rows should grow to the new width")
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(5, 1)
	if got := s.Row(3); got != "     " {
		t.Errorf("Row(3) = %q, expected blank row", got)
	}
}
