package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if cell := s.GetCell(5, 5); cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawTextClipsAndCenters(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}

	s.DrawTextCentered(2, "Hi")
	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Errorf("unexpected corners:\n%s", s.String())
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Errorf("unexpected edges:\n%s", s.String())
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(3, 2)
	if got := s.Row(0); got != "AAA" {
		t.Errorf("Row(0) after shrink = %q", got)
	}

	s.Resize(8, 4)
	if !strings.HasPrefix(s.Row(1), "BBB") {
		t.Errorf("Content should be preserved after enlarging, row 1 = %q", s.Row(1))
	}
	if s.Row(-1) != "        " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}

func TestScreenDrawTextRightAndHLine(t *testing.T) {
	s := NewScreen(12, 2)
	s.DrawTextRight(0, 1, "Lvl 2")
	if got := s.Row(0); got != "      Lvl 2 " {
		t.Errorf("Row(0) = %q", got)
	}

	s.DrawHLine(-2, 1, 20, '═')
	if got := s.Row(1); got != strings.Repeat("═", 12) {
		t.Errorf("HLine should clip to the screen, row 1 = %q", got)
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, 2)
	if s.Width() != 0 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 0x2", s.Width(), s.Height())
	}
	s.Set(0, 0, 'X')
	if s.String() != "\n" {
		t.Errorf("String() = %q", s.String())
	}
}
