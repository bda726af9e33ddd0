package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	if s.GetCell(10, 10) != blankCell {
		t.Errorf("new screen should be blank, got %+v", s.GetCell(10, 10))
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", cell)
	}

	// Out of bounds writes are ignored, reads are blank
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)
	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("out of bounds Get should return space")
	}

	s.Clear()
	if s.GetCell(5, 5) != blankCell {
		t.Error("Clear should reset cells")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Héllo", ColorYellow)

	if s.GetCell(3, 1).Rune != 'é' || s.GetCell(6, 1).Rune != 'o' {
		t.Errorf("multi-byte runes should occupy one cell each, row = %q", s.Row(1))
	}
	if s.GetCell(2, 1).Color != ColorYellow {
		t.Error("DrawTextColored should apply the color")
	}

	s.DrawText(18, 0, "Hello")
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorWhite)

	corners := map[[2]int]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for pos, want := range corners {
		if got := s.GetCell(pos[0], pos[1]).Rune; got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.GetCell(3, 1).Rune != '─' || s.GetCell(1, 2).Rune != '│' {
		t.Error("edges should use box-drawing characters")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorGreen)

	if s.GetCell(4, 4).Rune != '#' || s.GetCell(5, 5).Rune != ' ' {
		t.Errorf("DrawRect filled wrong area:\n%s", s.String())
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawHLine(0, 2, 5, 'C', ColorDefault)

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(8, 2)
	if s.Width() != 8 || s.Height() != 2 {
		t.Fatalf("after resize dimensions = %dx%d", s.Width(), s.Height())
	}
	if row := s.Row(0); row != strings.Repeat(" ", 8) {
		t.Errorf("resized screen should be blank, row 0 = %q", row)
	}
	if row := s.Row(-1); len(row) != 8 {
		t.Errorf("out of bounds row should be padded to width, got %q", row)
	}
}
