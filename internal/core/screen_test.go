package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 {
		t.Errorf("Width() = %d, expected 40", s.Width())
	}
	if s.Height() != 12 {
		t.Errorf("Height() = %d, expected 12", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetWithColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetWithColor(3, 2, 'X', ColorMarkX)
	cell := s.GetCell(3, 2)
	if cell.Rune != 'X' || cell.Color != ColorMarkX {
		t.Errorf("GetCell(3, 2) = %+v, expected X with ColorMarkX", cell)
	}

	// Out of bounds writes are ignored, reads return blank
	s.SetWithColor(-1, 0, 'A', ColorAlert)
	s.SetWithColor(0, 99, 'A', ColorAlert)
	if got := s.GetCell(-1, 0); got != blank {
		t.Errorf("Out of bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "X─O")

	// 3 runes in 11 columns starts at column 4 even though '─' is multi-byte
	if s.Row(0) != "    X─O    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorGrid)

	expected := "┌───┐\n│   │\n└───┘"
	if s.String() != expected {
		t.Errorf("DrawBox got\n%s\nexpected\n%s", s.String(), expected)
	}
	if s.GetCell(0, 0).Color != ColorGrid {
		t.Error("Box corner should carry the grid color")
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "XOXO")
	s.Resize(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("Resize got %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("Resized screen should be blank, got %q", s.String())
	}
}

func TestRectCentered(t *testing.T) {
	r := NewRect(0, 0, 80, 24).Centered(13, 7)
	if r.X != 33 || r.Y != 8 {
		t.Errorf("Centered() = (%d, %d), expected (33, 8)", r.X, r.Y)
	}
	if !r.Contains(33, 8) || r.Contains(46, 8) {
		t.Error("Contains() should include the origin and exclude the right edge")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{1, 0, 2, 1},
		{-1, 0, 2, 0},
		{3, 0, 2, 2},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("New frame should be empty")
	}

	f.Set(ActionUndo)
	f.SelectCell(4)
	if !f.Has(ActionUndo) || !f.HasCell() || f.Cell != 4 {
		t.Errorf("Frame did not record input: %+v", f)
	}

	f.Clear()
	if !f.Empty() || f.HasCell() {
		t.Errorf("Clear() left input behind: %+v", f)
	}
}
