package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 28)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 28 {
		t.Errorf("Height() = %d, expected 28", s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("GetCell(%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '█', ColorYellow)
	if c := s.GetCell(5, 5); c.Rune != '█' || c.Color != ColorYellow {
		t.Errorf("GetCell(5, 5) = %+v, expected yellow block", c)
	}

	s.Set(5, 5, 'X')
	if c := s.GetCell(5, 5); c.Color != ColorDefault {
		t.Errorf("Set should reset colour, got %v", c.Color)
	}

	// Out of bounds is ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "▲▲")
	if s.Get(4, 0) != '▲' || s.Get(5, 0) != '▲' {
		t.Errorf("centered text row = %q", s.Row(0))
	}
}

func TestScreenDrawRectColored(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRectColored(NewRect(2, 2, 3, 3), '▓', ColorRed)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '▓' || c.Color != ColorRed {
				t.Errorf("GetCell(%d, %d) = %+v, expected red brick", x, y, c)
			}
		}
	}
	if s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("Get(%d, %d) = %q, expected %q", pos[0], pos[1], got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox edges missing")
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
	if got := s.String(); got != "AAA\nBBB" {
		t.Errorf("String() after shrink = %q", got)
	}

	s.Resize(6, 3)
	if !strings.HasPrefix(s.Row(0), "AAA") {
		t.Errorf("Row(0) after grow = %q", s.Row(0))
	}
	if s.Row(-1) != "      " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
