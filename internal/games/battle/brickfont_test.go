package battle

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBrickTextShape(t *testing.T) {
	for _, word := range []string{"game over", "battle", "city", "a"} {
		rows := BrickText(word, '#')
		if len(rows) != BrickHeight {
			t.Fatalf("BrickText(%q) has %d rows, expected %d", word, len(rows), BrickHeight)
		}
		width := utf8.RuneCountInString(rows[0])
		for i, r := range rows {
			if n := utf8.RuneCountInString(r); n != width {
				t.Errorf("BrickText(%q) row %d width = %d, expected %d", word, i, n, width)
			}
		}
		if width == 0 {
			t.Errorf("BrickText(%q) is empty", word)
		}
	}
}

func TestBrickTextSkipsUnknownLetters(t *testing.T) {
	plain := BrickText("tt", '#')
	mixed := BrickText("t?t", '#')
	for i := range plain {
		if plain[i] != mixed[i] {
			t.Errorf("row %d = %q, expected %q", i, mixed[i], plain[i])
		}
	}
}

func TestBrickTextCaseAndRune(t *testing.T) {
	upper := BrickText("OVER", '▓')
	lower := BrickText("over", '▓')
	for i := range upper {
		if upper[i] != lower[i] {
			t.Errorf("row %d differs between cases", i)
		}
		if strings.ContainsAny(upper[i], "#") {
			t.Errorf("row %d = %q uses the wrong rune", i, upper[i])
		}
	}
	if !strings.ContainsRune(strings.Join(upper, ""), '▓') {
		t.Error("BrickText() drew nothing")
	}
}

func TestBrickTextEmpty(t *testing.T) {
	for i, r := range BrickText("", '#') {
		if r != "" {
			t.Errorf("row %d = %q, expected empty", i, r)
		}
	}
}
