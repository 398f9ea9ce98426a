package battle

import (
	"strconv"
	"strings"
)

// brickGlyphs holds the 7x7 title alphabet. Each glyph is 49 bits, row by
// row from the top-left, stored right-aligned in a 56-bit hex number.
var brickGlyphs = map[rune]string{
	'a': "0071b63c7ff1e3",
	'b': "01fb1e3fd8f1fe",
	'c': "00799e0c18199e",
	'e': "01fb060f98307e",
	'g': "007d860cf8d99f",
	'i': "01f8c183060c7e",
	'l': "0183060c18307e",
	'm': "018fbffffaf1e3",
	'o': "00fb1e3c78f1be",
	'r': "01fb1e3cff3767",
	't': "01f8c183060c18",
	'v': "018f1e3eef8e08",
	'y': "019b3667860c18",
}

// BrickHeight is the number of rows of a brick-font word.
const BrickHeight = 7

// glyphRows decodes one letter into seven rows of on/off cells.
func glyphRows(ch rune) ([BrickHeight][7]bool, int, bool) {
	var rows [BrickHeight][7]bool
	hex, ok := brickGlyphs[ch]
	if !ok {
		return rows, 0, false
	}
	bits, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return rows, 0, false
	}
	width := 0
	for i := range 49 {
		if bits&(1<<(48-i)) == 0 {
			continue
		}
		r, c := i/7, i%7
		rows[r][c] = true
		width = max(width, c+1)
	}
	return rows, width, true
}

// BrickText renders a word in the brick alphabet, one string per row. Each
// letter is as wide as its last filled column plus a one-cell gap; spaces
// are four cells wide. Letters outside the alphabet are skipped. All rows
// have the same width.
func BrickText(word string, on rune) []string {
	lines := make([]strings.Builder, BrickHeight)
	for _, ch := range strings.ToLower(word) {
		if ch == ' ' {
			for r := range lines {
				lines[r].WriteString("    ")
			}
			continue
		}
		rows, width, ok := glyphRows(ch)
		if !ok {
			continue
		}
		for r := range lines {
			for c := range width {
				if rows[r][c] {
					lines[r].WriteRune(on)
				} else {
					lines[r].WriteByte(' ')
				}
			}
			lines[r].WriteByte(' ')
		}
	}

	out := make([]string, BrickHeight)
	for r := range lines {
		out[r] = strings.TrimSuffix(lines[r].String(), " ")
	}
	return out
}
