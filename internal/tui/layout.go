package tui

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Line is one display row of wrapped text, a [Start, End) byte interval of
// the flat text. A terminating newline is excluded from the interval.
type Line struct {
	Start, End int
}

// wrapText breaks text into display lines no wider than width cells.
// Newlines force a break; other runes wrap when the line is full. Widths
// are terminal cell widths, so East Asian wide runes count as two.
func wrapText(text string, width int) []Line {
	if width < 1 {
		width = 1
	}
	var lines []Line
	start, col := 0, 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\n' {
			lines = append(lines, Line{Start: start, End: i})
			i += size
			start, col = i, 0
			continue
		}
		w := runewidth.RuneWidth(r)
		if col > 0 && col+w > width {
			lines = append(lines, Line{Start: start, End: i})
			start, col = i, 0
		}
		i += size
		col += w
	}
	return append(lines, Line{Start: start, End: len(text)})
}

// lineIndex returns the index of the line containing flat offset off.
// An offset sitting on a newline byte belongs to the line it terminates;
// an offset on a soft-wrap seam belongs to the following line.
func lineIndex(lines []Line, off int) int {
	for i, ln := range lines {
		if off < ln.End {
			return i
		}
		if off == ln.End {
			if i == len(lines)-1 || lines[i+1].Start > ln.End {
				return i
			}
		}
	}
	return len(lines) - 1
}

// columnOf returns the display column of off within its line.
func columnOf(text string, ln Line, off int) int {
	col := 0
	for i := ln.Start; i < off && i < ln.End; {
		r, size := utf8.DecodeRuneInString(text[i:])
		col += runewidth.RuneWidth(r)
		i += size
	}
	return col
}

// offsetForColumn returns the flat offset of the rune occupying the given
// display column of a line, or the line end when the column is past the
// line's text.
func offsetForColumn(text string, ln Line, col int) int {
	c := 0
	for i := ln.Start; i < ln.End; {
		r, size := utf8.DecodeRuneInString(text[i:])
		w := runewidth.RuneWidth(r)
		if c+w > col {
			return i
		}
		c += w
		i += size
	}
	return ln.End
}
