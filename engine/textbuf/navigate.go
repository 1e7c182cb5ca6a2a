package textbuf

import (
	"math"

	"github.com/samber/lo"
)

const newline = '\n'

// IsIdentifier reports whether r is an ASCII letter, digit or underscore.
func IsIdentifier(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// StartOfLine returns the offset of the first character of the line holding pos.
func StartOfLine(b *Buffer, pos int) int {
	if pos <= 0 {
		return 0
	}
	return b.LastIndexOf(newline, pos-1) + 1
}

// LineContaining returns [start, end) of the line holding pos. end excludes the newline.
func LineContaining(b *Buffer, pos int) (start, end int) {
	pos = lo.Clamp(pos, 0, b.Len())
	start = StartOfLine(b, pos)
	end = b.IndexOf(newline, pos)
	if end == -1 {
		end = b.Len()
	}
	return start, end
}

// PreviousWord skips back over separators, then over the identifier before them.
func PreviousWord(b *Buffer, pos int) int {
	data := b.Runes()
	pos = lo.Clamp(pos, 0, len(data))
	for pos > 0 && !IsIdentifier(data[pos-1]) {
		pos--
	}
	for pos > 0 && IsIdentifier(data[pos-1]) {
		pos--
	}
	return pos
}

// NextWord skips forward to the start of the next word, passing any trailing separators.
func NextWord(b *Buffer, pos int) int {
	data := b.Runes()
	pos = lo.Clamp(pos, 0, len(data))
	for pos < len(data) && !IsIdentifier(data[pos]) {
		pos++
	}
	for pos < len(data) && IsIdentifier(data[pos]) {
		pos++
	}
	for pos < len(data) && !IsIdentifier(data[pos]) {
		pos++
	}
	return pos
}

// CursorPreservingColumn returns lineStart+column, clamped to the end of that line.
func CursorPreservingColumn(b *Buffer, lineStart, column int) int {
	lineStart = lo.Clamp(lineStart, 0, b.Len())
	end := b.IndexOf(newline, lineStart)
	if end == -1 {
		end = b.Len()
	}
	return lineStart + lo.Clamp(column, 0, end-lineStart)
}

// LineBelow moves pos to the next line keeping its column. On the last line it moves to the end.
func LineBelow(b *Buffer, pos int) int {
	start, end := LineContaining(b, pos)
	if end >= b.Len() {
		return b.Len()
	}
	return CursorPreservingColumn(b, end+1, pos-start)
}

// LineAbove moves pos to the previous line keeping its column. On the first line it moves to 0.
func LineAbove(b *Buffer, pos int) int {
	start, _ := LineContaining(b, pos)
	if start == 0 {
		return 0
	}
	prev := StartOfLine(b, start-1)
	return CursorPreservingColumn(b, prev, pos-start)
}

// LineColumn returns the zero based row and column of pos.
func LineColumn(b *Buffer, pos int) (line, column int) {
	pos = lo.Clamp(pos, 0, b.Len())
	return b.Count(newline, 0, pos), pos - StartOfLine(b, pos)
}

// CursorAtPixel maps a point in glyph-grid space to a character offset.
// Rows below the content clamp to the end, rows above to 0.
func CursorAtPixel(b *Buffer, glyphW, glyphH int, x, y float32) int {
	if glyphW <= 0 || glyphH <= 0 {
		return 0
	}
	col := int(math.Round(float64(x) / float64(glyphW)))
	row := int(math.Floor(float64(y) / float64(glyphH)))
	if row < 0 {
		return 0
	}
	col = max(col, 0)

	start := 0
	for line := 0; ; line++ {
		end := b.IndexOf(newline, start)
		if line == row {
			if end == -1 {
				end = b.Len()
			}
			return start + min(col, end-start)
		}
		if end == -1 {
			break
		}
		start = end + 1
	}
	if y > 0 {
		return b.Len()
	}
	return 0
}

// LineStats returns the number of lines and the length of the longest one.
// A trailing newline does not open a new line.
func LineStats(b *Buffer) (lines, longest int) {
	start, n := 0, b.Len()
	for start < n {
		end := b.IndexOf(newline, start)
		if end == -1 {
			end = n
		}
		longest = max(longest, end-start)
		lines++
		start = end + 1
	}
	return lines, longest
}
