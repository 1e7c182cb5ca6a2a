package textbuf

import (
	"errors"
	"fmt"
)

// Granularity is the capacity step used by RoundCapacity.
const Granularity = 128 * 1024

var (
	// ErrCapacityExceeded is returned when an edit would grow the buffer past its capacity.
	ErrCapacityExceeded = errors.New("textbuf: capacity exceeded")
	// ErrOutOfRange is returned when an edit range is not within [0, Len()].
	ErrOutOfRange = errors.New("textbuf: range out of bounds")
)

// Buffer is a fixed-capacity array of codepoints plus a live length.
// It never reallocates on its own; callers size it up front or call Grow.
type Buffer struct {
	data []rune
	n    int
}

// New allocates an empty buffer holding at most capacity codepoints.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{data: make([]rune, capacity)}
}

// FromString builds a buffer holding s. The capacity is raised to len(s) if needed.
func FromString(s string, capacity int) *Buffer {
	rs := []rune(s)
	if capacity < len(rs) {
		capacity = len(rs)
	}
	b := New(capacity)
	b.n = copy(b.data, rs)
	return b
}

// RoundCapacity rounds n up to the next multiple of Granularity (minimum one step).
func RoundCapacity(n int) int {
	if n <= 0 {
		return Granularity
	}
	return (n + Granularity - 1) / Granularity * Granularity
}

func (b *Buffer) Len() int { return b.n }
func (b *Buffer) Cap() int { return len(b.data) }

// At returns the codepoint at i. It panics when i is outside [0, Len()).
func (b *Buffer) At(i int) rune {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("textbuf: index %d out of range [0,%d)", i, b.n))
	}
	return b.data[i]
}

// Runes returns a read-only view of the live content. Valid until the next edit.
func (b *Buffer) Runes() []rune { return b.data[:b.n] }

// Slice returns a copy of [start, end), clamped to the live content.
func (b *Buffer) Slice(start, end int) []rune {
	start, end = b.clampRange(start, end)
	out := make([]rune, end-start)
	copy(out, b.data[start:end])
	return out
}

// String returns the whole content.
func (b *Buffer) String() string { return string(b.data[:b.n]) }

// SliceString returns [start, end) as a string, clamped.
func (b *Buffer) SliceString(start, end int) string {
	start, end = b.clampRange(start, end)
	return string(b.data[start:end])
}

// Grow raises the capacity to at least min, copying the live content.
func (b *Buffer) Grow(min int) {
	if min <= len(b.data) {
		return
	}
	nd := make([]rune, min)
	copy(nd, b.data[:b.n])
	b.data = nd
}

// DeleteInsert removes [start, end) and inserts ins at start.
// On error the buffer is left untouched.
func (b *Buffer) DeleteInsert(start, end int, ins []rune) error {
	if start < 0 || start > end || end > b.n {
		return fmt.Errorf("delete [%d,%d) of %d: %w", start, end, b.n, ErrOutOfRange)
	}
	newLen := b.n + len(ins) - (end - start)
	if newLen > len(b.data) {
		return fmt.Errorf("need %d of %d: %w", newLen, len(b.data), ErrCapacityExceeded)
	}
	copy(b.data[start+len(ins):], b.data[end:b.n])
	copy(b.data[start:], ins)
	b.n = newLen
	return nil
}

// DeleteInsertString is DeleteInsert for a string insertion.
func (b *Buffer) DeleteInsertString(start, end int, s string) error {
	return b.DeleteInsert(start, end, []rune(s))
}

// IndexOf returns the first index >= from holding r, or -1.
func (b *Buffer) IndexOf(r rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < b.n; i++ {
		if b.data[i] == r {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the last index <= from holding r, or -1.
func (b *Buffer) LastIndexOf(r rune, from int) int {
	if from >= b.n {
		from = b.n - 1
	}
	for i := from; i >= 0; i-- {
		if b.data[i] == r {
			return i
		}
	}
	return -1
}

// Count returns how many times r appears in [start, end).
func (b *Buffer) Count(r rune, start, end int) int {
	start, end = b.clampRange(start, end)
	c := 0
	for _, x := range b.data[start:end] {
		if x == r {
			c++
		}
	}
	return c
}

func (b *Buffer) clampRange(start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > b.n {
		end = b.n
	}
	if start > end {
		start = end
	}
	return start, end
}
