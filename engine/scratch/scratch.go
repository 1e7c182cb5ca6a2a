// Package scratch formats per-frame status text into a reused byte buffer.
package scratch

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// Buffer is a single-threaded append buffer. Reset it once per frame; the
// strings it hands out stay valid until then.
type Buffer struct {
	buf []byte
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset keeps the storage.
func (b *Buffer) Reset()   { b.buf = b.buf[:0] }
func (b *Buffer) Len() int { return len(b.buf) }
func (b *Buffer) Cap() int { return cap(b.buf) }

// Mark bookmarks the current end; View(mark) returns what was written since.
func (b *Buffer) Mark() int { return len(b.buf) }

// View is a zero-copy string over buf[mark:]. Do not keep it past the next Reset.
func (b *Buffer) View(mark int) string {
	s := b.buf[mark:]
	if len(s) == 0 {
		return ""
	}
	return unsafe.String(&s[0], len(s))
}

// String copies everything written so far.
func (b *Buffer) String() string { return string(b.buf) }

func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

func (b *Buffer) R(r rune) *Buffer {
	b.buf = utf8.AppendRune(b.buf, r)
	return b
}

func (b *Buffer) I(v int) *Buffer {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

func (b *Buffer) U(v uint64) *Buffer {
	b.buf = strconv.AppendUint(b.buf, v, 10)
	return b
}

// F writes v with prec decimals.
func (b *Buffer) F(v float64, prec int) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
	return b
}

// MB writes a byte count in mebibytes with three decimals.
func (b *Buffer) MB(n uint64) *Buffer {
	return b.F(float64(n)/(1<<20), 3).S(" MB")
}

// PadLeft right-aligns everything written since mark to width runes using c.
func (b *Buffer) PadLeft(mark, width int, c byte) *Buffer {
	n := width - utf8.RuneCount(b.buf[mark:])
	if n <= 0 {
		return b
	}
	b.buf = append(b.buf, make([]byte, n)...)
	copy(b.buf[mark+n:], b.buf[mark:len(b.buf)-n])
	for i := mark; i < mark+n; i++ {
		b.buf[i] = c
	}
	return b
}
