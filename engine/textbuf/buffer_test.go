package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteInsert(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		ins        string
		want       string
	}{
		{"insert at start", "world", 0, 0, "hello ", "hello world"},
		{"insert at end", "hello", 5, 5, "!", "hello!"},
		{"replace middle", "hello world", 6, 11, "there", "hello there"},
		{"delete only", "hello world", 5, 11, "", "hello"},
		{"shrinking replace", "aaaaXbbbb", 0, 4, "c", "cXbbbb"},
		{"growing replace", "aXb", 1, 2, "YYYY", "aYYYYb"},
		{"unicode", "héllo", 1, 2, "e", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromString(tt.text, 64)
			require.NoError(t, b.DeleteInsertString(tt.start, tt.end, tt.ins))
			assert.Equal(t, tt.want, b.String())
			assert.Equal(t, len([]rune(tt.want)), b.Len())
		})
	}
}

func TestDeleteInsertRoundTrip(t *testing.T) {
	content := "the quick brown fox\njumps over"
	for s := 0; s <= len(content); s += 3 {
		for e := s; e <= len(content); e += 4 {
			for _, ins := range []string{"", "x", "a longer insertion\n"} {
				b := FromString(content, 128)
				orig := b.Slice(s, e)

				require.NoError(t, b.DeleteInsertString(s, e, ins))
				require.NoError(t, b.DeleteInsert(s, s+len([]rune(ins)), orig))
				assert.Equal(t, content, b.String(), "s=%d e=%d ins=%q", s, e, ins)
			}
		}
	}
}

func TestDeleteInsertCapacity(t *testing.T) {
	b := FromString("abc", 4)

	err := b.DeleteInsertString(3, 3, "de")
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, "abc", b.String())

	require.NoError(t, b.DeleteInsertString(3, 3, "d"))
	assert.Equal(t, "abcd", b.String())

	// replacing keeps the length within capacity
	require.NoError(t, b.DeleteInsertString(0, 2, "xy"))
	assert.Equal(t, "xycd", b.String())

	b.Grow(8)
	assert.Equal(t, 8, b.Cap())
	require.NoError(t, b.DeleteInsertString(4, 4, "efgh"))
	assert.Equal(t, "xycdefgh", b.String())
}

func TestDeleteInsertOutOfRange(t *testing.T) {
	b := FromString("abc", 16)
	assert.ErrorIs(t, b.DeleteInsertString(-1, 1, ""), ErrOutOfRange)
	assert.ErrorIs(t, b.DeleteInsertString(2, 1, ""), ErrOutOfRange)
	assert.ErrorIs(t, b.DeleteInsertString(0, 4, ""), ErrOutOfRange)
	assert.Equal(t, "abc", b.String())
}

func TestRoundCapacity(t *testing.T) {
	assert.Equal(t, Granularity, RoundCapacity(0))
	assert.Equal(t, Granularity, RoundCapacity(1))
	assert.Equal(t, Granularity, RoundCapacity(Granularity))
	assert.Equal(t, 2*Granularity, RoundCapacity(Granularity+1))
}

func TestSearch(t *testing.T) {
	b := FromString("a\nbb\nccc", 16)
	assert.Equal(t, 1, b.IndexOf('\n', 0))
	assert.Equal(t, 4, b.IndexOf('\n', 2))
	assert.Equal(t, -1, b.IndexOf('\n', 5))
	assert.Equal(t, 4, b.LastIndexOf('\n', 100))
	assert.Equal(t, 1, b.LastIndexOf('\n', 3))
	assert.Equal(t, -1, b.LastIndexOf('\n', 0))
	assert.Equal(t, 2, b.Count('\n', 0, b.Len()))
	assert.Equal(t, "bb", b.SliceString(2, 4))
}

func TestFromStringRaisesCapacity(t *testing.T) {
	b := FromString("hello", 2)
	assert.Equal(t, 5, b.Cap())
	assert.Equal(t, "hello", b.String())
}
