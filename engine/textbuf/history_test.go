package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type edit struct {
	start, end int
	ins        string
}

func applyEdit(t *testing.T, h *History, b *Buffer, e edit) int {
	t.Helper()
	ins := []rune(e.ins)
	h.Push(b, e.start, e.end, ins)
	require.NoError(t, b.DeleteInsert(e.start, e.end, ins))
	return e.start + len(ins)
}

func TestHistoryUndoRedoInverse(t *testing.T) {
	b := FromString("package main\n", 256)
	h := NewHistory()
	edits := []edit{
		{13, 13, "func main() {}\n"},
		{0, 7, "module"},
		{18, 22, "start"},
		{5, 5, "\n\n"},
		{0, 3, ""},
	}

	cursor := 0
	for _, e := range edits {
		cursor = applyEdit(t, h, b, e)
	}
	final, finalCursor := b.String(), cursor

	for range edits {
		m, ok := h.Undo()
		require.True(t, ok)
		var err error
		cursor, err = m.Revert(b)
		require.NoError(t, err)
	}
	assert.Equal(t, "package main\n", b.String())
	_, ok := h.Undo()
	assert.False(t, ok)

	for range edits {
		m, ok := h.Redo()
		require.True(t, ok)
		var err error
		cursor, err = m.Apply(b)
		require.NoError(t, err)
	}
	assert.Equal(t, final, b.String())
	assert.Equal(t, finalCursor, cursor)
	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestHistoryUndoThenRedoRestores(t *testing.T) {
	b := FromString("Hello", 64)
	h := NewHistory()
	cursor := applyEdit(t, h, b, edit{5, 5, " world"})
	require.Equal(t, 11, cursor)

	m, ok := h.Undo()
	require.True(t, ok)
	cursor, err := m.Revert(b)
	require.NoError(t, err)
	assert.Equal(t, "Hello", b.String())
	assert.Equal(t, 5, cursor)

	m, ok = h.Redo()
	require.True(t, ok)
	cursor, err = m.Apply(b)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", b.String())
	assert.Equal(t, 11, cursor)
}

func TestHistoryPushTruncatesRedo(t *testing.T) {
	b := FromString("", 64)
	h := NewHistory()
	applyEdit(t, h, b, edit{0, 0, "a"})
	applyEdit(t, h, b, edit{1, 1, "b"})

	m, ok := h.Undo()
	require.True(t, ok)
	_, err := m.Revert(b)
	require.NoError(t, err)
	assert.True(t, h.CanRedo())

	applyEdit(t, h, b, edit{1, 1, "c"})
	assert.False(t, h.CanRedo())
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, "ac", b.String())
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory()
	_, ok := h.Undo()
	assert.False(t, ok)
	_, ok = h.Redo()
	assert.False(t, ok)

	h.Record(Mutation{Inserted: []rune("x")})
	h.Reset()
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.CanUndo())
}
