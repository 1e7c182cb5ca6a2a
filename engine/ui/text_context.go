package ui

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hubastard/scribe/engine/textbuf"
)

// Default buffer capacities of the text widgets, in codepoints.
const (
	InputCapacity  = 1024
	EditorCapacity = textbuf.Granularity
)

// TextContext is the editing state kept for a text widget across frames.
// Cursor and Selection are offsets into Buffer; -1 means none.
type TextContext struct {
	Font      Font
	Scale     int
	Cursor    int
	Selection int

	Lines, Longest int

	Buffer  *textbuf.Buffer
	History *textbuf.History

	MultiLine bool
	Editable  bool
	// Created is true only for the lookup that made the context.
	Created bool
}

// Text returns the text context of id, creating an empty one on first use.
func (g *Gui) Text(id ID) *TextContext {
	if c, ok := g.texts[id]; ok {
		c.Created = false
		return c
	}
	c := &TextContext{
		Font:      g.font,
		Scale:     1,
		Cursor:    -1,
		Selection: -1,
		History:   textbuf.NewHistory(),
		Created:   true,
	}
	g.texts[id] = c
	g.log.Debug("text context created", zap.Uint64("id", uint64(id)))
	return c
}

// LookupText returns the context of id without creating it.
func (g *Gui) LookupText(id ID) (*TextContext, bool) {
	c, ok := g.texts[id]
	return c, ok
}

func (g *Gui) mustText(id ID) *TextContext {
	c, ok := g.texts[id]
	if !ok || c.Buffer == nil {
		panic(fmt.Sprintf("ui: widget %d has no text context", id))
	}
	return c
}

// SetText replaces the buffer content and resets history and cursor.
func (c *TextContext) SetText(s string) error {
	rs := []rune(s)
	if len(rs) > c.Buffer.Cap() {
		return fmt.Errorf("set text: %w", textbuf.ErrCapacityExceeded)
	}
	if err := c.Buffer.DeleteInsert(0, c.Buffer.Len(), rs); err != nil {
		return err
	}
	c.History.Reset()
	c.Cursor, c.Selection = -1, -1
	c.updateStats()
	return nil
}

func (c *TextContext) String() string { return c.Buffer.String() }

// SelectionRange returns the ordered selection, ok false when nothing is selected.
func (c *TextContext) SelectionRange() (start, end int, ok bool) {
	if c.Selection < 0 || c.Selection == c.Cursor {
		return c.Cursor, c.Cursor, false
	}
	return min(c.Cursor, c.Selection), max(c.Cursor, c.Selection), true
}

func (c *TextContext) glyph() (w, h int) {
	if c.Font == nil {
		return 1, 1
	}
	return max(c.Font.GlyphWidth(c.Scale), 1), max(c.Font.GlyphHeight(c.Scale), 1)
}

// replace edits the buffer and records the edit for undo. Nothing changes on error.
func (c *TextContext) replace(start, end int, ins []rune) error {
	return c.commit(textbuf.Mutation{Position: start, Deleted: c.Buffer.Slice(start, end), Inserted: ins})
}

func (c *TextContext) commit(m textbuf.Mutation) error {
	if _, err := m.Apply(c.Buffer); err != nil {
		return err
	}
	c.History.Record(m)
	return nil
}

func (c *TextContext) clampPositions() {
	n := c.Buffer.Len()
	if c.Cursor > n {
		c.Cursor = n
	}
	if c.Selection > n {
		c.Selection = n
	}
}

func (c *TextContext) updateStats() {
	c.Lines, c.Longest = textbuf.LineStats(c.Buffer)
}
