package ui

import (
	"strings"

	"go.uber.org/zap"

	"github.com/hubastard/scribe/engine/core"
	"github.com/hubastard/scribe/engine/textbuf"
)

// editResult accumulates what one batch of keyboard events did to a context.
type editResult struct {
	moved    bool
	modified bool
	consumed bool
	err      error
}

func (r *editResult) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// handleTextKeys applies the pending keyboard events to c and removes the ones it used.
func (g *Gui) handleTextKeys(c *TextContext) editResult {
	var res editResult
	c.clampPositions()
	if c.Cursor < 0 {
		c.Cursor = c.Buffer.Len()
	}

	g.events.Consume(func(ev core.Event) bool {
		handled := false
		switch e := ev.(type) {
		case core.EventKey:
			if e.Down {
				handled = g.textKey(c, e, &res)
			}
		case core.EventChar:
			if c.Editable {
				g.insert(c, string(e.Rune), &res)
				handled = true
			}
		case core.EventPaste:
			if c.Editable {
				text := e.Text
				if !c.MultiLine {
					text = strings.ReplaceAll(text, "\n", " ")
				}
				g.insert(c, text, &res)
				handled = true
			}
		}
		if handled {
			res.consumed = true
			g.lastInteraction = g.now
		}
		return handled
	})

	if res.err != nil {
		g.log.Warn("text edit rejected", zap.Error(res.err), zap.Int("len", c.Buffer.Len()), zap.Int("cap", c.Buffer.Cap()))
	}
	return res
}

func (g *Gui) textKey(c *TextContext, e core.EventKey, res *editResult) bool {
	shift := e.Mods.Has(core.ModShift)
	word := e.Mods.Has(g.cfg.WordModifier)
	b := c.Buffer

	switch e.Key {
	case core.KeyLeft:
		if shift {
			c.extend()
			if word {
				c.Cursor = textbuf.PreviousWord(b, c.Cursor)
			} else {
				c.Cursor--
			}
		} else if start, _, ok := c.SelectionRange(); ok {
			c.Cursor, c.Selection = start, -1
			if word {
				c.Cursor = textbuf.PreviousWord(b, c.Cursor)
			}
		} else {
			c.Selection = -1
			if word {
				c.Cursor = textbuf.PreviousWord(b, c.Cursor)
			} else {
				c.Cursor--
			}
		}
		c.Cursor = max(c.Cursor, 0)
		res.moved = true

	case core.KeyRight:
		if shift {
			c.extend()
			if word {
				c.Cursor = textbuf.NextWord(b, c.Cursor)
			} else {
				c.Cursor++
			}
		} else if _, end, ok := c.SelectionRange(); ok {
			c.Cursor, c.Selection = end, -1
			if word {
				c.Cursor = textbuf.NextWord(b, c.Cursor)
			}
		} else {
			c.Selection = -1
			if word {
				c.Cursor = textbuf.NextWord(b, c.Cursor)
			} else {
				c.Cursor++
			}
		}
		c.Cursor = min(c.Cursor, b.Len())
		res.moved = true

	case core.KeyUp, core.KeyDown:
		target := textbuf.LineBelow(b, c.Cursor)
		if e.Key == core.KeyUp {
			target = textbuf.LineAbove(b, c.Cursor)
		}
		c.moveTo(target, shift)
		res.moved = true

	case core.KeyHome, core.KeyEnd:
		start, end := textbuf.LineContaining(b, c.Cursor)
		target := end
		if e.Key == core.KeyHome {
			target = start
		}
		c.moveTo(target, shift)
		res.moved = true

	case core.KeySelectAll:
		// Not a navigation move: the view stays where it is.
		c.Cursor, c.Selection = b.Len(), 0

	case core.KeyCopy:
		start, end := c.copyRange()
		g.writeClipboard(b.SliceString(start, end))

	case core.KeyCut:
		if !c.Editable {
			return false
		}
		start, end := c.copyRange()
		g.writeClipboard(b.SliceString(start, end))
		if err := c.replace(start, end, nil); err != nil {
			res.fail(err)
			return true
		}
		c.Cursor, c.Selection = start, -1
		res.modified = true

	case core.KeyPaste:
		if !c.Editable || g.clipboard == nil {
			return false
		}
		g.clipboard.RequestPaste()

	case core.KeyBackspace, core.KeyDelete:
		if !c.Editable {
			return false
		}
		g.deleteKey(c, e.Key == core.KeyDelete, word, res)

	case core.KeyTab:
		if !c.Editable {
			return false
		}
		g.tab(c, shift, res)

	case core.KeyEnter:
		if !c.Editable || !c.MultiLine {
			return false
		}
		g.insert(c, "\n", res)

	case core.KeyUndo, core.KeyRedo:
		if !c.Editable {
			return false
		}
		g.rewind(c, e.Key == core.KeyRedo, res)

	default:
		return false
	}
	return true
}

// extend starts a selection at the cursor if none exists.
func (c *TextContext) extend() {
	if c.Selection < 0 {
		c.Selection = c.Cursor
	}
}

func (c *TextContext) moveTo(pos int, shift bool) {
	if shift {
		c.extend()
	} else {
		c.Selection = -1
	}
	c.Cursor = min(max(pos, 0), c.Buffer.Len())
}

// copyRange is the selection, or the cursor line when nothing is selected.
func (c *TextContext) copyRange() (int, int) {
	if start, end, ok := c.SelectionRange(); ok {
		return start, end
	}
	return textbuf.LineContaining(c.Buffer, c.Cursor)
}

func (g *Gui) writeClipboard(s string) {
	if g.clipboard == nil {
		return
	}
	if err := g.clipboard.Write(s); err != nil {
		g.log.Warn("clipboard write failed", zap.Error(err))
	}
}

// insert replaces the selection, or inserts at the cursor, with s.
func (g *Gui) insert(c *TextContext, s string, res *editResult) {
	start, end, _ := c.SelectionRange()
	ins := []rune(s)
	if err := c.replace(start, end, ins); err != nil {
		res.fail(err)
		return
	}
	c.Cursor, c.Selection = start+len(ins), -1
	res.modified = true
}

func (g *Gui) deleteKey(c *TextContext, forward, word bool, res *editResult) {
	b := c.Buffer
	start, end, selected := c.SelectionRange()
	if !selected {
		switch {
		case forward && word:
			start, end = c.Cursor, textbuf.NextWord(b, c.Cursor)
		case forward:
			start, end = c.Cursor, c.Cursor+1
		case word:
			start, end = textbuf.PreviousWord(b, c.Cursor), c.Cursor
		default:
			start, end = c.Cursor-1, c.Cursor
		}
	}
	c.Selection = -1
	if start < 0 || end > b.Len() || start == end {
		return
	}
	if err := c.replace(start, end, nil); err != nil {
		res.fail(err)
		return
	}
	c.Cursor = start
	res.modified = true
}

func (g *Gui) rewind(c *TextContext, redo bool, res *editResult) {
	var (
		m  textbuf.Mutation
		ok bool
	)
	if redo {
		m, ok = c.History.Redo()
	} else {
		m, ok = c.History.Undo()
	}
	if !ok {
		return
	}

	var (
		pos   int
		err   error
		caret *textbuf.Caret
	)
	if redo {
		pos, err = m.Apply(c.Buffer)
		caret = m.After
	} else {
		pos, err = m.Revert(c.Buffer)
		caret = m.Before
	}
	if err != nil {
		res.fail(err)
		return
	}
	c.Cursor, c.Selection = pos, -1
	if caret != nil {
		c.Cursor, c.Selection = caret.Cursor, caret.Selection
	}
	res.modified = true
}

func (g *Gui) tab(c *TextContext, outdent bool, res *editResult) {
	b := c.Buffer
	start, end, selected := c.SelectionRange()
	multi := selected && textbuf.StartOfLine(b, start) != textbuf.StartOfLine(b, end)

	if !multi {
		g.insert(c, strings.Repeat(" ", g.cfg.TabWidth), res)
		return
	}
	if err := g.indent(c, start, end, outdent); err != nil {
		res.fail(err)
		return
	}
	res.modified = true
}

// indent shifts every line touched by the selection [low, high] one tab stop, as
// a single edit. The lower end of the selection moves by the change on its line,
// the upper end by the total change.
func (g *Gui) indent(c *TextContext, low, high int, outdent bool) error {
	b := c.Buffer
	width := g.cfg.TabWidth
	blockStart := textbuf.StartOfLine(b, low)
	_, blockEnd := textbuf.LineContaining(b, high)
	lines := strings.Split(b.SliceString(blockStart, blockEnd), "\n")
	pad := strings.Repeat(" ", width)

	first, total := 0, 0
	for i, line := range lines {
		delta := 0
		if outdent {
			n := len(line) - len(strings.TrimLeft(line, " "))
			n = min(n, width)
			lines[i] = line[n:]
			delta = -n
		} else if line != "" {
			lines[i] = pad + line
			delta = width
		}
		if i == 0 {
			first = delta
		}
		total += delta
	}
	if total == 0 {
		return nil
	}

	newLo := max(low+first, blockStart)
	newHi := max(high+total, newLo)
	before := textbuf.Caret{Cursor: c.Cursor, Selection: c.Selection}
	after := textbuf.Caret{Cursor: newHi, Selection: newLo}
	if c.Cursor <= c.Selection {
		after = textbuf.Caret{Cursor: newLo, Selection: newHi}
	}

	m := textbuf.Mutation{
		Position: blockStart,
		Deleted:  b.Slice(blockStart, blockEnd),
		Inserted: []rune(strings.Join(lines, "\n")),
		Before:   &before,
		After:    &after,
	}
	if err := c.commit(m); err != nil {
		return err
	}
	c.Cursor, c.Selection = after.Cursor, after.Selection
	return nil
}
