package ui

import (
	"errors"
	"math"

	"github.com/samber/lo"

	"github.com/hubastard/scribe/engine/core"
	"github.com/hubastard/scribe/engine/textbuf"
)

// TextOptions tune a text widget. They are read when its context is created,
// except Caps which applies every frame.
type TextOptions struct {
	// Initial becomes the widget's buffer. nil allocates an empty one.
	Initial *textbuf.Buffer
	Scale   int
	Caps    Capability
}

// TextResult is the outcome of one frame of a text widget.
type TextResult struct {
	WidgetState
	Context     *TextContext
	CursorMoved bool
	Modified    bool
	// Err is set when an edit was rejected, typically textbuf.ErrCapacityExceeded.
	Err error
}

// Rejected reports whether an edit failed because the buffer was full.
func (r TextResult) Rejected() bool { return errors.Is(r.Err, textbuf.ErrCapacityExceeded) }

type textKind struct {
	caps      Capability
	multiLine bool
	editable  bool
	capacity  int
}

var (
	inputKind = textKind{
		caps:     CapHoverable | CapLeftClick | CapActivable | CapScrollX,
		editable: true,
		capacity: InputCapacity,
	}
	editorKind = textKind{
		caps:      CapHoverable | CapLeftClick | CapActivable | CapScrollable | CapZoomable,
		multiLine: true,
		editable:  true,
		capacity:  EditorCapacity,
	}
	viewKind = textKind{
		caps:      CapHoverable | CapLeftClick | CapActivable | CapScrollable | CapZoomable,
		multiLine: true,
		capacity:  EditorCapacity,
	}
)

// TextInput is a single line editable field.
func (g *Gui) TextInput(id ID, r Rect, z int, opts TextOptions) TextResult {
	return g.textWidget(id, r, z, inputKind, opts)
}

// TextEditor is a multi-line editable area with scrolling and zoom.
func (g *Gui) TextEditor(id ID, r Rect, z int, opts TextOptions) TextResult {
	return g.textWidget(id, r, z, editorKind, opts)
}

// TextView shows read-only text that can still be selected and copied.
func (g *Gui) TextView(id ID, r Rect, z int, opts TextOptions) TextResult {
	return g.textWidget(id, r, z, viewKind, opts)
}

func (g *Gui) textWidget(id ID, r Rect, z int, kind textKind, opts TextOptions) TextResult {
	caps := kind.caps | opts.Caps
	st := g.Submit(Widget{ID: id, Rect: r, Z: z, Caps: caps})

	c := g.Text(id)
	sc := g.Scroll(id)
	if c.Created {
		c.MultiLine, c.Editable = kind.multiLine, kind.editable
		c.Buffer = opts.Initial
		if c.Buffer == nil {
			c.Buffer = textbuf.New(kind.capacity)
		}
		if opts.Scale > 0 {
			c.Scale = opts.Scale
		}
		c.updateStats()
	}
	if caps.Has(CapZoomable) {
		zc := g.Zoom(id)
		if zc.Created {
			zc.Zoom = lo.Clamp(float32(c.Scale), zc.Min, zc.Max)
		}
		c.Scale = max(int(math.Round(float64(zc.Zoom))), 1)
	}
	cw, ch := c.glyph()

	keep := caps.Has(CapKeepTextState)
	if st.Flags.Has(StartActive) && (!keep || c.Cursor < 0) {
		c.Cursor, c.Selection = c.Buffer.Len(), -1
	}
	if st.Flags.Has(StopActive) && !keep {
		c.Cursor, c.Selection = -1, -1
	}

	res := TextResult{WidgetState: st, Context: c}
	if st.Flags.Has(Interacting) {
		g.textPointer(c, sc, st, cw, ch)
	}
	if st.Flags.Has(Active) {
		er := g.handleTextKeys(c)
		if er.consumed {
			res.Flags |= KeyPressed
		}
		res.Modified = er.modified
		res.CursorMoved = er.moved || er.modified
		res.Err = er.err
		if er.modified {
			c.updateStats()
		}
		if res.CursorMoved {
			recenter(c, sc, r, cw, ch)
		}
	}

	if c.MultiLine {
		sc.FitContent(float32(c.Longest*cw), float32(c.Lines*ch), r.W, r.H)
	} else {
		sc.FitContent(float32(c.Buffer.Len()*cw), 0, r.W, r.H)
	}

	g.drawText(g.mustText(id), sc, st, cw, ch)
	return res
}

// textPointer handles clicks and drags inside a text widget.
func (g *Gui) textPointer(c *TextContext, sc *ScrollContext, st WidgetState, cw, ch int) {
	r := st.Rect
	mx, my := g.mouseX, g.mouseY
	lx := mx - (r.X + sc.OffsetX)
	ly := my - (r.Y + sc.OffsetY)
	if !c.MultiLine {
		ly = 0
	}
	at := func() int { return textbuf.CursorAtPixel(c.Buffer, cw, ch, lx, ly) }

	if st.Flags.Has(StartInteracting) {
		switch {
		case g.pressMods.Has(core.ModShift) && c.Cursor >= 0:
			c.extend()
			c.Cursor = at()
		case st.ConsecutiveClicks == 0:
			c.Cursor = at()
			c.Selection = c.Cursor
		case st.ConsecutiveClicks == 1:
			// second press keeps the placement of the first
		case st.ConsecutiveClicks == 2:
			start, end := textbuf.LineContaining(c.Buffer, c.Cursor)
			c.Cursor, c.Selection = start, end
		default:
			c.Selection, c.Cursor = 0, c.Buffer.Len()
		}
	} else if st.ConsecutiveClicks == 0 {
		c.Cursor = at()
	}

	edge := g.cfg.AutoScrollEdge
	fw, fh := float32(cw), float32(ch)
	switch {
	case mx < r.X+edge:
		sc.OffsetX += fw
		sc.Enforce()
	case mx > r.Right()-edge:
		if c.MultiLine {
			// the right edge follows the cursor line rather than the longest line
			start, end := textbuf.LineContaining(c.Buffer, c.Cursor)
			limit := -max(float32(end-start+1)*fw-r.W, 0)
			sc.OffsetX = max(sc.OffsetX-fw, limit)
		} else {
			sc.OffsetX -= fw
			sc.Enforce()
		}
	}
	if !c.MultiLine {
		return
	}
	switch {
	case my < r.Y+edge:
		sc.OffsetY += fh
		sc.Enforce()
	case my > r.Bottom()-edge:
		sc.OffsetY -= fh
		sc.Enforce()
	}
}

// recenter scrolls by whole glyph cells so the caret cell is inside the viewport.
func recenter(c *TextContext, sc *ScrollContext, r Rect, cw, ch int) {
	fw, fh := float32(cw), float32(ch)
	ox := int(math.Floor(float64(sc.OffsetX / fw)))
	oy := int(math.Floor(float64(sc.OffsetY / fh)))
	vw := int(math.Floor(float64(r.W / fw)))
	vh := int(math.Floor(float64(r.H / fh)))
	line, col := textbuf.LineColumn(c.Buffer, c.Cursor)

	if c.MultiLine {
		if line+oy >= vh {
			sc.OffsetY = float32(vh-line-1) * fh
		}
		if line+oy < 0 {
			sc.OffsetY = float32(-line) * fh
		}
	}
	if col+ox >= vw {
		sc.OffsetX = float32(vw-col) * fw
	}
	if col+ox < 0 {
		sc.OffsetX = float32(-col) * fw
	}
}

func (g *Gui) caretVisible(st WidgetState) bool {
	if g.cfg.CaretBlink <= 0 {
		return true
	}
	phase := math.Round(float64(g.now-st.LastInteraction) / float64(g.cfg.CaretBlink))
	return int64(phase)&1 == 0
}

func (g *Gui) drawText(c *TextContext, sc *ScrollContext, st WidgetState, cw, ch int) {
	p := g.painter
	if p == nil {
		return
	}
	r, z := st.Rect, st.Z
	fw, fh := float32(cw), float32(ch)
	data := c.Buffer.Runes()
	selStart, selEnd, selected := c.SelectionRange()
	showCaret := st.Flags.Has(Active) && c.Cursor >= 0 && g.caretVisible(st)

	p.DrawQuad(r, z, g.cfg.Theme.Background)
	p.PushScissor(r)

	startX := r.X + sc.OffsetX
	x, y := startX, r.Y+sc.OffsetY
	caret := func() {
		p.DrawQuad(Rect{max(x-1, r.X), y, float32(c.Scale), fh}, z+3, g.cfg.Theme.Caret)
	}
	for i := 0; i <= len(data); i++ {
		if showCaret && i == c.Cursor {
			caret()
		}
		if i == len(data) {
			break
		}
		cp := data[i]
		if cp == '\n' {
			x, y = startX, y+fh
			continue
		}
		visible := y+fh >= r.Y && y <= r.Bottom() && x+fw >= r.X && x <= r.Right()
		if visible {
			if selected && i >= selStart && i < selEnd {
				p.DrawQuad(Rect{x, y, fw, fh}, z+1, g.cfg.Theme.Selection)
			}
			if cp != ' ' && cp != '\t' {
				p.DrawGlyph(c.Font, x, y, z+2, c.Scale, cp, g.cfg.Theme.Text)
			}
		}
		x += fw
	}

	p.PopScissor()

	total := float32(c.Lines) * fh
	if c.MultiLine && total > r.H {
		thick := float32(math.Round(float64(fh) * 0.7))
		track := Rect{r.Right() - thick, r.Y, thick, r.H}
		thumb := Rect{track.X, r.Y + (-sc.OffsetY)/total*r.H, thick, r.H / total * r.H}
		p.DrawQuad(track, z+5, g.cfg.Theme.Scrollbar)
		p.DrawQuad(thumb, z+6, g.cfg.Theme.Text)
	}
}
