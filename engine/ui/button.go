package ui

import (
	"strings"

	"github.com/hubastard/scribe/engine/colors"
)

// Button draws a clickable box with a centred caption. The caller checks
// LeftClicked on the returned state.
func (g *Gui) Button(id ID, r Rect, z int, caption string) WidgetState {
	st := g.Submit(Widget{ID: id, Rect: r, Z: z, Caps: CapClickable})
	g.drawButton(st, caption, false)
	return st
}

// Toggle flips *on when pressed. It reports the state and whether the value changed.
func (g *Gui) Toggle(id ID, r Rect, z int, caption string, on *bool) (WidgetState, bool) {
	st := g.Submit(Widget{ID: id, Rect: r, Z: z, Caps: CapClickable | CapClickOnPress})
	changed := false
	if st.Flags.Has(LeftClicked) {
		*on = !*on
		changed = true
	}
	g.drawButton(st, caption, *on)
	return st, changed
}

func (g *Gui) drawButton(st WidgetState, caption string, down bool) {
	if g.painter == nil {
		return
	}
	bg := g.cfg.Theme.Button
	switch {
	case down || st.Flags.Has(Interacting):
		bg = g.cfg.Theme.ButtonDown
	case st.Flags.Has(Hovered):
		bg = g.cfg.Theme.ButtonHot
	}
	g.painter.DrawQuad(st.Rect, st.Z, bg)

	cw, ch := g.cell(1)
	w := float32(len([]rune(caption)) * cw)
	x := st.Rect.X + max(st.Rect.W-w, 0)/2
	y := st.Rect.Y + max(st.Rect.H-float32(ch), 0)/2
	g.painter.PushScissor(st.Rect)
	g.drawString(caption, x, y, st.Z+1, 1, g.cfg.Theme.Text)
	g.painter.PopScissor()
}

// Label draws non-interactive text inside r. With wrap set, lines are broken
// on spaces to fit r.W. It returns the height used.
func (g *Gui) Label(r Rect, z int, s string, scale int, wrap bool, c colors.Color) float32 {
	cw, ch := g.cell(scale)
	lines := strings.Split(s, "\n")
	if wrap {
		lines = wrapLines(lines, max(int(r.W)/cw, 1))
	}
	height := float32(len(lines) * ch)
	if g.painter == nil {
		return height
	}
	g.painter.PushScissor(r)
	for i, line := range lines {
		g.drawString(line, r.X, r.Y+float32(i*ch), z, scale, c)
	}
	g.painter.PopScissor()
	return height
}

func (g *Gui) cell(scale int) (int, int) {
	if g.font == nil {
		return 1, 1
	}
	return max(g.font.GlyphWidth(scale), 1), max(g.font.GlyphHeight(scale), 1)
}

func (g *Gui) drawString(s string, x, y float32, z, scale int, c colors.Color) {
	cw, _ := g.cell(scale)
	for _, r := range s {
		if r != ' ' {
			g.painter.DrawGlyph(g.font, x, y, z, scale, r, c)
		}
		x += float32(cw)
	}
}

// wrapLines breaks each line into pieces of at most cols cells, splitting on spaces.
// A single word longer than cols is kept whole.
func wrapLines(lines []string, cols int) []string {
	var out []string
	for _, raw := range lines {
		words := strings.Fields(raw)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			if len([]rune(current))+1+len([]rune(word)) > cols {
				out = append(out, current)
				current = word
			} else {
				current += " " + word
			}
		}
		out = append(out, current)
	}
	return out
}
