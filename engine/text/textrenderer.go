package text

import (
	"github.com/hubastard/scribe/engine/colors"
	"github.com/hubastard/scribe/engine/gfx/renderer2d"
)

// DrawText draws s with its top-left at (x, y), one cell per rune.
func DrawText(r2d *renderer2d.Renderer2D, f *Font, x, y float32, scale int, s string, color colors.Color) {
	cw, ch := float32(f.GlyphWidth(scale)), float32(f.GlyphHeight(scale))
	penX := x
	for _, r := range s {
		if r == '\n' {
			penX = x
			y += ch
			continue
		}
		if gx, gy, gw, gh, sub, ok := f.GlyphQuad(r, scale); ok {
			r2d.DrawTexturedRect(penX+gx, y+gy, gw, gh, sub, color)
		}
		penX += cw
	}
}

// MeasureText returns the pixel size of s in cells of f at scale.
func MeasureText(f *Font, s string, scale int) (width, height float32) {
	cols, maxCols, lines := 0, 0, 1
	for _, r := range s {
		if r == '\n' {
			cols = 0
			lines++
			continue
		}
		cols++
		maxCols = max(maxCols, cols)
	}
	return float32(maxCols * f.GlyphWidth(scale)), float32(lines * f.GlyphHeight(scale))
}

// LineHeight is the height of one text row at scale.
func LineHeight(f *Font, scale int) float32 { return float32(f.GlyphHeight(scale)) }
