package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/hubastard/scribe/engine/gfx/renderer2d"
)

var _ renderer2d.GlyphSource = (*Font)(nil)

func TestBuildAtlasMonospace(t *testing.T) {
	f, err := BuildAtlas(gomono.TTF, 16)
	require.NoError(t, err)
	defer f.Close()

	assert.Positive(t, f.CellW)
	assert.Greater(t, f.CellH, f.CellW)
	assert.Equal(t, 3*f.CellW, f.GlyphWidth(3))
	assert.Equal(t, 2*f.CellH, f.GlyphHeight(2))
	require.NotNil(t, f.Pixels)
	assert.Equal(t, f.AtlasW, f.Pixels.Bounds().Dx())

	for r, g := range f.Glyphs {
		assert.LessOrEqual(t, g.Sub.U1, float32(1), "glyph %q", r)
		assert.LessOrEqual(t, g.Sub.V1, float32(1), "glyph %q", r)
	}
}

func TestGlyphQuad(t *testing.T) {
	f, err := BuildAtlas(gomono.TTF, 16)
	require.NoError(t, err)
	defer f.Close()

	_, _, w1, h1, _, ok := f.GlyphQuad('A', 1)
	require.True(t, ok)
	_, _, w2, h2, _, ok := f.GlyphQuad('A', 2)
	require.True(t, ok)
	assert.Equal(t, 2*w1, w2)
	assert.Equal(t, 2*h1, h2)

	_, _, _, _, _, ok = f.GlyphQuad(' ', 1)
	assert.False(t, ok, "space has no bitmap")

	_, _, wq, _, _, ok := f.GlyphQuad('世', 1)
	require.True(t, ok, "missing runes fall back to '?'")
	_, _, wQ, _, _, _ := f.GlyphQuad('?', 1)
	assert.Equal(t, wQ, wq)
}

func TestMeasureText(t *testing.T) {
	f := &Font{CellW: 8, CellH: 16}
	w, h := MeasureText(f, "ab\nxyz", 2)
	assert.Equal(t, float32(48), w)
	assert.Equal(t, float32(64), h)

	w, h = MeasureText(f, "", 1)
	assert.Equal(t, float32(0), w)
	assert.Equal(t, float32(16), h)
}
