package text

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/scribe/engine/core"
	"github.com/hubastard/scribe/engine/gfx/renderer2d"
)

// Glyph is one rasterized rune. OffX/OffY place the bitmap relative to the
// top-left of its cell at scale 1.
type Glyph struct {
	Rune       rune
	OffX, OffY float32
	W, H       int
	Sub        renderer2d.SubTexture2D
}

// Font is a monospace font rasterized into a single atlas. Every glyph
// advances by the same cell width, which is what the text widgets assume.
type Font struct {
	SizePx       float32
	CellW, CellH int
	Ascent       int
	Glyphs       map[rune]Glyph

	// Pixels holds the atlas until Upload hands it to the GPU.
	Pixels         *image.RGBA
	Texture        core.Texture
	AtlasW, AtlasH int

	face font.Face
}

func (f *Font) Close() {
	if f != nil && f.face != nil {
		_ = f.face.Close()
		f.face = nil
	}
}

func (f *Font) GlyphWidth(scale int) int  { return f.CellW * scale }
func (f *Font) GlyphHeight(scale int) int { return f.CellH * scale }

// GlyphQuad implements renderer2d.GlyphSource. Runes missing from the atlas draw as '?'.
func (f *Font) GlyphQuad(ch rune, scale int) (x, y, w, h float32, sub renderer2d.SubTexture2D, ok bool) {
	g, found := f.Glyphs[ch]
	if !found {
		g, found = f.Glyphs['?']
	}
	if !found || g.W == 0 || g.H == 0 {
		return 0, 0, 0, 0, renderer2d.SubTexture2D{}, false
	}
	s := float32(scale)
	return g.OffX * s, g.OffY * s, float32(g.W) * s, float32(g.H) * s, g.Sub, true
}

// LoadTTF reads a font file, rasterizes it and uploads the atlas.
func LoadTTF(r core.Renderer, path string, sizePx float32) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return load(r, data, sizePx)
}

// LoadDefault uses the Go Mono face bundled with x/image.
func LoadDefault(r core.Renderer, sizePx float32) (*Font, error) {
	return load(r, gomono.TTF, sizePx)
}

func load(r core.Renderer, data []byte, sizePx float32) (*Font, error) {
	f, err := BuildAtlas(data, sizePx)
	if err != nil {
		return nil, err
	}
	if err := f.Upload(r); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// Upload creates the atlas texture and points every glyph at it.
func (f *Font) Upload(r core.Renderer) error {
	tex, err := r.CreateTexture(core.TextureDesc{
		Width: f.AtlasW, Height: f.AtlasH,
		Format:    core.TextureRGBA8,
		Pixels:    f.Pixels.Pix,
		MinFilter: "nearest",
		MagFilter: "nearest",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return fmt.Errorf("upload font atlas: %w", err)
	}
	f.Texture = tex
	for k, g := range f.Glyphs {
		g.Sub.Texture = tex
		f.Glyphs[k] = g
	}
	f.Pixels = nil
	return nil
}

// BuildAtlas rasterizes Latin-1 into a white-on-transparent RGBA atlas.
func BuildAtlas(ttf []byte, sizePx float32) (*Font, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	cellH := max(m.Height.Ceil(), ascent+m.Descent.Ceil())
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		_ = face.Close()
		return nil, fmt.Errorf("font has no 'M' glyph")
	}
	cellW := adv.Round()

	type meas struct {
		r      rune
		w, h   int
		bx, by int // left bearing, baseline to top
	}
	var measure []meas
	for rr := rune(32); rr <= 255; rr++ {
		br, _, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r:  rr,
			w:  (br.Max.X - br.Min.X).Ceil(),
			h:  (br.Max.Y - br.Min.Y).Ceil(),
			bx: br.Min.X.Floor(),
			by: -br.Min.Y.Ceil(),
		})
	}

	// Shelf packer: start at 256^2 and double until everything fits.
	const padding = 2
	atlasSize := 256
	var pos map[rune]image.Point
	for {
		x, y, rowH := padding, padding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))
		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if x+g.w+padding > atlasSize {
				x = padding
				y += rowH + padding
				rowH = 0
			}
			if g.w+padding*2 > atlasSize || y+g.h+padding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + padding
			rowH = max(rowH, g.h)
		}
		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > 4096 {
			_ = face.Close()
			return nil, fmt.Errorf("font atlas too large (>%d)", 4096)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		glyph := Glyph{
			Rune: g.r,
			OffX: float32(g.bx),
			OffY: float32(ascent - g.by),
			W:    g.w, H: g.h,
		}
		if p, ok := pos[g.r]; ok {
			drawer.Dot = fixed.P(p.X-g.bx, p.Y+g.by)
			drawer.DrawString(string(g.r))
			glyph.Sub = renderer2d.FromPixels(nil, p.X, p.Y, g.w, g.h, atlasSize, atlasSize)
		}
		glyphs[g.r] = glyph
	}

	return &Font{
		SizePx: sizePx,
		CellW:  cellW, CellH: cellH,
		Ascent: ascent,
		Glyphs: glyphs,
		Pixels: dst,
		AtlasW: atlasSize, AtlasH: atlasSize,
		face:   face,
	}, nil
}
