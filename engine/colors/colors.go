package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Color is straight (non-premultiplied) RGBA in 0..1.
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
	Yellow   = Color{1, 1, 0, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Lerp mixes c towards o; t is clamped to 0..1.
func (c Color) Lerp(o Color, t float32) Color {
	t = lo.Clamp(t, 0, 1)
	for i := range c {
		c[i] += (o[i] - c[i]) * t
	}
	return c
}

// Hex formats c as #rrggbbaa.
func (c Color) Hex() string {
	var b strings.Builder
	b.WriteByte('#')
	for _, v := range c {
		fmt.Fprintf(&b, "%02x", uint8(lo.Clamp(v, 0, 1)*255+0.5))
	}
	return b.String()
}

// ParseHex accepts #rgb, #rrggbb and #rrggbbaa, with or without the '#'.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("colour %q: want #rgb, #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return Color{
		float32(v>>24&0xff) / 255,
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}
