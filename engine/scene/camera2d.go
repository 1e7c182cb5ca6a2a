package scene

// ScreenCamera maps framebuffer pixels (origin top-left, y down) to clip
// space. Scroll offsets the view without touching widget coordinates.
type ScreenCamera struct {
	W, H             float32
	ScrollX, ScrollY float32
	vp               [16]float32
	dirty            bool
}

func NewScreenOrtho(width, height int) *ScreenCamera {
	c := &ScreenCamera{}
	c.Resize(width, height)
	return c
}

func (c *ScreenCamera) Resize(w, h int) {
	c.W, c.H = float32(max(w, 1)), float32(max(h, 1))
	c.dirty = true
}

func (c *ScreenCamera) SetScroll(x, y float32) {
	c.ScrollX, c.ScrollY = x, y
	c.dirty = true
}

func (c *ScreenCamera) VP() [16]float32 {
	if c.dirty {
		c.recalculate()
	}
	return c.vp
}

// Project returns the clip-space position of pixel (x, y).
func (c *ScreenCamera) Project(x, y float32) (float32, float32) {
	m := c.VP()
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

func (c *ScreenCamera) recalculate() {
	// top < bottom flips y so row 0 is the top of the window
	proj := ortho(0, c.W, c.H, 0, -1, 1)
	c.vp = mul(proj, translate(-c.ScrollX, -c.ScrollY, 0))
	c.dirty = false
}

// ---- tiny mat helpers (column-major, GLSL-style) ----

func translate(x, y, z float32) [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

func mul(a, b [16]float32) [16]float32 {
	var out [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i+4*j] = a[i]*b[4*j] + a[i+4]*b[4*j+1] + a[i+8]*b[4*j+2] + a[i+12]*b[4*j+3]
		}
	}
	return out
}
