package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenOrthoCorners(t *testing.T) {
	c := NewScreenOrtho(800, 600)

	tests := []struct {
		x, y, cx, cy float32
	}{
		{0, 0, -1, 1},
		{800, 600, 1, -1},
		{400, 300, 0, 0},
		{800, 0, 1, 1},
	}
	for _, tt := range tests {
		cx, cy := c.Project(tt.x, tt.y)
		assert.InDelta(t, tt.cx, cx, 1e-5)
		assert.InDelta(t, tt.cy, cy, 1e-5)
	}
}

func TestScreenOrthoResizeAndScroll(t *testing.T) {
	c := NewScreenOrtho(100, 100)
	c.Resize(200, 100)
	cx, _ := c.Project(200, 0)
	assert.InDelta(t, 1, cx, 1e-5)

	c.SetScroll(0, 50)
	_, cy := c.Project(0, 50)
	assert.InDelta(t, 1, cy, 1e-5, "scrolled row sits at the top")

	c.Resize(0, -3)
	assert.Equal(t, float32(1), c.W)
	assert.Equal(t, float32(1), c.H)
}

func TestMulIdentity(t *testing.T) {
	id := translate(0, 0, 0)
	m := translate(3, 4, 5)
	assert.Equal(t, m, mul(id, m))
	assert.Equal(t, m, mul(m, id))
	assert.Equal(t, translate(4, 6, 8), mul(translate(1, 2, 3), m))
}
