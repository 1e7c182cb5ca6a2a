package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShaderBuiltin(t *testing.T) {
	src, err := LoadShader("", "renderer2d.vert")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(src, "#version 330 core"))
	assert.Contains(t, src, "uniform mat4 uVP;")

	frag, err := LoadShader(t.TempDir(), "renderer2d.frag")
	require.NoError(t, err)
	assert.Contains(t, frag, "uniform sampler2D uTex15;")
}

func TestLoadShaderOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shaders"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shaders", "renderer2d.vert"), []byte("custom"), 0o644))

	src, err := LoadShader(dir, "renderer2d.vert")
	require.NoError(t, err)
	assert.Equal(t, "custom", src)

	_, err = LoadShader(dir, "missing.vert")
	assert.Error(t, err)
}

func TestLoadPNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(2, 1, color.NRGBA{R: 255, A: 255})
	path := filepath.Join(t.TempDir(), "icon.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	img, err := LoadPNG(path)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 12, img.Stride)
	assert.Equal(t, []uint8{255, 0, 0, 255}, img.Pix[1*12+2*4:1*12+3*4])

	_, err = LoadPNG(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}
