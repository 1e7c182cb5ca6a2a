package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", White},
		{"000000", Black},
		{"#ff000080", Red.WithAlpha(128.0 / 255)},
		{" #FF0000 ", Red},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			require.NoError(t, err)
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-6)
			}
		})
	}

	for _, bad := range []string{"", "#ff", "#gggggg", "#1234567"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestHexRoundTrip(t *testing.T) {
	assert.Equal(t, "#ffffffff", White.Hex())
	c, err := ParseHex(DarkGray.Hex())
	require.NoError(t, err)
	assert.Equal(t, DarkGray.Hex(), c.Hex())
}

func TestLerp(t *testing.T) {
	assert.Equal(t, Gray, Black.Lerp(White, 0.5))
	assert.Equal(t, White, Black.Lerp(White, 3))
	assert.Equal(t, Black, Black.Lerp(White, -1))
}
