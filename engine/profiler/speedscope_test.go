package profiler

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSpeedscopeBalancesScopes(t *testing.T) {
	evs := []event{
		{AtNS: 1_000, Frame: 0, Open: true},
		{AtNS: 3_000, Frame: 1, Open: true},
		{AtNS: 2_000, Frame: 1}, // clock went backwards
		{AtNS: 4_000, Frame: 1}, // unmatched
		{AtNS: 9_000, Frame: 2, Open: true},
	}
	var buf bytes.Buffer
	require.NoError(t, writeSpeedscope(&buf, []string{"frame", "ui", "flush"}, evs))

	var doc ssFile
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Profiles, 1)
	assert.Len(t, doc.Shared.Frames, 3)

	p := doc.Profiles[0]
	assert.Equal(t, int64(8), p.EndValue)
	assert.Equal(t, []ssEvent{
		{Type: "O", At: 0, Frame: 0},
		{Type: "O", At: 2, Frame: 1},
		{Type: "C", At: 2, Frame: 1},
		{Type: "O", At: 8, Frame: 2},
		{Type: "C", At: 8, Frame: 2},
		{Type: "C", At: 8, Frame: 0},
	}, p.Events)
}

func TestWriteSpeedscopeEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, writeSpeedscope(&buf, nil, nil), errNoEvents)
	assert.Zero(t, buf.Len())
}

func TestStats(t *testing.T) {
	inUse, allocs := Memory()
	assert.NotZero(t, inUse)
	assert.NotZero(t, allocs)
	assert.Positive(t, NumCPU())
	assert.Positive(t, NumGoroutine())
}
