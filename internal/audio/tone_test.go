package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelBounded(t *testing.T) {
	tests := []struct {
		speed  float64
		active bool
		want   float64
	}{
		{0, false, 0},
		{0, true, 0.2},
		{0.1, false, 0.25},
		{10, true, 1},
		{-1, false, 0},
		{math.NaN(), true, 0.2},
	}
	for _, tt := range tests {
		got := Level(tt.speed, tt.active)
		assert.InDelta(t, tt.want, got, 1e-12)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}

func TestSetLevelClamps(t *testing.T) {
	tone := NewTone()
	tone.SetLevel(3)
	assert.Equal(t, 1.0, tone.Level())
	tone.SetLevel(-2)
	assert.Equal(t, 0.0, tone.Level())
}

func peak(buf []byte) float64 {
	m := 0.0
	for off := 0; off+4 <= len(buf); off += 4 {
		v := math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
		m = math.Max(m, math.Abs(float64(v)))
	}
	return m
}

func TestToneSilentAtZeroAndRisesWithLevel(t *testing.T) {
	tone := NewTone()
	buf := make([]byte, 4096*bytesPerFrame)

	n, err := tone.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, 0.0, peak(buf))

	tone.SetLevel(1)
	for i := 0; i < 4; i++ {
		_, err = tone.Read(buf)
		require.NoError(t, err)
	}
	p := peak(buf)
	assert.Greater(t, p, 0.05)
	assert.LessOrEqual(t, p, 0.25)
}

func TestToneShortBuffer(t *testing.T) {
	n, err := NewTone().Read(make([]byte, 5))
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.ErrShortBuffer)
}
