package rowcodec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHalfFloatRoundTrip(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 0.5, 65504, -65504, 3.14} {
		bits := float32ToHalfBits(f)
		back := halfBitsToFloat32(bits)
		require.InDelta(t, f, back, 0.01, "value %v", f)
	}
}

func TestHalfFloatSpecials(t *testing.T) {
	require.True(t, math.IsInf(float64(halfBitsToFloat32(float32ToHalfBits(float32(math.Inf(1))))), 1))
	require.True(t, math.IsInf(float64(halfBitsToFloat32(float32ToHalfBits(float32(math.Inf(-1))))), -1))
	require.True(t, math.IsNaN(float64(halfBitsToFloat32(float32ToHalfBits(float32(math.NaN()))))))
}
