package rowcodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareValuesOrdering(t *testing.T) {
	cmp, err := CompareValues(CellInt, int32(1), int32(2))
	require.NoError(t, err)
	require.Negative(t, cmp)

	cmp, err = CompareValues(CellString, "b", "a")
	require.NoError(t, err)
	require.Positive(t, cmp)

	cmp, err = CompareValues(CellBool, false, true)
	require.NoError(t, err)
	require.Negative(t, cmp)
}

func TestCompareValuesFloatEpsilon(t *testing.T) {
	cmp, err := CompareValues(CellFloat, float32(1.0), float32(1.0005))
	require.NoError(t, err)
	require.Zero(t, cmp)

	cmp, err = CompareValues(CellDouble, 1.0, 1.01)
	require.NoError(t, err)
	require.Negative(t, cmp)
}

func TestCompareValuesBytesUnsupported(t *testing.T) {
	_, err := CompareValues(CellBytes, []byte{1}, []byte{2})
	require.ErrorIs(t, err, ErrNotComparable)
}
