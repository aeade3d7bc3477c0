package rowcodec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sampleSchema() []CellType {
	return []CellType{CellInt, CellString, CellFloat, CellBool, CellBytes}
}

func sampleRows() []Row {
	return []Row{
		{int32(1), "hello", float32(1.5), true, []byte{0x01, 0x02}},
		{int32(-7), "", float32(0), false, []byte{}},
		{nil, nil, nil, nil, nil},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	schema := sampleSchema()
	rows := sampleRows()

	buf, err := Encode(schema, rows)
	require.NoError(t, err)

	decoded, residual, err := Decode(schema, buf)
	require.NoError(t, err)
	require.Empty(t, residual)
	if diff := cmp.Diff(rows, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeChunkedAcrossBoundaries(t *testing.T) {
	schema := sampleSchema()
	rows := sampleRows()
	buf, err := Encode(schema, rows)
	require.NoError(t, err)

	var got []Row
	var residual []byte
	for i := 0; i < len(buf); i += 3 {
		end := i + 3
		if end > len(buf) {
			end = len(buf)
		}
		chunk := append(residual, buf[i:end]...)
		rowsOut, rest, err := Decode(schema, chunk)
		require.NoError(t, err)
		got = append(got, rowsOut...)
		residual = rest
	}
	require.Empty(t, residual)
	require.Equal(t, rows, got)
}

func TestEncodeRowLengthMismatch(t *testing.T) {
	schema := []CellType{CellInt, CellInt}
	_, err := Encode(schema, []Row{{int32(1)}})
	require.ErrorIs(t, err, ErrRowLength)
}

func TestEncodeSchemaMismatch(t *testing.T) {
	schema := []CellType{CellInt}
	_, err := Encode(schema, []Row{{"not an int"}})
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestEncodeCharMultiByteRune(t *testing.T) {
	schema := []CellType{CellChar}
	_, err := Encode(schema, []Row{{'é'}})
	require.ErrorIs(t, err, ErrEncoding)
}

func TestDecodeCorruptDeclaredLengthTooSmall(t *testing.T) {
	schema := []CellType{CellInt}
	buf := []byte{0, 0, 0, 0}
	_, _, err := Decode(schema, buf)
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestDecodeIncompleteRowKeptAsResidual(t *testing.T) {
	schema := sampleSchema()
	buf, err := Encode(schema, sampleRows()[:1])
	require.NoError(t, err)

	truncated := buf[:len(buf)-1]
	rows, residual, err := Decode(schema, truncated)
	require.NoError(t, err)
	require.Empty(t, rows)
	require.Equal(t, truncated, residual)
}

func TestValidateSchemaRejectsUnknownType(t *testing.T) {
	err := ValidateSchema([]CellType{CellType(200)})
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestCellTypeByName(t *testing.T) {
	ct, err := CellTypeByName("STRING")
	require.NoError(t, err)
	require.Equal(t, CellString, ct)

	_, err = CellTypeByName("NOT_A_TYPE")
	require.ErrorIs(t, err, ErrUnknownType)
}
