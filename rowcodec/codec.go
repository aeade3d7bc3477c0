package rowcodec

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

// Row is an ordered sequence of cell values matching a schema in length
// and per-position type. A nil element means the cell is null; it is
// encoded out-of-band via a null flag and carries no payload bytes.
type Row []any

// lengthPrefixSize is the width of the u32 that opens every encoded row,
// counting itself.
const lengthPrefixSize = 4

// Encode serializes rows under schema into the concatenation of their
// per-row encodings. See the package doc for the wire format.
func Encode(schema []CellType, rows []Row) ([]byte, error) {
	if err := ValidateSchema(schema); err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(rows)*32)
	for ri, row := range rows {
		if len(row) != len(schema) {
			return nil, fmt.Errorf("rowcodec: row %d: %w (have %d cells, schema has %d)",
				ri, ErrRowLength, len(row), len(schema))
		}

		body, err := encodeRowBody(schema, row)
		if err != nil {
			return nil, fmt.Errorf("rowcodec: row %d: %w", ri, err)
		}

		lengthPrefix := make([]byte, lengthPrefixSize)
		binary.LittleEndian.PutUint32(lengthPrefix, uint32(lengthPrefixSize+len(body)))
		out = append(out, lengthPrefix...)
		out = append(out, body...)
	}
	return out, nil
}

func encodeRowBody(schema []CellType, row Row) ([]byte, error) {
	body := make([]byte, 0, len(schema)*8)
	for i, ct := range schema {
		val := row[i]
		if val == nil {
			body = append(body, 1)
			continue
		}
		payload, err := encodeCell(ct, val)
		if err != nil {
			return nil, fmt.Errorf("column %d (%s): %w", i, ct, err)
		}
		body = append(body, 0)
		body = append(body, payload...)
	}
	return body, nil
}

func encodeCell(ct CellType, val any) ([]byte, error) {
	switch ct {
	case CellChar:
		r, ok := val.(rune)
		if !ok {
			return nil, fmt.Errorf("%w: expected rune, got %T", ErrSchemaMismatch, val)
		}
		buf := make([]byte, utf8.UTFMax)
		n := utf8.EncodeRune(buf, r)
		if n != 1 {
			return nil, fmt.Errorf("%w: character %q encodes to %d bytes, want 1", ErrEncoding, r, n)
		}
		return buf[:1], nil

	case CellSignedChar:
		v, ok := val.(int8)
		if !ok {
			return nil, fmt.Errorf("%w: expected int8, got %T", ErrSchemaMismatch, val)
		}
		return []byte{byte(v)}, nil

	case CellUnsignedChar:
		v, ok := val.(uint8)
		if !ok {
			return nil, fmt.Errorf("%w: expected uint8, got %T", ErrSchemaMismatch, val)
		}
		return []byte{v}, nil

	case CellBool:
		v, ok := val.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: expected bool, got %T", ErrSchemaMismatch, val)
		}
		if v {
			return []byte{1}, nil
		}
		return []byte{0}, nil

	case CellShort:
		v, ok := val.(int16)
		if !ok {
			return nil, fmt.Errorf("%w: expected int16, got %T", ErrSchemaMismatch, val)
		}
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(v))
		return buf, nil

	case CellUnsignedShort:
		v, ok := val.(uint16)
		if !ok {
			return nil, fmt.Errorf("%w: expected uint16, got %T", ErrSchemaMismatch, val)
		}
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, v)
		return buf, nil

	case CellHalfFloat:
		v, ok := val.(float32)
		if !ok {
			return nil, fmt.Errorf("%w: expected float32, got %T", ErrSchemaMismatch, val)
		}
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, float32ToHalfBits(v))
		return buf, nil

	case CellInt, CellLong:
		v, ok := val.(int32)
		if !ok {
			return nil, fmt.Errorf("%w: expected int32, got %T", ErrSchemaMismatch, val)
		}
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(v))
		return buf, nil

	case CellUnsignedInt, CellUnsignedLong:
		v, ok := val.(uint32)
		if !ok {
			return nil, fmt.Errorf("%w: expected uint32, got %T", ErrSchemaMismatch, val)
		}
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, v)
		return buf, nil

	case CellFloat:
		v, ok := val.(float32)
		if !ok {
			return nil, fmt.Errorf("%w: expected float32, got %T", ErrSchemaMismatch, val)
		}
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
		return buf, nil

	case CellLongLong:
		v, ok := val.(int64)
		if !ok {
			return nil, fmt.Errorf("%w: expected int64, got %T", ErrSchemaMismatch, val)
		}
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, uint64(v))
		return buf, nil

	case CellUnsignedLongLong:
		v, ok := val.(uint64)
		if !ok {
			return nil, fmt.Errorf("%w: expected uint64, got %T", ErrSchemaMismatch, val)
		}
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, v)
		return buf, nil

	case CellDouble:
		v, ok := val.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: expected float64, got %T", ErrSchemaMismatch, val)
		}
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
		return buf, nil

	case CellString:
		s, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected string, got %T", ErrSchemaMismatch, val)
		}
		sb := []byte(s)
		buf := make([]byte, 4+len(sb))
		binary.LittleEndian.PutUint32(buf[:4], uint32(len(sb)))
		copy(buf[4:], sb)
		return buf, nil

	case CellBytes:
		b, ok := val.([]byte)
		if !ok {
			return nil, fmt.Errorf("%w: expected []byte, got %T", ErrSchemaMismatch, val)
		}
		buf := make([]byte, 4+len(b))
		binary.LittleEndian.PutUint32(buf[:4], uint32(len(b)))
		copy(buf[4:], b)
		return buf, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, ct)
	}
}

// Decode consumes the prefix of buffer that contains whole rows and
// returns them plus the trailing residual bytes that do not yet form a
// complete row. Callers feeding a file in fixed-size blocks prepend the
// residual to the next block before calling Decode again.
func Decode(schema []CellType, buffer []byte) ([]Row, []byte, error) {
	if err := ValidateSchema(schema); err != nil {
		return nil, nil, err
	}

	var rows []Row
	offset := 0
	for {
		remaining := len(buffer) - offset
		if remaining < lengthPrefixSize {
			return rows, buffer[offset:], nil
		}

		length := binary.LittleEndian.Uint32(buffer[offset : offset+lengthPrefixSize])
		if length < lengthPrefixSize {
			return nil, nil, fmt.Errorf("%w: declared row length %d is smaller than the length prefix itself", ErrCorrupt, length)
		}
		if int(length) > remaining {
			return rows, buffer[offset:], nil
		}

		body := buffer[offset+lengthPrefixSize : offset+int(length)]
		row, err := decodeRowBody(schema, body)
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
		offset += int(length)
	}
}

func decodeRowBody(schema []CellType, body []byte) (Row, error) {
	row := make(Row, len(schema))
	offset := 0
	for i, ct := range schema {
		if offset >= len(body) {
			return nil, fmt.Errorf("column %d (%s): %w: row ended before null flag", i, ct, ErrCorrupt)
		}
		nullFlag := body[offset]
		offset++
		if nullFlag != 0 {
			row[i] = nil
			continue
		}

		val, consumed, err := decodeCell(ct, body[offset:])
		if err != nil {
			return nil, fmt.Errorf("column %d (%s): %w", i, ct, err)
		}
		row[i] = val
		offset += consumed
	}
	if offset != len(body) {
		return nil, fmt.Errorf("%w: %d trailing byte(s) after decoding a declared row", ErrCorrupt, len(body)-offset)
	}
	return row, nil
}

func need(buf []byte, n int) error {
	if len(buf) < n {
		return fmt.Errorf("%w: need %d byte(s), have %d", ErrCorrupt, n, len(buf))
	}
	return nil
}

func decodeCell(ct CellType, buf []byte) (any, int, error) {
	switch ct {
	case CellChar:
		if err := need(buf, 1); err != nil {
			return nil, 0, err
		}
		return rune(buf[0]), 1, nil

	case CellSignedChar:
		if err := need(buf, 1); err != nil {
			return nil, 0, err
		}
		return int8(buf[0]), 1, nil

	case CellUnsignedChar:
		if err := need(buf, 1); err != nil {
			return nil, 0, err
		}
		return buf[0], 1, nil

	case CellBool:
		if err := need(buf, 1); err != nil {
			return nil, 0, err
		}
		return buf[0] != 0, 1, nil

	case CellShort:
		if err := need(buf, 2); err != nil {
			return nil, 0, err
		}
		return int16(binary.LittleEndian.Uint16(buf[:2])), 2, nil

	case CellUnsignedShort:
		if err := need(buf, 2); err != nil {
			return nil, 0, err
		}
		return binary.LittleEndian.Uint16(buf[:2]), 2, nil

	case CellHalfFloat:
		if err := need(buf, 2); err != nil {
			return nil, 0, err
		}
		return halfBitsToFloat32(binary.LittleEndian.Uint16(buf[:2])), 2, nil

	case CellInt, CellLong:
		if err := need(buf, 4); err != nil {
			return nil, 0, err
		}
		return int32(binary.LittleEndian.Uint32(buf[:4])), 4, nil

	case CellUnsignedInt, CellUnsignedLong:
		if err := need(buf, 4); err != nil {
			return nil, 0, err
		}
		return binary.LittleEndian.Uint32(buf[:4]), 4, nil

	case CellFloat:
		if err := need(buf, 4); err != nil {
			return nil, 0, err
		}
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[:4])), 4, nil

	case CellLongLong:
		if err := need(buf, 8); err != nil {
			return nil, 0, err
		}
		return int64(binary.LittleEndian.Uint64(buf[:8])), 8, nil

	case CellUnsignedLongLong:
		if err := need(buf, 8); err != nil {
			return nil, 0, err
		}
		return binary.LittleEndian.Uint64(buf[:8]), 8, nil

	case CellDouble:
		if err := need(buf, 8); err != nil {
			return nil, 0, err
		}
		return math.Float64frombits(binary.LittleEndian.Uint64(buf[:8])), 8, nil

	case CellString:
		if err := need(buf, 4); err != nil {
			return nil, 0, err
		}
		n := binary.LittleEndian.Uint32(buf[:4])
		if err := need(buf, 4+int(n)); err != nil {
			return nil, 0, err
		}
		return string(buf[4 : 4+n]), 4 + int(n), nil

	case CellBytes:
		if err := need(buf, 4); err != nil {
			return nil, 0, err
		}
		n := binary.LittleEndian.Uint32(buf[:4])
		if err := need(buf, 4+int(n)); err != nil {
			return nil, 0, err
		}
		b := make([]byte, n)
		copy(b, buf[4:4+n])
		return b, 4 + int(n), nil

	default:
		return nil, 0, fmt.Errorf("%w: %s", ErrUnknownType, ct)
	}
}
