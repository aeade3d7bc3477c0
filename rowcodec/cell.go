// Package rowcodec frames a sequence of typed, nullable row values into a
// self-describing byte stream and back.
//
// A row file is a flat concatenation of encoded rows, no header, no
// trailing index: file := row*. Rows are read in fixed-size blocks that
// rarely align with row boundaries, so Decode is restartable mid-stream —
// it returns whatever whole rows a buffer contains plus the residual tail
// that belongs to the next block.
package rowcodec

import (
	"fmt"
)

// CellType tags one column's on-disk representation. The set is closed;
// there is no registration mechanism and no reflection involved in
// encoding or decoding a value of a given type.
type CellType byte

const (
	CellChar CellType = iota + 1
	CellSignedChar
	CellUnsignedChar
	CellBool
	CellShort
	CellUnsignedShort
	CellHalfFloat
	CellInt
	CellUnsignedInt
	CellLong
	CellUnsignedLong
	CellFloat
	CellLongLong
	CellUnsignedLongLong
	CellDouble
	CellString
	CellBytes
)

// floatEpsilon is the tolerance used when comparing HALF_FLOAT, FLOAT and
// DOUBLE cells for sort ordering.
const floatEpsilon = 1e-3

func (c CellType) String() string {
	switch c {
	case CellChar:
		return "CHAR"
	case CellSignedChar:
		return "SIGNED_CHAR"
	case CellUnsignedChar:
		return "UNSIGNED_CHAR"
	case CellBool:
		return "BOOL"
	case CellShort:
		return "SHORT"
	case CellUnsignedShort:
		return "UNSIGNED_SHORT"
	case CellHalfFloat:
		return "HALF_FLOAT"
	case CellInt:
		return "INT"
	case CellUnsignedInt:
		return "UNSIGNED_INT"
	case CellLong:
		return "LONG"
	case CellUnsignedLong:
		return "UNSIGNED_LONG"
	case CellFloat:
		return "FLOAT"
	case CellLongLong:
		return "LONG_LONG"
	case CellUnsignedLongLong:
		return "UNSIGNED_LONG_LONG"
	case CellDouble:
		return "DOUBLE"
	case CellString:
		return "STRING"
	case CellBytes:
		return "BYTES"
	default:
		return fmt.Sprintf("CellType(%d)", byte(c))
	}
}

// cellTypesByName maps the upper-case names that String returns back to
// their types. Package schema upper-cases a document's column names
// before looking them up here.
var cellTypesByName = map[string]CellType{
	"CHAR":                CellChar,
	"SIGNED_CHAR":         CellSignedChar,
	"UNSIGNED_CHAR":       CellUnsignedChar,
	"BOOL":                CellBool,
	"SHORT":               CellShort,
	"UNSIGNED_SHORT":      CellUnsignedShort,
	"HALF_FLOAT":          CellHalfFloat,
	"INT":                 CellInt,
	"UNSIGNED_INT":        CellUnsignedInt,
	"LONG":                CellLong,
	"UNSIGNED_LONG":       CellUnsignedLong,
	"FLOAT":               CellFloat,
	"LONG_LONG":           CellLongLong,
	"UNSIGNED_LONG_LONG":  CellUnsignedLongLong,
	"DOUBLE":              CellDouble,
	"STRING":              CellString,
	"BYTES":               CellBytes,
}

// CellTypeByName resolves an upper-case type name as returned by String.
// The lookup is case-sensitive. It returns an error wrapping
// ErrUnknownType for anything not in the closed set.
func CellTypeByName(name string) (CellType, error) {
	ct, ok := cellTypesByName[name]
	if !ok {
		return 0, fmt.Errorf("rowcodec: %w: %q", ErrUnknownType, name)
	}
	return ct, nil
}

// IsVariableLength reports whether a cell's primary storage mark is a
// 4-byte length prefix followed by a payload, rather than a fixed-width
// primitive.
func (c CellType) IsVariableLength() bool {
	return c == CellString || c == CellBytes
}

// FixedWidth returns the byte width of the primary storage mark: the
// primitive's own width for fixed-width types, or 4 (the length prefix)
// for variable-length types.
func (c CellType) FixedWidth() (int, error) {
	switch c {
	case CellChar, CellSignedChar, CellUnsignedChar, CellBool:
		return 1, nil
	case CellShort, CellUnsignedShort, CellHalfFloat:
		return 2, nil
	case CellInt, CellUnsignedInt, CellLong, CellUnsignedLong, CellFloat:
		return 4, nil
	case CellLongLong, CellUnsignedLongLong, CellDouble:
		return 8, nil
	case CellString, CellBytes:
		return 4, nil
	default:
		return 0, fmt.Errorf("rowcodec: %w: %s", ErrUnknownType, c)
	}
}

// ValidateSchema rejects any column whose type is outside the closed set.
func ValidateSchema(schema []CellType) error {
	for i, c := range schema {
		if _, err := c.FixedWidth(); err != nil {
			return fmt.Errorf("rowcodec: column %d: %w", i, err)
		}
	}
	return nil
}
