package rowcodec

import "errors"

// Sentinel errors. Callers that care about the error kind rather than its
// message should use errors.Is against these.
var (
	// ErrUnknownType is returned when a schema names a cell type outside
	// the closed set, or when a key column resolved from such a schema
	// is used.
	ErrUnknownType = errors.New("rowcodec: unknown cell type")

	// ErrSchemaMismatch is returned by Encode when a row's runtime value
	// does not match its declared column type.
	ErrSchemaMismatch = errors.New("rowcodec: value does not match schema")

	// ErrEncoding is returned by Encode when a value is well-typed but
	// cannot be represented under the wire format, e.g. a CHAR cell
	// whose value is not exactly one byte.
	ErrEncoding = errors.New("rowcodec: encoding error")

	// ErrCorrupt is returned by Decode when a buffer that is known to be
	// complete (end of file reached) contains a row whose declared
	// length runs past what its columns actually produce.
	ErrCorrupt = errors.New("rowcodec: corrupt row framing")

	// ErrRowLength is returned by Encode if a row does not have exactly
	// one value per schema column.
	ErrRowLength = errors.New("rowcodec: row length does not match schema")
)
