package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tailscale/hujson"

	"rowsort/rowcodec"
)

// defaultBlockSize is used when a document omits block_size or sets it
// to zero, matching the teacher corpus's convention of a page-sized
// default memory budget.
const defaultBlockSize = 4096

// Schema is an ordered sequence of cell types, matching rowcodec's own
// notion of a schema.
type Schema []rowcodec.CellType

// Plan bundles the key indices, sort direction, and block size parsed
// from a document — everything extsort.Sort needs beyond the schema and
// file paths.
type Plan struct {
	KeyIndices []int
	Ascending  bool
	BlockSize  int
}

// document mirrors the on-disk JWCC shape before validation.
type document struct {
	Columns   []string `json:"columns"`
	Keys      []int    `json:"keys"`
	Ascending *bool    `json:"ascending"`
	BlockSize int      `json:"block_size"`
}

// Load reads, standardizes, and validates a schema/plan document at
// path. The document format tolerates "//" comments and trailing commas
// (JWCC); see the package doc for the shape.
func Load(path string) (Schema, Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, Plan{}, fmt.Errorf("%w: %s: %v", ErrConfigRead, path, err)
	}

	standardized, err := hujson.Standardize(raw)
	if err != nil {
		return nil, Plan{}, fmt.Errorf("%w: %s: invalid JSONC: %v", ErrConfigInvalid, path, err)
	}

	var doc document
	if err := json.Unmarshal(standardized, &doc); err != nil {
		return nil, Plan{}, fmt.Errorf("%w: %s: %v", ErrConfigInvalid, path, err)
	}

	return validate(doc, path)
}

// Parse validates an already-read document, e.g. one assembled by a test
// rather than read from disk.
func Parse(raw []byte) (Schema, Plan, error) {
	standardized, err := hujson.Standardize(raw)
	if err != nil {
		return nil, Plan{}, fmt.Errorf("%w: invalid JSONC: %v", ErrConfigInvalid, err)
	}

	var doc document
	if err := json.Unmarshal(standardized, &doc); err != nil {
		return nil, Plan{}, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	return validate(doc, "<parsed>")
}

func validate(doc document, source string) (Schema, Plan, error) {
	if len(doc.Columns) == 0 {
		return nil, Plan{}, fmt.Errorf("%w: %s: columns must be non-empty", ErrConfigInvalid, source)
	}

	sch := make(Schema, len(doc.Columns))
	for i, name := range doc.Columns {
		ct, err := rowcodec.CellTypeByName(strings.ToUpper(strings.TrimSpace(name)))
		if err != nil {
			return nil, Plan{}, fmt.Errorf("%w: %s: column %d: %v", ErrConfigInvalid, source, i, err)
		}
		sch[i] = ct
	}

	if len(doc.Keys) == 0 {
		return nil, Plan{}, fmt.Errorf("%w: %s: keys must be non-empty", ErrConfigInvalid, source)
	}
	for _, k := range doc.Keys {
		if k < 0 || k >= len(sch) {
			return nil, Plan{}, fmt.Errorf("%w: %s: key index %d out of range for %d columns", ErrConfigInvalid, source, k, len(sch))
		}
		if sch[k] == rowcodec.CellBytes {
			return nil, Plan{}, fmt.Errorf("%w: %s: key index %d names a BYTES column, which has no defined ordering", ErrConfigInvalid, source, k)
		}
	}

	blockSize := doc.BlockSize
	if blockSize == 0 {
		blockSize = defaultBlockSize
	}
	if blockSize < 0 {
		return nil, Plan{}, fmt.Errorf("%w: %s: block_size must not be negative", ErrConfigInvalid, source)
	}

	ascending := true
	if doc.Ascending != nil {
		ascending = *doc.Ascending
	}

	return sch, Plan{
		KeyIndices: doc.Keys,
		Ascending:  ascending,
		BlockSize:  blockSize,
	}, nil
}
