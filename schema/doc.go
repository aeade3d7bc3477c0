// Package schema parses the comment-tolerant JSON schema/plan documents
// that cmd/rowsort and tests use to describe a row file's columns and a
// sort plan, without hand-writing rowcodec.CellType slices.
//
// A document looks like:
//
//	{
//	  // column order matches on-disk column order
//	  "columns": ["int", "string", "float"],
//	  "keys": [0, 1],       // most-significant first
//	  "ascending": true,
//	  "block_size": 4096,
//	}
//
// Loading one never changes what gets written to a row file — only how a
// caller assembles the arguments to extsort.Sort.
package schema
