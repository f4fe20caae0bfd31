// Package record defines the caller-facing tuple type the codec encodes and
// decodes. It stays a thin alias rather than a new abstraction: a record is
// simply one dynamically-typed cell per logical column, aligned by index.
package record

// Record is an ordered sequence of column values, one per logical position
// in a schema vector. A nil element means the column is null for this row.
//
// The concrete Go type held at each position must match the ColumnType tag
// carried by the corresponding schema entry:
//
//	Bool        -> bool
//	Int32       -> int32
//	Int64       -> int64
//	Float32     -> float32
//	Float64     -> float64
//	Bytes       -> []byte
//	ListBool    -> []bool
//	ListInt32   -> []int32
//	ListInt64   -> []int64
//	ListFloat32 -> []float32
//	ListFloat64 -> []float64
//	ListBytes   -> [][]byte
type Record []interface{}
