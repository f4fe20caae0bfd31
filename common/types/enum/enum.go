// Package enum defines the small closed enumerations shared across the codec:
// the severity levels used by common/log, and the column type tags dispatched
// by internal/encoding.
package enum

import (
	"fmt"
	"strings"
)

// LogLevel is the severity of a log record.
type LogLevel int

const (
	// LogLevelDebug is the most verbose level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the default operational level.
	LogLevelInfo
	// LogLevelWarn flags recoverable anomalies.
	LogLevelWarn
	// LogLevelError flags operations that failed outright.
	LogLevelError
	// LogLevelFatal logs and then terminates the process.
	LogLevelFatal
)

// String returns the canonical upper-case name of the level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a case-insensitive level name. Unknown names return
// LogLevelInfo along with an error so callers can fall back to a default.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LogLevelDebug, nil
	case "INFO", "":
		return LogLevelInfo, nil
	case "WARN", "WARNING":
		return LogLevelWarn, nil
	case "ERROR":
		return LogLevelError, nil
	case "FATAL":
		return LogLevelFatal, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// ColumnType is the closed set of column types the codec understands. It is
// the tag a Schema Entry carries and the value a Column Codec dispatches on;
// there is no extensibility beyond this set.
type ColumnType int

const (
	// Bool is a one-byte boolean column.
	Bool ColumnType = iota
	// Int32 is a 32-bit signed integer column.
	Int32
	// Int64 is a 64-bit signed integer column.
	Int64
	// Float32 is an IEEE-754 single precision column.
	Float32
	// Float64 is an IEEE-754 double precision column.
	Float64
	// Bytes is a variable-length opaque byte string column.
	Bytes
	// ListBool is a homogeneous list of Bool. Value-only; never a key.
	ListBool
	// ListInt32 is a homogeneous list of Int32. Value-only; never a key.
	ListInt32
	// ListInt64 is a homogeneous list of Int64. Value-only; never a key.
	ListInt64
	// ListFloat32 is a homogeneous list of Float32. Value-only; never a key.
	ListFloat32
	// ListFloat64 is a homogeneous list of Float64. Value-only; never a key.
	ListFloat64
	// ListBytes is a homogeneous list of Bytes. Value-only; never a key.
	ListBytes
)

// String returns the type's lower-case tag name, as used in error messages.
func (t ColumnType) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int32:
		return "i32"
	case Int64:
		return "i64"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	case Bytes:
		return "bytes"
	case ListBool:
		return "list<bool>"
	case ListInt32:
		return "list<i32>"
	case ListInt64:
		return "list<i64>"
	case ListFloat32:
		return "list<f32>"
	case ListFloat64:
		return "list<f64>"
	case ListBytes:
		return "list<bytes>"
	default:
		return "unknown"
	}
}

// IsList reports whether the type is a homogeneous list variant. List
// columns can never be marked as key columns.
func (t ColumnType) IsList() bool {
	return t >= ListBool
}

// FixedKeyWidth returns the total byte width (tag included) that a non-null
// fixed-width scalar occupies in key form, and whether the type is
// fixed-width at all. Bytes and list types are not fixed-width.
func (t ColumnType) FixedKeyWidth() (int, bool) {
	switch t {
	case Bool:
		return 2, true
	case Int32, Float32:
		return 5, true
	case Int64, Float64:
		return 9, true
	default:
		return 0, false
	}
}
