// Package constants centralizes the codec's shared default values, reducing
// magic numbers scattered across internal/encoding and storage/engines.
package constants

// ProjectName is this module's short name.
const ProjectName = "dingocodec"

// Version is the current release of the codec.
const Version = "0.1.0-alpha"

// --- Byte Buffer defaults ---

// DefaultBufInitCapacity is the initial capacity reserved for a fresh Buf,
// sized to cover a typical key or value payload without a reallocation.
const DefaultBufInitCapacity = 1024

// --- Byte-string ordered-encoding layout ---

// BytesGroupSize is the number of raw bytes per group before a marker byte.
const BytesGroupSize = 8

// BytesPadGroupSize is BytesGroupSize plus the trailing marker byte; every
// ordered byte-string encoding has a length that is a multiple of this.
const BytesPadGroupSize = 9

// BytesGroupMarker is the marker byte emitted after a full, non-terminal
// group. Terminal groups emit BytesGroupMarker - pad_count instead.
const BytesGroupMarker = 0xFF

// --- Record framing defaults ---

// DefaultSchemaVersion is the default schema version value. NewRecordCodec
// has no default of its own: the version is always passed to it explicitly.
const DefaultSchemaVersion = 1

// --- Storage defaults ---

// DefaultBadgerDataPath is the default on-disk directory for the badger
// RowStore when a config does not override it.
const DefaultBadgerDataPath = "./data/badger"

// --- Logging defaults ---

// DefaultLogLevel is the default severity level for logging.
const DefaultLogLevel = "INFO"

// DefaultLogFilePath is the default path for the codec's log file when file
// logging is enabled.
const DefaultLogFilePath = "./logs/dingocodec.log"

// LogFileMaxSizeMB is the maximum size in MB before a log file is rotated.
const LogFileMaxSizeMB = 100

// LogFileMaxBackups is the maximum number of old log files to retain.
const LogFileMaxBackups = 5

// LogFileMaxAgeDays is the maximum number of days to retain old log files.
const LogFileMaxAgeDays = 7
