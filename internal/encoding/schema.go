package encoding

import "github.com/turtacn/dingocodec/common/types/enum"

// Entry is a single column's schema descriptor: its codec choice, its
// logical position in the record tuple, and its key-ness and null-admission
// flags. Entries are immutable value types once built; the record codec
// keeps its own copy of them inside a Vector, never shared ownership.
type Entry struct {
	Type      enum.ColumnType
	Index     int
	IsKey     bool
	AllowNull bool
	name      string
}

// NewEntry builds a schema entry for the given column type at the given
// logical index.
func NewEntry(name string, typ enum.ColumnType, index int, isKey, allowNull bool) Entry {
	return Entry{Type: typ, Index: index, IsKey: isKey, AllowNull: allowNull, name: name}
}

// Name returns the entry's declared column name, used only for diagnostics.
func (e Entry) Name() string { return e.name }

// Vector is an ordered sequence of schema entries. The position of an entry
// in the vector is its serialization order; the entry's own Index field is
// its logical position in the caller's record tuple. The two may differ;
// see reorderNonKeyColumns in record_codec.go, which the record codec
// applies once at construction time to move variable-width non-key columns
// after fixed-width ones.
//
// A hole in the vector (a nil-ish placeholder) has no representation here:
// every position must carry a real entry (a zero Entry is a Bool column at
// index 0, not a hole), since Go has no analogue
// to a shared_ptr<BaseSchema> that can be null mid-vector without extra
// bookkeeping. Callers that need holes should omit the column entirely from
// the record and vector together.
type Vector []Entry

// Len returns the number of entries.
func (v Vector) Len() int { return len(v) }

// validateListKeys checks that no list-typed entry is marked as a key,
// since list columns have no ordered form.
func (v Vector) validateListKeys() error {
	for _, e := range v {
		if e.IsKey && e.Type.IsList() {
			return newUnsupportedKeyTypeErr(e)
		}
	}
	return nil
}
