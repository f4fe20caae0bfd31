package encoding

import (
	"math"

	"github.com/turtacn/dingocodec/common/constants"
	"github.com/turtacn/dingocodec/common/errors"
	"github.com/turtacn/dingocodec/common/types/record"
)

// RecordCodec binds a schema vector to one table's key prefix and schema
// version, and turns records into keys/values and back. It owns a reordered
// copy of the schema it was given: callers keep using the original logical
// index to address a column, but the codec serializes non-key columns in an
// order that groups fixed-width entries before variable-width ones, so a
// forward-compatible decoder can bound a fixed-width scan without first
// walking every preceding variable-width entry. Because of this reordering,
// a non-key column appended to a schema stays last in serialization order
// only if it is variable-width or no variable-width non-key column precedes
// it; otherwise it is moved ahead, and values written under the shorter
// schema no longer line up with the new layout.
type RecordCodec struct {
	le            bool
	schemaVersion int32
	commonID      int64
	schema        Vector
}

// NewRecordCodec builds a codec for one table's schema. le records the host's
// native endianness for diagnostics only; the wire format is always
// big-endian regardless of its value.
func NewRecordCodec(schemaVersion int32, schema Vector, commonID int64, le bool) (*RecordCodec, error) {
	if err := schema.validateListKeys(); err != nil {
		return nil, err
	}
	reordered := reorderNonKeyColumns(schema)
	return &RecordCodec{
		le:            le,
		schemaVersion: schemaVersion,
		commonID:      commonID,
		schema:        reordered,
	}, nil
}

// reorderNonKeyColumns moves non-key variable-width entries after non-key
// fixed-width entries, leaving key entries where they are. Walking forward,
// it swaps each variable-width non-key entry with the last fixed-width
// non-key entry still behind it, and stops once none is left. The swaps do
// not preserve the original relative order within the fixed-width entries
// or within the variable-width entries.
func reorderNonKeyColumns(schema Vector) Vector {
	out := make(Vector, len(schema))
	copy(out, schema)

	isFixed := func(e Entry) bool {
		_, fixed := e.Type.FixedKeyWidth()
		return fixed
	}

	tail := len(out) - 1
	for i := 0; i < tail; i++ {
		e := out[i]
		if e.IsKey || isFixed(e) {
			continue
		}
		target := tail
		for target > i && (out[target].IsKey || !isFixed(out[target])) {
			target--
		}
		if target <= i {
			break
		}
		out[i], out[target] = out[target], out[i]
		tail = target - 1
	}
	return out
}

func newBuf(le bool) *Buf {
	return NewBuf(constants.DefaultBufInitCapacity, le)
}

func (c *RecordCodec) encodePrefix(buf *Buf, namespace byte) {
	buf.WriteByte(namespace)
	buf.WriteUint64BE(uint64(c.commonID))
}

func (c *RecordCodec) encodeSchemaVersion(buf *Buf) {
	buf.WriteUint32BE(uint32(c.schemaVersion))
}

// EncodeKey serializes only the key columns, in schema order, prefixed by
// the namespace byte and the codec's common_id.
func (c *RecordCodec) EncodeKey(namespace byte, rec record.Record) ([]byte, error) {
	buf := newBuf(c.le)
	c.encodePrefix(buf, namespace)
	for _, e := range c.schema {
		if !e.IsKey {
			continue
		}
		if e.Index >= len(rec) {
			return nil, errors.ErrOutOfRange.New("column", e.Name(), "index", e.Index, "record_len", len(rec))
		}
		if err := codecFor(e.Type).encodeKey(rec[e.Index], e, buf); err != nil {
			return nil, err
		}
	}
	return buf.IntoBytes(), nil
}

// EncodeValue serializes only the non-key columns, in the codec's reordered
// schema order, prefixed by the schema version.
func (c *RecordCodec) EncodeValue(rec record.Record) ([]byte, error) {
	buf := newBuf(c.le)
	c.encodeSchemaVersion(buf)
	for _, e := range c.schema {
		if e.IsKey {
			continue
		}
		if e.Index >= len(rec) {
			return nil, errors.ErrOutOfRange.New("column", e.Name(), "index", e.Index, "record_len", len(rec))
		}
		if err := codecFor(e.Type).encodeValue(rec[e.Index], e, buf); err != nil {
			return nil, err
		}
	}
	return buf.IntoBytes(), nil
}

// Encode serializes rec into both its key and value forms.
func (c *RecordCodec) Encode(namespace byte, rec record.Record) (key []byte, value []byte, err error) {
	key, err = c.EncodeKey(namespace, rec)
	if err != nil {
		return nil, nil, err
	}
	value, err = c.EncodeValue(rec)
	if err != nil {
		return nil, nil, err
	}
	return key, value, nil
}

// EncodeMinKeyPrefix returns the smallest key prefix for this codec's
// common_id: namespace||common_id. Any key this codec produces for this
// common_id sorts at or after this prefix.
func (c *RecordCodec) EncodeMinKeyPrefix(namespace byte) []byte {
	buf := newBuf(c.le)
	c.encodePrefix(buf, namespace)
	return buf.IntoBytes()
}

// EncodeMaxKeyPrefix returns namespace||(common_id+1): every key this codec
// produces for this common_id sorts strictly before this prefix, making
// [EncodeMinKeyPrefix, EncodeMaxKeyPrefix) a half-open scan range. Fails with
// ErrKeyOverflow when common_id is already math.MaxInt64, since there is no
// representable successor.
func (c *RecordCodec) EncodeMaxKeyPrefix(namespace byte) ([]byte, error) {
	if c.commonID == math.MaxInt64 {
		return nil, errors.ErrKeyOverflow.New("common_id", c.commonID)
	}
	buf := newBuf(c.le)
	buf.WriteByte(namespace)
	buf.WriteUint64BE(uint64(c.commonID + 1))
	return buf.IntoBytes(), nil
}

// checkPrefix skips the namespace byte without checking its value and
// reports whether the common_id that follows equals this codec's, leaving
// keyBuf's cursor just past the prefix.
func (c *RecordCodec) checkPrefix(keyBuf *Buf) (bool, error) {
	if err := keyBuf.Skip(1); err != nil {
		return false, err
	}
	id, err := keyBuf.ReadUint64BE()
	if err != nil {
		return false, err
	}
	return int64(id) == c.commonID, nil
}

func (c *RecordCodec) checkSchemaVersion(valueBuf *Buf) (bool, error) {
	v, err := valueBuf.ReadUint32BE()
	if err != nil {
		return false, err
	}
	return int32(v) <= c.schemaVersion, nil
}

// Decode reconstructs a full record from a key/value pair previously
// produced by Encode. It fails with ErrPrefixMismatch if key does not belong
// to this codec's common_id, and ErrSchemaTooNew if value carries a schema
// version newer than this codec knows.
func (c *RecordCodec) Decode(key, value []byte) (record.Record, error) {
	keyBuf := NewBufFromBytes(key, c.le)
	valueBuf := NewBufFromBytes(value, c.le)

	ok, err := c.checkPrefix(keyBuf)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ErrPrefixMismatch.New("common_id", c.commonID)
	}
	ok, err = c.checkSchemaVersion(valueBuf)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ErrSchemaTooNew.New("schema_version", c.schemaVersion)
	}

	rec := make(record.Record, c.recordLen())
	for _, e := range c.schema {
		codec := codecFor(e.Type)
		if e.IsKey {
			v, err := codec.decodeKey(keyBuf)
			if err != nil {
				return nil, err
			}
			rec[e.Index] = v
			continue
		}
		if valueBuf.IsEnd() {
			rec[e.Index] = nil
			continue
		}
		v, err := codec.decodeValue(valueBuf)
		if err != nil {
			return nil, err
		}
		rec[e.Index] = v
	}
	return rec, nil
}

// DecodeKey reconstructs only the key columns of a record, leaving every
// non-key slot nil. It never touches a value buffer, so it can be used to
// materialize a record from a bare key during a range scan.
func (c *RecordCodec) DecodeKey(key []byte) (record.Record, error) {
	keyBuf := NewBufFromBytes(key, c.le)

	ok, err := c.checkPrefix(keyBuf)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ErrPrefixMismatch.New("common_id", c.commonID)
	}

	rec := make(record.Record, c.recordLen())
	for _, e := range c.schema {
		if !e.IsKey {
			continue
		}
		v, err := codecFor(e.Type).decodeKey(keyBuf)
		if err != nil {
			return nil, err
		}
		rec[e.Index] = v
	}
	return rec, nil
}

// DecodeProjection reconstructs only the columns named in columnIndexes
// (given as logical record indexes), skipping the rest without
// materializing them. Columns named by columnIndexes but absent from the
// encoded value (forward-compatible trailing columns added after this row
// was written) decode as nil rather than erroring.
func (c *RecordCodec) DecodeProjection(key, value []byte, columnIndexes []int) (record.Record, error) {
	keyBuf := NewBufFromBytes(key, c.le)
	valueBuf := NewBufFromBytes(value, c.le)

	ok, err := c.checkPrefix(keyBuf)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ErrPrefixMismatch.New("common_id", c.commonID)
	}
	ok, err = c.checkSchemaVersion(valueBuf)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ErrSchemaTooNew.New("schema_version", c.schemaVersion)
	}

	// outPosByIndex maps a requested column's logical index to its position
	// in the output record. Reordering moves non-key variable-width entries
	// out of logical-index order within c.schema, so the schema walk below
	// cannot assume ascending indexes the way a plain merge-walk could; a
	// lookup keyed on logical index handles both the original and the
	// reordered layout alike.
	outPosByIndex := make(map[int]int, len(columnIndexes))
	for i, idx := range columnIndexes {
		outPosByIndex[idx] = i
	}

	rec := make(record.Record, len(columnIndexes))

	for _, e := range c.schema {
		codec := codecFor(e.Type)
		outPos, wanted := outPosByIndex[e.Index]

		if e.IsKey {
			if wanted {
				v, err := codec.decodeKey(keyBuf)
				if err != nil {
					return nil, err
				}
				rec[outPos] = v
			} else if err := codec.skipKey(keyBuf); err != nil {
				return nil, err
			}
			continue
		}

		if valueBuf.IsEnd() {
			if wanted {
				rec[outPos] = nil
			}
			continue
		}
		if wanted {
			v, err := codec.decodeValue(valueBuf)
			if err != nil {
				return nil, err
			}
			rec[outPos] = v
		} else if err := codec.skipValue(valueBuf); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

func (c *RecordCodec) recordLen() int {
	max := -1
	for _, e := range c.schema {
		if e.Index > max {
			max = e.Index
		}
	}
	return max + 1
}
