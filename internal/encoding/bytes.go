package encoding

import (
	"github.com/turtacn/dingocodec/common/constants"
	"github.com/turtacn/dingocodec/common/errors"
)

// bytesGroupSize is the number of payload bytes per group before its marker.
const bytesGroupSize = constants.BytesGroupSize

// --- bytes (ordered key form) ---
//
// A byte string has no fixed width, so it cannot be compared lexicographically
// as-is without ambiguity (e.g. "ab" vs "ab\x00" vs "abc" all share a prefix).
// The fix is to chunk the string into fixed 8-byte groups, each followed by a
// marker byte:
//
//   - marker 0xFF means this group is full (8 real bytes) and at least one
//     more group follows.
//   - marker < 0xFF is the terminal group: pad_count = 0xFF - marker, where
//     pad_count in [1..8] counts how many of the group's 8 bytes are zero
//     padding rather than real data.
//
// Every string, including the empty one and exact multiples of 8, terminates
// with a short (pad_count >= 1) group (a string whose length is an exact
// multiple of 8 gets one extra all-padding group), so the terminal marker is
// always unambiguous and groups sort correctly byte-for-byte.

func encodeOrderedBytes(data []byte, buf *Buf) {
	i := 0
	for {
		remaining := len(data) - i
		if remaining >= bytesGroupSize {
			buf.WriteBytes(data[i : i+bytesGroupSize])
			i += bytesGroupSize
			buf.WriteByte(constants.BytesGroupMarker)
			continue
		}
		buf.WriteBytes(data[i:])
		padCount := bytesGroupSize - remaining
		for j := 0; j < padCount; j++ {
			buf.WriteByte(0)
		}
		buf.WriteByte(constants.BytesGroupMarker - byte(padCount))
		return
	}
}

func decodeOrderedBytes(buf *Buf) ([]byte, error) {
	out := []byte{}
	for {
		if buf.RestReadableSize() < constants.BytesPadGroupSize {
			return nil, errors.ErrMalformedPadding.New("remaining", buf.RestReadableSize())
		}
		group, err := buf.ReadBytes(bytesGroupSize)
		if err != nil {
			return nil, err
		}
		marker, err := buf.ReadByte()
		if err != nil {
			return nil, err
		}
		if marker == constants.BytesGroupMarker {
			out = append(out, group...)
			continue
		}
		padCount := int(constants.BytesGroupMarker - marker)
		if padCount < 1 || padCount > bytesGroupSize {
			return nil, errors.ErrMalformedPadding.New("marker", marker)
		}
		for _, p := range group[bytesGroupSize-padCount:] {
			if p != 0 {
				return nil, errors.ErrMalformedPadding.New("pad_byte", p)
			}
		}
		out = append(out, group[:bytesGroupSize-padCount]...)
		return out, nil
	}
}

func skipOrderedBytes(buf *Buf) error {
	for {
		if err := buf.Skip(bytesGroupSize); err != nil {
			return err
		}
		marker, err := buf.ReadByte()
		if err != nil {
			return err
		}
		if marker == constants.BytesGroupMarker {
			continue
		}
		padCount := int(constants.BytesGroupMarker - marker)
		if padCount < 1 || padCount > bytesGroupSize {
			return errors.ErrMalformedPadding.New("marker", marker)
		}
		return nil
	}
}

type bytesCodec struct{}

func (bytesCodec) encodeKey(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		return nil
	}
	data, ok := v.([]byte)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	encodeOrderedBytes(data, buf)
	return nil
}

func (bytesCodec) decodeKey(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	return decodeOrderedBytes(buf)
}

func (bytesCodec) skipKey(buf *Buf) error {
	tag, err := buf.ReadByte()
	if err != nil {
		return err
	}
	if tag == tagNull {
		return nil
	}
	return skipOrderedBytes(buf)
}

// --- bytes (unordered value form) ---
//
// Outside key position there is no need to preserve comparability, so the
// value form is the plain length-prefixed payload: {tag:1}{length:4 BE}{raw
// bytes}. A null is a tag byte and a zero length, no group padding.

func (bytesCodec) encodeValue(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		buf.WriteUint32BE(0)
		return nil
	}
	data, ok := v.([]byte)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	buf.WriteUint32BE(uint32(len(data)))
	buf.WriteBytes(data)
	return nil
}

func (bytesCodec) decodeValue(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	n, err := buf.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	data, err := buf.ReadBytes(int(n))
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	return data, nil
}

func (bytesCodec) skipValue(buf *Buf) error {
	if _, err := buf.ReadByte(); err != nil {
		return err
	}
	n, err := buf.ReadUint32BE()
	if err != nil {
		return err
	}
	return buf.Skip(int(n))
}
