package encoding

import "math"

// --- bool ---
//
// {tag:1}{value:1}, tag 0x00 for null and 0x01 for non-null. Ordered and unordered forms are identical: a
// boolean has no sign bit to flip and only two values, so comparable order
// falls out of the tag-then-payload layout for free.

type boolCodec struct{}

func (boolCodec) encode(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		buf.WriteByte(0)
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	if b {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	return nil
}

func (c boolCodec) encodeKey(v interface{}, e Entry, buf *Buf) error   { return c.encode(v, e, buf) }
func (c boolCodec) encodeValue(v interface{}, e Entry, buf *Buf) error { return c.encode(v, e, buf) }

func (boolCodec) decode(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	payload, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	return payload != 0, nil
}

func (c boolCodec) decodeKey(buf *Buf) (interface{}, error)   { return c.decode(buf) }
func (c boolCodec) decodeValue(buf *Buf) (interface{}, error) { return c.decode(buf) }

func (boolCodec) skipKey(buf *Buf) error   { return buf.Skip(2) }
func (boolCodec) skipValue(buf *Buf) error { return buf.Skip(2) }

// --- int32 ---
//
// Ordered form: big-endian two's-complement with the sign bit flipped. This
// maps the full int32 range onto unsigned lexicographic order: negative
// numbers (sign bit 1) become 0x00.. and non-negative numbers (sign bit 0)
// become 0x80.., so -1 sorts before 0 sorts before 1 under byte comparison.

type int32Codec struct{}

func (int32Codec) encodeKey(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		buf.WriteUint32BE(0)
		return nil
	}
	i, ok := v.(int32)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	buf.WriteUint32BE(uint32(i) ^ 0x80000000)
	return nil
}

func (int32Codec) encodeValue(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		buf.WriteUint32BE(0)
		return nil
	}
	i, ok := v.(int32)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	buf.WriteUint32BE(uint32(i))
	return nil
}

func (int32Codec) decodeKey(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	raw, err := buf.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	return int32(raw ^ 0x80000000), nil
}

func (int32Codec) decodeValue(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	raw, err := buf.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	return int32(raw), nil
}

func (int32Codec) skipKey(buf *Buf) error   { return buf.Skip(5) }
func (int32Codec) skipValue(buf *Buf) error { return buf.Skip(5) }

// --- int64 ---
//
// Same transform as int32, widened to 8 bytes.

type int64Codec struct{}

func (int64Codec) encodeKey(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		buf.WriteUint64BE(0)
		return nil
	}
	i, ok := v.(int64)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	buf.WriteUint64BEFirstBitFlipped(uint64(i))
	return nil
}

func (int64Codec) encodeValue(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		buf.WriteUint64BE(0)
		return nil
	}
	i, ok := v.(int64)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	buf.WriteUint64BE(uint64(i))
	return nil
}

func (int64Codec) decodeKey(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	raw, err := buf.ReadUint64BE()
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	return int64(raw ^ 0x8000000000000000), nil
}

func (int64Codec) decodeValue(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	raw, err := buf.ReadUint64BE()
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	return int64(raw), nil
}

func (int64Codec) skipKey(buf *Buf) error   { return buf.Skip(9) }
func (int64Codec) skipValue(buf *Buf) error { return buf.Skip(9) }

// --- float32 / float64 ---
//
// The ordered transform maps the totally-ordered set of finite floats
// (-inf < -normal < -0 < +0 < +normal < +inf) onto unsigned lexicographic
// byte order:
//
//   - non-negative (sign bit 0): flip only the sign bit, so +0 and larger
//     positives land at or above 0x80....
//   - negative (sign bit 1): flip every bit, which both clears the sign bit
//     (putting negatives below positives) and reverses the magnitude
//     ordering of the remaining bits (so more-negative sorts lower).
//
// The unordered form is the raw IEEE-754 big-endian bytes, untransformed.

type float32Codec struct{}

func float32OrderedBits(bits uint32) uint32 {
	if bits&0x80000000 == 0 {
		return bits ^ 0x80000000
	}
	return ^bits
}

func float32UnorderBits(ordered uint32) uint32 {
	if ordered&0x80000000 != 0 {
		return ordered ^ 0x80000000
	}
	return ^ordered
}

func (float32Codec) encodeKey(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		buf.WriteUint32BE(0)
		return nil
	}
	f, ok := v.(float32)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	buf.WriteUint32BE(float32OrderedBits(math.Float32bits(f)))
	return nil
}

func (float32Codec) encodeValue(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		buf.WriteUint32BE(0)
		return nil
	}
	f, ok := v.(float32)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	buf.WriteUint32BE(math.Float32bits(f))
	return nil
}

func (float32Codec) decodeKey(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	raw, err := buf.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	return math.Float32frombits(float32UnorderBits(raw)), nil
}

func (float32Codec) decodeValue(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	raw, err := buf.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	return math.Float32frombits(raw), nil
}

func (float32Codec) skipKey(buf *Buf) error   { return buf.Skip(5) }
func (float32Codec) skipValue(buf *Buf) error { return buf.Skip(5) }

type float64Codec struct{}

func float64OrderedBits(bits uint64) uint64 {
	if bits&0x8000000000000000 == 0 {
		return bits ^ 0x8000000000000000
	}
	return ^bits
}

func float64UnorderBits(ordered uint64) uint64 {
	if ordered&0x8000000000000000 != 0 {
		return ordered ^ 0x8000000000000000
	}
	return ^ordered
}

func (float64Codec) encodeKey(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		buf.WriteUint64BE(0)
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	buf.WriteUint64BE(float64OrderedBits(math.Float64bits(f)))
	return nil
}

func (float64Codec) encodeValue(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		buf.WriteUint64BE(0)
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	buf.WriteUint64BE(math.Float64bits(f))
	return nil
}

func (float64Codec) decodeKey(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	raw, err := buf.ReadUint64BE()
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	return math.Float64frombits(float64UnorderBits(raw)), nil
}

func (float64Codec) decodeValue(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	raw, err := buf.ReadUint64BE()
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	return math.Float64frombits(raw), nil
}

func (float64Codec) skipKey(buf *Buf) error   { return buf.Skip(9) }
func (float64Codec) skipValue(buf *Buf) error { return buf.Skip(9) }
