package encoding

import "math"

// List columns are value-only: {tag:1}{count:4 BE}{elements...} when
// non-null, each element in its scalar type's unordered (raw, untransformed)
// form and no per-element null tag (a list itself can be null, but its
// elements cannot). A null list is the tag byte alone; there is no count and
// no element data to skip. Lists never appear in key position; each list
// codec embeds listKeyUnsupported for the *Key trio.

// --- list<bool> ---

type listBoolCodec struct{ listKeyUnsupported }

func (listBoolCodec) encodeValue(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		return nil
	}
	elems, ok := v.([]bool)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	buf.WriteUint32BE(uint32(len(elems)))
	for _, b := range elems {
		if b {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}
	}
	return nil
}

func (listBoolCodec) decodeValue(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	count, err := buf.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	out := make([]bool, count)
	for i := range out {
		b, err := buf.ReadByte()
		if err != nil {
			return nil, err
		}
		out[i] = b != 0
	}
	return out, nil
}

func (listBoolCodec) skipValue(buf *Buf) error {
	tag, err := buf.ReadByte()
	if err != nil {
		return err
	}
	if tag == tagNull {
		return nil
	}
	count, err := buf.ReadUint32BE()
	if err != nil {
		return err
	}
	return buf.Skip(int(count))
}

// --- list<int32> ---

type listInt32Codec struct{ listKeyUnsupported }

func (listInt32Codec) encodeValue(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		return nil
	}
	elems, ok := v.([]int32)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	buf.WriteUint32BE(uint32(len(elems)))
	for _, i := range elems {
		buf.WriteUint32BE(uint32(i))
	}
	return nil
}

func (listInt32Codec) decodeValue(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	count, err := buf.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	out := make([]int32, count)
	for i := range out {
		raw, err := buf.ReadUint32BE()
		if err != nil {
			return nil, err
		}
		out[i] = int32(raw)
	}
	return out, nil
}

func (listInt32Codec) skipValue(buf *Buf) error {
	tag, err := buf.ReadByte()
	if err != nil {
		return err
	}
	if tag == tagNull {
		return nil
	}
	count, err := buf.ReadUint32BE()
	if err != nil {
		return err
	}
	return buf.Skip(int(count) * 4)
}

// --- list<int64> ---

type listInt64Codec struct{ listKeyUnsupported }

func (listInt64Codec) encodeValue(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		return nil
	}
	elems, ok := v.([]int64)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	buf.WriteUint32BE(uint32(len(elems)))
	for _, i := range elems {
		buf.WriteUint64BE(uint64(i))
	}
	return nil
}

func (listInt64Codec) decodeValue(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	count, err := buf.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	out := make([]int64, count)
	for i := range out {
		raw, err := buf.ReadUint64BE()
		if err != nil {
			return nil, err
		}
		out[i] = int64(raw)
	}
	return out, nil
}

func (listInt64Codec) skipValue(buf *Buf) error {
	tag, err := buf.ReadByte()
	if err != nil {
		return err
	}
	if tag == tagNull {
		return nil
	}
	count, err := buf.ReadUint32BE()
	if err != nil {
		return err
	}
	return buf.Skip(int(count) * 8)
}

// --- list<float32> ---

type listFloat32Codec struct{ listKeyUnsupported }

func (listFloat32Codec) encodeValue(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		return nil
	}
	elems, ok := v.([]float32)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	buf.WriteUint32BE(uint32(len(elems)))
	for _, f := range elems {
		buf.WriteUint32BE(math.Float32bits(f))
	}
	return nil
}

func (listFloat32Codec) decodeValue(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	count, err := buf.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	out := make([]float32, count)
	for i := range out {
		raw, err := buf.ReadUint32BE()
		if err != nil {
			return nil, err
		}
		out[i] = math.Float32frombits(raw)
	}
	return out, nil
}

func (listFloat32Codec) skipValue(buf *Buf) error {
	tag, err := buf.ReadByte()
	if err != nil {
		return err
	}
	if tag == tagNull {
		return nil
	}
	count, err := buf.ReadUint32BE()
	if err != nil {
		return err
	}
	return buf.Skip(int(count) * 4)
}

// --- list<float64> ---

type listFloat64Codec struct{ listKeyUnsupported }

func (listFloat64Codec) encodeValue(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		return nil
	}
	elems, ok := v.([]float64)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	buf.WriteUint32BE(uint32(len(elems)))
	for _, f := range elems {
		buf.WriteUint64BE(math.Float64bits(f))
	}
	return nil
}

func (listFloat64Codec) decodeValue(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	count, err := buf.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	out := make([]float64, count)
	for i := range out {
		raw, err := buf.ReadUint64BE()
		if err != nil {
			return nil, err
		}
		out[i] = math.Float64frombits(raw)
	}
	return out, nil
}

func (listFloat64Codec) skipValue(buf *Buf) error {
	tag, err := buf.ReadByte()
	if err != nil {
		return err
	}
	if tag == tagNull {
		return nil
	}
	count, err := buf.ReadUint32BE()
	if err != nil {
		return err
	}
	return buf.Skip(int(count) * 8)
}

// --- list<bytes> ---
//
// Each element is itself length-prefixed, since bytes has no fixed width:
// {count:4 BE}{element length:4 BE}{element bytes}...

type listBytesCodec struct{ listKeyUnsupported }

func (listBytesCodec) encodeValue(v interface{}, e Entry, buf *Buf) error {
	if v == nil {
		if !e.AllowNull {
			return newNullNotAllowedErr(e)
		}
		buf.WriteByte(tagNull)
		return nil
	}
	elems, ok := v.([][]byte)
	if !ok {
		return newTypeMismatchErr(e, v)
	}
	buf.WriteByte(tagNotNull)
	buf.WriteUint32BE(uint32(len(elems)))
	for _, data := range elems {
		buf.WriteUint32BE(uint32(len(data)))
		buf.WriteBytes(data)
	}
	return nil
}

func (listBytesCodec) decodeValue(buf *Buf) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	if tag == tagNull {
		return nil, nil
	}
	count, err := buf.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	out := make([][]byte, count)
	for i := range out {
		n, err := buf.ReadUint32BE()
		if err != nil {
			return nil, err
		}
		data, err := buf.ReadBytes(int(n))
		if err != nil {
			return nil, err
		}
		out[i] = data
	}
	return out, nil
}

func (listBytesCodec) skipValue(buf *Buf) error {
	tag, err := buf.ReadByte()
	if err != nil {
		return err
	}
	if tag == tagNull {
		return nil
	}
	count, err := buf.ReadUint32BE()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		n, err := buf.ReadUint32BE()
		if err != nil {
			return err
		}
		if err := buf.Skip(int(n)); err != nil {
			return err
		}
	}
	return nil
}
