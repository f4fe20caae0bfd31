package encoding

import (
	"github.com/turtacn/dingocodec/common/errors"
	"github.com/turtacn/dingocodec/common/types/enum"
)

const (
	tagNull    byte = 0x00
	tagNotNull byte = 0x01
)

// columnCodec is the operation set every column type implements: write a
// value in ordered (key) or unordered (value) form, read it back, or skip it
// without materializing. List variants only implement the *Value trio; the
// *Key trio signals UnsupportedKeyType, since lists have no ordered form and
// the schema validator must keep them out of key position.
type columnCodec interface {
	encodeKey(v interface{}, e Entry, buf *Buf) error
	encodeValue(v interface{}, e Entry, buf *Buf) error
	decodeKey(buf *Buf) (interface{}, error)
	decodeValue(buf *Buf) (interface{}, error)
	skipKey(buf *Buf) error
	skipValue(buf *Buf) error
}

// codecFor dispatches on the closed ColumnType set. This is a compile-time
// switch rather than a mutable global table of function pointers: the
// compiler can inline each arm on the hot encode/decode path.
func codecFor(t enum.ColumnType) columnCodec {
	switch t {
	case enum.Bool:
		return boolCodec{}
	case enum.Int32:
		return int32Codec{}
	case enum.Int64:
		return int64Codec{}
	case enum.Float32:
		return float32Codec{}
	case enum.Float64:
		return float64Codec{}
	case enum.Bytes:
		return bytesCodec{}
	case enum.ListBool:
		return listBoolCodec{}
	case enum.ListInt32:
		return listInt32Codec{}
	case enum.ListInt64:
		return listInt64Codec{}
	case enum.ListFloat32:
		return listFloat32Codec{}
	case enum.ListFloat64:
		return listFloat64Codec{}
	case enum.ListBytes:
		return listBytesCodec{}
	default:
		return nil
	}
}

func newNullNotAllowedErr(e Entry) error {
	return errors.ErrNullNotAllowed.New("column", e.Name(), "index", e.Index)
}

func newTypeMismatchErr(e Entry, v interface{}) error {
	return errors.ErrTypeMismatch.New("column", e.Name(), "want", e.Type.String(), "got", v)
}

func newUnsupportedKeyTypeErr(e Entry) error {
	return errors.ErrUnsupportedKeyType.New("column", e.Name(), "type", e.Type.String())
}

// listKeyUnsupported implements the *Key trio shared by every list codec:
// lists cannot be ordered, so any key operation is a programmer error.
type listKeyUnsupported struct{}

func (listKeyUnsupported) encodeKey(interface{}, Entry, *Buf) error {
	return errors.ErrUnsupportedKeyType.New("list columns cannot be keys")
}

func (listKeyUnsupported) decodeKey(*Buf) (interface{}, error) {
	return nil, errors.ErrUnsupportedKeyType.New("list columns cannot be keys")
}

func (listKeyUnsupported) skipKey(*Buf) error {
	return errors.ErrUnsupportedKeyType.New("list columns cannot be keys")
}
