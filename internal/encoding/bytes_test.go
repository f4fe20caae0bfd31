package encoding

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeOrderedBytesEmptyString(t *testing.T) {
	e := Entry{Index: 0, IsKey: true}
	buf := NewBuf(16, false)
	require.NoError(t, bytesCodec{}.encodeKey([]byte{}, e, buf))
	encoded := buf.IntoBytes()

	want := []byte{0x01, 0, 0, 0, 0, 0, 0, 0, 0, 0xF7}
	assert.Equal(t, want, encoded)
}

func TestEncodeOrderedBytesExactGroupBoundary(t *testing.T) {
	// A string whose length is an exact multiple of 8 must still terminate
	// with a short group, not fold into the preceding full group.
	data := []byte("12345678")
	e := Entry{Index: 0, IsKey: true}
	buf := NewBuf(32, false)
	require.NoError(t, bytesCodec{}.encodeKey(data, e, buf))
	encoded := buf.IntoBytes()

	require.Len(t, encoded, 1+9+9)
	assert.Equal(t, byte(0xFF), encoded[9], "first group marker: full, more follows")
	assert.Equal(t, byte(0xF7), encoded[18], "second group marker: all-padding terminal")
}

func TestOrderedBytesPreservesLexicographicOrder(t *testing.T) {
	values := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		[]byte("abcdefgh"),
		[]byte("abcdefghi"),
		[]byte("b"),
	}
	e := Entry{Index: 0, IsKey: true}
	encoded := make([][]byte, len(values))
	for i, v := range values {
		buf := NewBuf(32, false)
		require.NoError(t, bytesCodec{}.encodeKey(v, e, buf))
		encoded[i] = buf.IntoBytes()
	}
	for i := 1; i < len(encoded); i++ {
		assert.True(t, bytes.Compare(encoded[i-1], encoded[i]) < 0,
			"expected %q to sort before %q", values[i-1], values[i])
	}
}

func TestOrderedBytesRoundTrip(t *testing.T) {
	e := Entry{Index: 0, IsKey: true, AllowNull: true}
	for _, v := range [][]byte{nil, {}, []byte("hi"), []byte("exactly8"), []byte("more than eight bytes long")} {
		buf := NewBuf(64, false)
		require.NoError(t, bytesCodec{}.encodeKey(v, e, buf))
		decoded, err := bytesCodec{}.decodeKey(NewBufFromBytes(buf.IntoBytes(), false))
		require.NoError(t, err)
		if v == nil {
			assert.Nil(t, decoded)
		} else {
			assert.Equal(t, v, decoded)
		}
	}
}

func TestOrderedBytesSkipMatchesDecodedWidth(t *testing.T) {
	e := Entry{Index: 0, IsKey: true}
	buf := NewBuf(64, false)
	require.NoError(t, bytesCodec{}.encodeKey([]byte("a value that spans multiple groups"), e, buf))
	encoded := buf.IntoBytes()

	skipBuf := NewBufFromBytes(encoded, false)
	require.NoError(t, bytesCodec{}.skipKey(skipBuf))
	assert.True(t, skipBuf.IsEnd())
}

func TestOrderedBytesMalformedPaddingRejected(t *testing.T) {
	// A marker whose implied pad_count exceeds the group size is corrupt.
	corrupt := []byte{0x01, 0, 0, 0, 0, 0, 0, 0, 0, 0x00}
	_, err := bytesCodec{}.decodeKey(NewBufFromBytes(corrupt, false))
	assert.Error(t, err)
}

func TestBytesValueFormRoundTrip(t *testing.T) {
	e := Entry{Index: 0, AllowNull: true}
	for _, v := range [][]byte{nil, {}, []byte("value form is length-prefixed, not grouped")} {
		buf := NewBuf(64, false)
		require.NoError(t, bytesCodec{}.encodeValue(v, e, buf))
		decoded, err := bytesCodec{}.decodeValue(NewBufFromBytes(buf.IntoBytes(), false))
		require.NoError(t, err)
		if v == nil {
			assert.Nil(t, decoded)
		} else {
			assert.Equal(t, v, decoded)
		}
	}
}
