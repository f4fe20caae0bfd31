package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListInt32ValueEncodingScenario(t *testing.T) {
	e := Entry{Index: 0, AllowNull: true}
	buf := NewBuf(32, false)
	require.NoError(t, listInt32Codec{}.encodeValue([]int32{1, 2, 3}, e, buf))
	encoded := buf.IntoBytes()

	want := []byte{
		0x01,
		0x00, 0x00, 0x00, 0x03,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x03,
	}
	assert.Equal(t, want, encoded)
}

func TestListRoundTripAllVariants(t *testing.T) {
	e := Entry{Index: 0, AllowNull: true}

	t.Run("bool", func(t *testing.T) {
		buf := NewBuf(32, false)
		require.NoError(t, listBoolCodec{}.encodeValue([]bool{true, false, true}, e, buf))
		decoded, err := listBoolCodec{}.decodeValue(NewBufFromBytes(buf.IntoBytes(), false))
		require.NoError(t, err)
		assert.Equal(t, []bool{true, false, true}, decoded)
	})

	t.Run("int64", func(t *testing.T) {
		buf := NewBuf(32, false)
		require.NoError(t, listInt64Codec{}.encodeValue([]int64{-1, 0, 1}, e, buf))
		decoded, err := listInt64Codec{}.decodeValue(NewBufFromBytes(buf.IntoBytes(), false))
		require.NoError(t, err)
		assert.Equal(t, []int64{-1, 0, 1}, decoded)
	})

	t.Run("float32", func(t *testing.T) {
		buf := NewBuf(32, false)
		require.NoError(t, listFloat32Codec{}.encodeValue([]float32{1.5, -2.5}, e, buf))
		decoded, err := listFloat32Codec{}.decodeValue(NewBufFromBytes(buf.IntoBytes(), false))
		require.NoError(t, err)
		assert.Equal(t, []float32{1.5, -2.5}, decoded)
	})

	t.Run("float64", func(t *testing.T) {
		buf := NewBuf(32, false)
		require.NoError(t, listFloat64Codec{}.encodeValue([]float64{1.5, -2.5}, e, buf))
		decoded, err := listFloat64Codec{}.decodeValue(NewBufFromBytes(buf.IntoBytes(), false))
		require.NoError(t, err)
		assert.Equal(t, []float64{1.5, -2.5}, decoded)
	})

	t.Run("bytes", func(t *testing.T) {
		buf := NewBuf(32, false)
		elems := [][]byte{[]byte("a"), []byte("bb"), []byte("")}
		require.NoError(t, listBytesCodec{}.encodeValue(elems, e, buf))
		decoded, err := listBytesCodec{}.decodeValue(NewBufFromBytes(buf.IntoBytes(), false))
		require.NoError(t, err)
		assert.Equal(t, elems, decoded)
	})
}

func TestListNullRoundTrip(t *testing.T) {
	e := Entry{Index: 0, AllowNull: true}
	buf := NewBuf(8, false)
	require.NoError(t, listInt32Codec{}.encodeValue(nil, e, buf))
	encoded := buf.IntoBytes()
	require.Len(t, encoded, 1, "a null list is the tag byte alone, no count")
	assert.Equal(t, tagNull, encoded[0])

	decoded, err := listInt32Codec{}.decodeValue(NewBufFromBytes(encoded, false))
	require.NoError(t, err)
	assert.Nil(t, decoded)

	skipBuf := NewBufFromBytes(encoded, false)
	require.NoError(t, listInt32Codec{}.skipValue(skipBuf))
	assert.True(t, skipBuf.IsEnd())
}

func TestListNullValueEncodingAllVariants(t *testing.T) {
	e := Entry{Index: 0, AllowNull: true}

	cases := []struct {
		name  string
		codec columnCodec
	}{
		{"bool", listBoolCodec{}},
		{"int32", listInt32Codec{}},
		{"int64", listInt64Codec{}},
		{"float32", listFloat32Codec{}},
		{"float64", listFloat64Codec{}},
		{"bytes", listBytesCodec{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := NewBuf(8, false)
			require.NoError(t, c.codec.encodeValue(nil, e, buf))
			encoded := buf.IntoBytes()
			require.Len(t, encoded, 1)
			assert.Equal(t, tagNull, encoded[0])

			decoded, err := c.codec.decodeValue(NewBufFromBytes(encoded, false))
			require.NoError(t, err)
			assert.Nil(t, decoded)

			skipBuf := NewBufFromBytes(encoded, false)
			require.NoError(t, c.codec.skipValue(skipBuf))
			assert.True(t, skipBuf.IsEnd())
		})
	}
}

func TestListCannotBeKey(t *testing.T) {
	e := Entry{Index: 0, IsKey: true}
	buf := NewBuf(8, false)
	err := listInt32Codec{}.encodeKey([]int32{1}, e, buf)
	assert.Error(t, err)

	err = listInt32Codec{}.skipKey(NewBufFromBytes(nil, false))
	assert.Error(t, err)

	_, err = listInt32Codec{}.decodeKey(NewBufFromBytes(nil, false))
	assert.Error(t, err)
}

func TestListSkipValueMatchesEncodedWidth(t *testing.T) {
	e := Entry{Index: 0, AllowNull: true}
	buf := NewBuf(32, false)
	require.NoError(t, listBytesCodec{}.encodeValue([][]byte{[]byte("x"), []byte("yz")}, e, buf))
	encoded := buf.IntoBytes()

	skipBuf := NewBufFromBytes(encoded, false)
	require.NoError(t, listBytesCodec{}.skipValue(skipBuf))
	assert.True(t, skipBuf.IsEnd())
}
