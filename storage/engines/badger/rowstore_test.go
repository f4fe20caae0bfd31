package badger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/dingocodec/common/types/enum"
	"github.com/turtacn/dingocodec/common/types/record"
	"github.com/turtacn/dingocodec/internal/encoding"
)

const testNamespace = 'r'

func newTestCodec(t *testing.T) *encoding.RecordCodec {
	t.Helper()
	schema := encoding.Vector{
		encoding.NewEntry("id", enum.Int32, 0, true, false),
		encoding.NewEntry("name", enum.Bytes, 1, false, true),
	}
	codec, err := encoding.NewRecordCodec(1, schema, 7, false)
	require.NoError(t, err)
	return codec
}

func TestRowStoreRoundTrip(t *testing.T) {
	dir, err := os.MkdirTemp("", "rowstore-roundtrip-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	codec := newTestCodec(t)
	store, err := Open(dir, false, codec, testNamespace)
	require.NoError(t, err)
	defer store.Close()

	rec := record.Record{int32(1), []byte("alice")}
	require.NoError(t, store.Put(rec))

	key, err := codec.EncodeKey(testNamespace, rec)
	require.NoError(t, err)

	got, err := store.Get(key)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestRowStoreGetMissingKeyReturnsNilWithoutError(t *testing.T) {
	dir, err := os.MkdirTemp("", "rowstore-missing-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	codec := newTestCodec(t)
	store, err := Open(dir, false, codec, testNamespace)
	require.NoError(t, err)
	defer store.Close()

	key, err := codec.EncodeKey(testNamespace, record.Record{int32(999), nil})
	require.NoError(t, err)

	got, err := store.Get(key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRowStoreScanOrdersByKeyRegardlessOfInsertionOrder(t *testing.T) {
	dir, err := os.MkdirTemp("", "rowstore-scan-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	codec := newTestCodec(t)
	store, err := Open(dir, false, codec, testNamespace)
	require.NoError(t, err)
	defer store.Close()

	inserted := []record.Record{
		{int32(42), []byte("charlie")},
		{int32(-7), []byte("alice")},
		{int32(1000), []byte("dave")},
		{int32(0), []byte("bob")},
	}
	for _, rec := range inserted {
		require.NoError(t, store.Put(rec))
	}

	var ids []int32
	err = store.Scan(func(rec record.Record) error {
		ids = append(ids, rec[0].(int32))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int32{-7, 0, 42, 1000}, ids)
}

func TestRowStorePersistsAcrossReopen(t *testing.T) {
	dir, err := os.MkdirTemp("", "rowstore-persistence-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	codec := newTestCodec(t)

	func() {
		store, err := Open(dir, true, codec, testNamespace)
		require.NoError(t, err)
		defer store.Close()
		require.NoError(t, store.Put(record.Record{int32(5), []byte("persisted")}))
	}()

	store, err := Open(dir, true, codec, testNamespace)
	require.NoError(t, err)
	defer store.Close()

	key, err := codec.EncodeKey(testNamespace, record.Record{int32(5), nil})
	require.NoError(t, err)
	got, err := store.Get(key)
	require.NoError(t, err)
	assert.Equal(t, record.Record{int32(5), []byte("persisted")}, got)
}
