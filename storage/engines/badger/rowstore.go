// Package badger wires the record codec to a real embedded key-value store.
// It is a thin repository layer: the heavy lifting (ordering, framing,
// null handling) lives entirely in internal/encoding, and RowStore just
// shuttles bytes in and out of a *badger.DB, configured through badger's
// options builder (badger.DefaultOptions(...).With...).
package badger

import (
	"fmt"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/turtacn/dingocodec/common/log"
	"github.com/turtacn/dingocodec/common/types/record"
	"github.com/turtacn/dingocodec/internal/encoding"

	"go.uber.org/zap"
)

// RowStore is a repository over a single badger database that reads and
// writes record.Record values through a RecordCodec. It owns no locking of
// its own: *badger.DB already serializes its own writes and hands out
// transaction-scoped iterators, so RowStore simply defers to badger's own
// transaction semantics.
type RowStore struct {
	db        *badger.DB
	codec     *encoding.RecordCodec
	namespace byte
}

// Open opens (or creates) a badger database at dataPath and returns a
// RowStore bound to it. syncWrites trades write throughput for durability,
// matching badger's own WithSyncWrites option.
func Open(dataPath string, syncWrites bool, codec *encoding.RecordCodec, namespace byte) (*RowStore, error) {
	opts := badger.DefaultOptions(dataPath).WithSyncWrites(syncWrites)
	db, err := badger.Open(opts)
	if err != nil {
		log.GetLogger().Error("failed to open badger database", zap.String("path", dataPath), zap.Error(err))
		return nil, fmt.Errorf("open badger database at %s: %w", dataPath, err)
	}
	log.GetLogger().Info("badger database opened", zap.String("path", dataPath))
	return &RowStore{db: db, codec: codec, namespace: namespace}, nil
}

// Close closes the underlying badger database.
func (s *RowStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Put encodes rec and writes its key/value pair in a single badger
// transaction.
func (s *RowStore) Put(rec record.Record) error {
	key, value, err := s.codec.Encode(s.namespace, rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// Get looks up the record matching key (a full key previously produced by
// EncodeKey, or equivalently the key half of Put's input), decoding it back
// into a record.Record. It returns (nil, nil) if no such key exists.
func (s *RowStore) Get(key []byte) (record.Record, error) {
	var rec record.Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			decoded, decodeErr := s.codec.Decode(key, value)
			if decodeErr != nil {
				log.LogCodecError(log.GetLogger(), "failed to decode row", decodeErr, zap.Binary("key", key))
				return decodeErr
			}
			rec = decoded
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Scan iterates every record belonging to this RowStore's configured
// common_id, in ascending key order, seeding the iterator's bounds from
// EncodeMinKeyPrefix/EncodeMaxKeyPrefix. This is the concrete proof that the
// codec's memory-comparable key property holds against a real embedded
// store: rows written in arbitrary order come back out in key order without
// any in-memory sort.
func (s *RowStore) Scan(visit func(record.Record) error) error {
	lower := s.codec.EncodeMinKeyPrefix(s.namespace)
	upper, err := s.codec.EncodeMaxKeyPrefix(s.namespace)
	if err != nil {
		return err
	}

	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(lower); it.ValidForPrefix(s.namespacePrefix()) && keyLess(it.Item().KeyCopy(nil), upper); it.Next() {
			item := it.Item()
			key := item.KeyCopy(nil)
			err := item.Value(func(value []byte) error {
				rec, decodeErr := s.codec.Decode(key, value)
				if decodeErr != nil {
					log.LogCodecError(log.GetLogger(), "failed to decode row during scan", decodeErr, zap.Binary("key", key))
					return decodeErr
				}
				return visit(rec)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// namespacePrefix bounds ValidForPrefix to this RowStore's namespace byte
// alone, since badger's prefix check is a plain byte-slice comparison and
// the common_id bound is enforced separately by keyLess against upper.
func (s *RowStore) namespacePrefix() []byte {
	return []byte{s.namespace}
}

// keyLess reports whether key sorts strictly before upper under the same
// unsigned byte-lexicographic order the codec relies on throughout,
// matching badger's own key ordering.
func keyLess(key, upper []byte) bool {
	for i := 0; i < len(key) && i < len(upper); i++ {
		if key[i] != upper[i] {
			return key[i] < upper[i]
		}
	}
	return len(key) < len(upper)
}
