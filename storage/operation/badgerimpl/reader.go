package badgerimpl

import (
	"errors"
	"io"

	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/relay-storage-roots/module/irrecoverable"
	"github.com/onflow/relay-storage-roots/storage"
)

type dbReader struct {
	db *badger.DB
}

var _ storage.Reader = (*dbReader)(nil)

// Get gets the value for the given key. It returns storage.ErrNotFound if the DB
// does not contain the key.
// other errors are exceptions
//
// The returned value is a copy, the closer is a no-op but must still be closed
// by the caller when err == nil.
func (b dbReader) Get(key []byte) ([]byte, io.Closer, error) {
	tx := b.db.NewTransaction(false)
	defer tx.Discard()

	return get(tx, key)
}

func get(tx *badger.Txn, key []byte) ([]byte, io.Closer, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil, storage.ErrNotFound
		}
		return nil, nil, irrecoverable.NewExceptionf("could not load data: %w", err)
	}

	value, err := item.ValueCopy(nil)
	if err != nil {
		return nil, nil, irrecoverable.NewExceptionf("could not load value: %w", err)
	}

	return value, noopCloser{}, nil
}

// ToReader is a helper function to convert a *badger.DB to a Reader
func ToReader(db *badger.DB) storage.Reader {
	return dbReader{db: db}
}

type noopCloser struct{}

var _ io.Closer = (*noopCloser)(nil)

func (noopCloser) Close() error { return nil }
