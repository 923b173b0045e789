package pebbleimpl

import (
	"github.com/cockroachdb/pebble"

	"github.com/onflow/relay-storage-roots/storage"
)

type dbStore struct {
	db *pebble.DB
}

var _ storage.DB = (*dbStore)(nil)

// ToDB wraps a pebble database. Closing the returned DB closes the pebble database.
func ToDB(db *pebble.DB) storage.DB {
	return &dbStore{db: db}
}

func (b *dbStore) Reader() storage.Reader {
	return dbReader{db: b.db}
}

func (b *dbStore) WithReaderBatchWriter(fn func(storage.ReaderBatchWriter) error) error {
	return WithReaderBatchWriter(b.db, fn)
}

func (b *dbStore) Close() error {
	return b.db.Close()
}
