package pebbleimpl

import (
	"errors"
	"io"

	"github.com/cockroachdb/pebble"

	"github.com/onflow/relay-storage-roots/module/irrecoverable"
	"github.com/onflow/relay-storage-roots/storage"
)

type getter interface {
	Get(key []byte) ([]byte, io.Closer, error)
}

type dbReader struct {
	db getter
}

var _ storage.Reader = (*dbReader)(nil)

// Get gets the value for the given key. It returns storage.ErrNotFound if the DB
// does not contain the key.
// other errors are exceptions
//
// The caller should not modify the contents of the returned slice, but it is
// safe to modify the contents of the argument after Get returns. The
// returned slice will remain valid until the returned Closer is closed.
// when err == nil, the caller MUST call closer.Close() or a memory leak will occur.
func (r dbReader) Get(key []byte) ([]byte, io.Closer, error) {
	value, closer, err := r.db.Get(key)

	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, nil, storage.ErrNotFound
		}

		// exception while checking for the key
		return nil, nil, irrecoverable.NewExceptionf("could not load data: %w", err)
	}

	return value, closer, nil
}

// ToReader is a helper function to convert a *pebble.DB to a Reader
func ToReader(db *pebble.DB) storage.Reader {
	return dbReader{db: db}
}
