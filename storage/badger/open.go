package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/hashicorp/go-multierror"

	"github.com/onflow/relay-storage-roots/storage"
	"github.com/onflow/relay-storage-roots/storage/operation/badgerimpl"
)

// DefaultBadgerOptions returns the options used for the relay roots database.
func DefaultBadgerOptions(dir string) badger.Options {
	return badger.DefaultOptions(dir).
		WithKeepL0InMemory(true).
		WithLogger(nil)
}

// OpenBadgerDB opens the badger database in dir, creating it if needed.
func OpenBadgerDB(dir string) (*badger.DB, error) {
	db, err := badger.Open(DefaultBadgerOptions(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return db, nil
}

// OpenDB opens the badger database in dir and wraps it as a storage.DB.
// If check returns an error, the database is closed again and both errors
// are returned.
func OpenDB(dir string, check func(storage.Reader) error) (storage.DB, error) {
	db, err := OpenBadgerDB(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize badger db: %w", err)
	}

	sdb := badgerimpl.ToDB(db)
	if check == nil {
		return sdb, nil
	}

	err = check(sdb.Reader())
	if err != nil {
		dbErr := sdb.Close()
		if dbErr != nil {
			err = multierror.Append(err, fmt.Errorf("failed to close db: %w", dbErr))
		}
		return nil, fmt.Errorf("database check failed: %w", err)
	}

	return sdb, nil
}
