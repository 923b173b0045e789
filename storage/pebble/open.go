package pebble

import (
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/hashicorp/go-multierror"

	"github.com/onflow/relay-storage-roots/storage"
	"github.com/onflow/relay-storage-roots/storage/operation/pebbleimpl"
)

// DefaultPebbleOptions returns the options used for the relay roots database.
// The database holds a few dozen small values, so the defaults are kept small.
func DefaultPebbleOptions(cache *pebble.Cache) *pebble.Options {
	opts := &pebble.Options{
		Cache:                 cache,
		FormatMajorVersion:    pebble.FormatNewest,
		L0CompactionThreshold: 2,
		L0StopWritesThreshold: 1000,
		// When the maximum number of bytes for a level is exceeded, compaction is requested.
		LBaseMaxBytes: 64 << 20, // 64 MB
		Levels:        make([]pebble.LevelOptions, 7),
		MaxOpenFiles:  1000,
		// Writes are stopped when the sum of the queued memtable sizes exceeds
		// MemTableStopWritesThreshold*MemTableSize.
		MemTableSize:                4 << 20,
		MemTableStopWritesThreshold: 4,
	}

	for i := 0; i < len(opts.Levels); i++ {
		l := &opts.Levels[i]
		l.BlockSize = 32 << 10       // 32 KB
		l.IndexBlockSize = 256 << 10 // 256 KB
		if i > 0 {
			l.TargetFileSize = opts.Levels[i-1].TargetFileSize * 2
		}
		l.EnsureDefaults()
	}

	return opts
}

// OpenPebbleDB opens the pebble database in dir, creating it if needed.
func OpenPebbleDB(dir string) (*pebble.DB, error) {
	cache := pebble.NewCache(1 << 20)
	defer cache.Unref()

	db, err := pebble.Open(dir, DefaultPebbleOptions(cache))
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	return db, nil
}

// OpenDB opens the pebble database in dir and wraps it as a storage.DB.
// If check returns an error, the database is closed again and both errors
// are returned.
func OpenDB(dir string, check func(storage.Reader) error) (storage.DB, error) {
	db, err := OpenPebbleDB(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize pebble db: %w", err)
	}

	sdb := pebbleimpl.ToDB(db)
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
