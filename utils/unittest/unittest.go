package unittest

import (
	"os"
	"testing"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/require"

	"github.com/onflow/relay-storage-roots/storage"
	"github.com/onflow/relay-storage-roots/storage/operation/badgerimpl"
	"github.com/onflow/relay-storage-roots/storage/operation/pebbleimpl"
	pebblestorage "github.com/onflow/relay-storage-roots/storage/pebble"
)

// RequireReturnsBefore requires that the given function returns before the
// duration expires.
func RequireReturnsBefore(t testing.TB, f func(), duration time.Duration) {
	done := make(chan struct{})

	go func() {
		f()
		close(done)
	}()

	select {
	case <-time.After(duration):
		require.Fail(t, "function did not return in time")
	case <-done:
		return
	}
}

func TempDir(t testing.TB) string {
	dir, err := os.MkdirTemp("", "relay-roots-testing-temp-")
	require.NoError(t, err)
	return dir
}

func RunWithTempDir(t testing.TB, f func(string)) {
	dbDir := TempDir(t)
	defer os.RemoveAll(dbDir)
	f(dbDir)
}

func BadgerDB(t testing.TB, dir string) *badger.DB {
	opts := badger.
		DefaultOptions(dir).
		WithKeepL0InMemory(true).
		WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	return db
}

func RunWithBadgerDB(t testing.TB, f func(*badger.DB)) {
	RunWithTempDir(t, func(dir string) {
		db := BadgerDB(t, dir)
		defer db.Close()
		f(db)
	})
}

// InMemoryBadgerDB opens a badger database that never touches the disk.
// Property tests open one per run, so they avoid the temp dir round trip.
func InMemoryBadgerDB(t require.TestingT) storage.DB {
	opts := badger.
		DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	return badgerimpl.ToDB(db)
}

func PebbleDB(t testing.TB, dir string) *pebble.DB {
	db, err := pebblestorage.OpenPebbleDB(dir)
	require.NoError(t, err)
	return db
}

func RunWithPebbleDB(t testing.TB, f func(*pebble.DB)) {
	RunWithTempDir(t, func(dir string) {
		db := PebbleDB(t, dir)
		defer db.Close()
		f(db)
	})
}

// RunWithStorages runs f once against each supported storage backend.
func RunWithStorages(t *testing.T, f func(*testing.T, storage.DB)) {
	t.Run("BadgerStorage", func(t *testing.T) {
		RunWithBadgerDB(t, func(db *badger.DB) {
			f(t, badgerimpl.ToDB(db))
		})
	})

	t.Run("PebbleStorage", func(t *testing.T) {
		RunWithPebbleDB(t, func(db *pebble.DB) {
			f(t, pebbleimpl.ToDB(db))
		})
	})
}
