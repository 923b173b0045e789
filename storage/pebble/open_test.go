package pebble_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/storage"
	"github.com/onflow/relay-storage-roots/storage/operation"
	pebblestorage "github.com/onflow/relay-storage-roots/storage/pebble"
	"github.com/onflow/relay-storage-roots/utils/unittest"
)

func TestOpenDBPersists(t *testing.T) {
	t.Parallel()
	unittest.RunWithTempDir(t, func(dir string) {
		db, err := pebblestorage.OpenDB(dir, nil)
		require.NoError(t, err)

		root := unittest.StorageRootFixture()
		require.NoError(t, db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
			return operation.InsertRelayStorageRoot(rw, 1, root)
		}))
		require.NoError(t, db.Close())

		// reopen the db
		db, err = pebblestorage.OpenDB(dir, nil)
		require.NoError(t, err)
		defer db.Close()

		var actual relay.StorageRoot
		require.NoError(t, operation.RetrieveRelayStorageRoot(db.Reader(), 1, &actual))
		require.Equal(t, root, actual)
	})
}

func TestOpenDBFailedCheckCloses(t *testing.T) {
	t.Parallel()
	unittest.RunWithTempDir(t, func(dir string) {
		errCheck := errors.New("check failed")
		db, err := pebblestorage.OpenDB(dir, func(storage.Reader) error {
			return errCheck
		})
		require.ErrorIs(t, err, errCheck)
		require.Nil(t, db)

		// the db was closed, so it can be opened again
		db, err = pebblestorage.OpenDB(dir, nil)
		require.NoError(t, err)
		require.NoError(t, db.Close())
	})
}
