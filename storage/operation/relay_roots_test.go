package operation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/storage"
	"github.com/onflow/relay-storage-roots/storage/operation"
	"github.com/onflow/relay-storage-roots/utils/unittest"
)

func TestRelayStorageRootInsertRetrieve(t *testing.T) {
	unittest.RunWithStorages(t, func(t *testing.T, db storage.DB) {
		number := relay.BlockNumber(10)
		root := unittest.StorageRootFixture()

		var actual relay.StorageRoot
		err := operation.RetrieveRelayStorageRoot(db.Reader(), number, &actual)
		require.ErrorIs(t, err, storage.ErrNotFound)

		require.NoError(t, db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
			return operation.InsertRelayStorageRoot(rw, number, root)
		}))

		require.NoError(t, operation.RetrieveRelayStorageRoot(db.Reader(), number, &actual))
		require.Equal(t, root, actual)

		// a stored root is never overwritten
		err = db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
			return operation.InsertRelayStorageRoot(rw, number, unittest.StorageRootFixture())
		})
		require.ErrorIs(t, err, storage.ErrAlreadyExists)
		require.NoError(t, operation.RetrieveRelayStorageRoot(db.Reader(), number, &actual))
		require.Equal(t, root, actual)

		exists, err := operation.RelayStorageRootExists(db.Reader(), number)
		require.NoError(t, err)
		require.True(t, exists)

		require.NoError(t, db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
			return operation.RemoveRelayStorageRoot(rw.Writer(), number)
		}))

		exists, err = operation.RelayStorageRootExists(db.Reader(), number)
		require.NoError(t, err)
		require.False(t, exists)
	})
}

func TestInsertRelayStorageRootSeesBatch(t *testing.T) {
	unittest.RunWithStorages(t, func(t *testing.T, db storage.DB) {
		err := db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
			require.NoError(t, operation.InsertRelayStorageRoot(rw, 9, unittest.StorageRootFixture()))
			return operation.InsertRelayStorageRoot(rw, 9, unittest.StorageRootFixture())
		})
		require.ErrorIs(t, err, storage.ErrAlreadyExists)

		// the failed batch left nothing behind
		exists, err := operation.RelayStorageRootExists(db.Reader(), 9)
		require.NoError(t, err)
		require.False(t, exists)
	})
}

func TestRelayStorageRootKeys(t *testing.T) {
	unittest.RunWithStorages(t, func(t *testing.T, db storage.DB) {
		var keys []relay.BlockNumber
		require.NoError(t, operation.RetrieveRelayStorageRootKeys(db.Reader(), &keys))
		require.Empty(t, keys)

		expected := []relay.BlockNumber{7, 3, 12}
		require.NoError(t, db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
			return operation.UpsertRelayStorageRootKeys(rw.Writer(), expected)
		}))

		require.NoError(t, operation.RetrieveRelayStorageRootKeys(db.Reader(), &keys))
		require.Equal(t, expected, keys)
	})
}

func TestInherentIncludedFlag(t *testing.T) {
	unittest.RunWithStorages(t, func(t *testing.T, db storage.DB) {
		set, err := operation.InherentIncludedExists(db.Reader())
		require.NoError(t, err)
		require.False(t, set)

		require.NoError(t, db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
			return operation.SetInherentIncluded(rw.Writer())
		}))
		set, err = operation.InherentIncludedExists(db.Reader())
		require.NoError(t, err)
		require.True(t, set)

		require.NoError(t, db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
			return operation.RemoveInherentIncluded(rw.Writer())
		}))
		set, err = operation.InherentIncludedExists(db.Reader())
		require.NoError(t, err)
		require.False(t, set)
	})
}

func TestPersistedValidationData(t *testing.T) {
	unittest.RunWithStorages(t, func(t *testing.T, db storage.DB) {
		var actual relay.PersistedValidationData
		err := operation.RetrievePersistedValidationData(db.Reader(), &actual)
		require.ErrorIs(t, err, storage.ErrNotFound)

		data := unittest.ValidationDataFixture(42)
		require.NoError(t, db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
			return operation.UpsertPersistedValidationData(rw.Writer(), &data)
		}))

		require.NoError(t, operation.RetrievePersistedValidationData(db.Reader(), &actual))
		require.Equal(t, data, actual)
	})
}
