package operation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onflow/relay-storage-roots/storage"
	"github.com/onflow/relay-storage-roots/storage/operation"
	"github.com/onflow/relay-storage-roots/utils/unittest"
)

// Reads through the batch observe the pending writes, the committed state does
// not until the batch commits.
func TestBatchReadsOwnWrites(t *testing.T) {
	unittest.RunWithStorages(t, func(t *testing.T, db storage.DB) {
		e := Entity{ID: 1}
		removed := Entity{ID: 2}

		require.NoError(t, db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
			return operation.UpsertByKey(rw.Writer(), removed.Key(), removed)
		}))

		require.NoError(t, db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
			require.NoError(t, operation.UpsertByKey(rw.Writer(), e.Key(), e))
			require.NoError(t, operation.RemoveByKey(rw.Writer(), removed.Key()))

			var item Entity
			require.NoError(t, operation.RetrieveByKey(rw.Reader(), e.Key(), &item))
			require.Equal(t, e, item)

			exists, err := operation.KeyExists(rw.Reader(), removed.Key())
			require.NoError(t, err)
			require.False(t, exists)

			// committed state is unchanged
			err = operation.RetrieveByKey(db.Reader(), e.Key(), &item)
			require.ErrorIs(t, err, storage.ErrNotFound)
			exists, err = operation.KeyExists(db.Reader(), removed.Key())
			require.NoError(t, err)
			require.True(t, exists)
			return nil
		}))

		var item Entity
		require.NoError(t, operation.RetrieveByKey(db.Reader(), e.Key(), &item))
		require.Equal(t, e, item)
	})
}

func TestBatchDiscardedOnError(t *testing.T) {
	unittest.RunWithStorages(t, func(t *testing.T, db storage.DB) {
		e := Entity{ID: 3}
		errAbort := errors.New("abort")

		var notified error
		err := db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
			rw.AddCallback(func(err error) {
				notified = err
			})
			require.NoError(t, operation.UpsertByKey(rw.Writer(), e.Key(), e))
			return errAbort
		})
		require.ErrorIs(t, err, errAbort)
		require.ErrorIs(t, notified, errAbort)

		exists, err := operation.KeyExists(db.Reader(), e.Key())
		require.NoError(t, err)
		require.False(t, exists)
	})
}

func TestCallbacksAfterCommit(t *testing.T) {
	unittest.RunWithStorages(t, func(t *testing.T, db storage.DB) {
		e := Entity{ID: 4}

		var order []int
		require.NoError(t, db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
			rw.AddCallback(func(err error) {
				require.NoError(t, err)
				// the write is visible once callbacks run
				exists, err := operation.KeyExists(db.Reader(), e.Key())
				require.NoError(t, err)
				require.True(t, exists)
				order = append(order, 1)
			})
			rw.AddCallback(func(err error) {
				order = append(order, 2)
			})
			return operation.UpsertByKey(rw.Writer(), e.Key(), e)
		}))
		require.Equal(t, []int{1, 2}, order)
	})
}

func TestOnlyWriter(t *testing.T) {
	unittest.RunWithStorages(t, func(t *testing.T, db storage.DB) {
		e := Entity{ID: 5}
		require.NoError(t, db.WithReaderBatchWriter(storage.OnlyWriter(func(w storage.Writer) error {
			return operation.UpsertByKey(w, e.Key(), e)
		})))

		var item Entity
		require.NoError(t, operation.RetrieveByKey(db.Reader(), e.Key(), &item))
		require.Equal(t, e, item)
	})
}
