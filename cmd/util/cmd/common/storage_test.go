package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/storage"
	"github.com/onflow/relay-storage-roots/storage/operation"
	"github.com/onflow/relay-storage-roots/utils/unittest"
)

func TestInitStorage(t *testing.T) {
	for _, backend := range []string{BackendPebble, BackendBadger} {
		t.Run(backend, func(t *testing.T) {
			dir := unittest.TempDir(t)

			db, err := InitStorage(backend, dir)
			require.NoError(t, err)
			require.NoError(t, db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
				return operation.UpsertRelayStorageRootKeys(rw.Writer(), []relay.BlockNumber{1, 2})
			}))
			require.NoError(t, db.Close())

			size, err := DirSize(dir)
			require.NoError(t, err)
			assert.Positive(t, size)

			// reopening decodes the stored key list
			db, err = InitStorage(backend, dir)
			require.NoError(t, err)
			require.NoError(t, db.Close())
		})
	}

	_, err := InitStorage("rocksdb", unittest.TempDir(t))
	require.Error(t, err)
}

func TestDirSizeMissing(t *testing.T) {
	_, err := DirSize(unittest.TempDir(t) + "/missing")
	require.Error(t, err)
}
