package operation

import (
	"errors"
	"fmt"

	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/storage"
)

// InsertRelayStorageRoot stores the storage root reported for the relay block number.
// A stored root is never overwritten. The check sees the writes of the batch.
// Expected errors during normal operations:
//   - storage.ErrAlreadyExists if a root is already stored for the number
func InsertRelayStorageRoot(rw storage.ReaderBatchWriter, number relay.BlockNumber, root relay.StorageRoot) error {
	key := MakePrefix(codeRelayStorageRoot, number)
	exists, err := KeyExists(rw.Reader(), key)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("relay storage root for %d: %w", number, storage.ErrAlreadyExists)
	}
	return UpsertByKey(rw.Writer(), key, root)
}

// RetrieveRelayStorageRoot retrieves the storage root for the relay block number.
// Expected errors during normal operations:
//   - storage.ErrNotFound if no root is stored for the number
func RetrieveRelayStorageRoot(r storage.Reader, number relay.BlockNumber, root *relay.StorageRoot) error {
	return RetrieveByKey(r, MakePrefix(codeRelayStorageRoot, number), root)
}

// RelayStorageRootExists returns whether a root is stored for the relay block number.
// No errors are expected during normal operation.
func RelayStorageRootExists(r storage.Reader, number relay.BlockNumber) (bool, error) {
	return KeyExists(r, MakePrefix(codeRelayStorageRoot, number))
}

// RemoveRelayStorageRoot removes the root for the relay block number. No-op if absent.
// No errors are expected during normal operation.
func RemoveRelayStorageRoot(w storage.Writer, number relay.BlockNumber) error {
	return RemoveByKey(w, MakePrefix(codeRelayStorageRoot, number))
}

// UpsertRelayStorageRootKeys stores the relay block numbers present in the ledger,
// in the order they arrived.
// No errors are expected during normal operation.
func UpsertRelayStorageRootKeys(w storage.Writer, keys []relay.BlockNumber) error {
	return UpsertByKey(w, MakePrefix(codeRelayStorageRootKeys), keys)
}

// RetrieveRelayStorageRootKeys retrieves the relay block numbers present in the ledger,
// in the order they arrived. An empty ledger has no stored key list, in which case
// keys is set to an empty slice.
// No errors are expected during normal operation.
func RetrieveRelayStorageRootKeys(r storage.Reader, keys *[]relay.BlockNumber) error {
	err := RetrieveByKey(r, MakePrefix(codeRelayStorageRootKeys), keys)
	if errors.Is(err, storage.ErrNotFound) {
		*keys = []relay.BlockNumber{}
		return nil
	}
	return err
}
