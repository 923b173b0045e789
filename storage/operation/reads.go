package operation

import (
	"errors"

	"github.com/vmihailenco/msgpack/v4"

	"github.com/onflow/relay-storage-roots/module/irrecoverable"
	"github.com/onflow/relay-storage-roots/storage"
	"github.com/onflow/relay-storage-roots/utils/merr"
)

// KeyExists returns true if a key exists in the database.
// No errors are expected during normal operation.
func KeyExists(r storage.Reader, key []byte) (exist bool, errToReturn error) {
	_, closer, err := r.Get(key)
	if err != nil {
		// the key does not exist in the database
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		// exception while checking for the key
		return false, irrecoverable.NewExceptionf("could not load data: %w", err)
	}
	defer func() {
		errToReturn = merr.CloseAndMergeError(closer, errToReturn)
	}()

	// the key does exist in the database
	return true, nil
}

// RetrieveByKey will retrieve the binary data under the given key from the database
// and decode it into the given entity. The provided entity needs to be a
// pointer to an initialized entity of the correct type.
// Error returns:
//   - storage.ErrNotFound if the key does not exist in the database
//   - generic error in case of unexpected failure from the database layer, or failure
//     to decode an existing database value
func RetrieveByKey(r storage.Reader, key []byte, entity any) (errToReturn error) {
	val, closer, err := r.Get(key)
	if err != nil {
		return err
	}

	defer func() {
		errToReturn = merr.CloseAndMergeError(closer, errToReturn)
	}()

	err = msgpack.Unmarshal(val, entity)
	if err != nil {
		return irrecoverable.NewExceptionf("could not decode entity: %w", err)
	}
	return nil
}
