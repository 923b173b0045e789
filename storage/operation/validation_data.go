package operation

import (
	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/storage"
)

// UpsertPersistedValidationData stores the validation data the next block is built with.
// No errors are expected during normal operation.
func UpsertPersistedValidationData(w storage.Writer, data *relay.PersistedValidationData) error {
	return UpsertByKey(w, MakePrefix(codePersistedValidationData), data)
}

// RetrievePersistedValidationData retrieves the stored validation data.
// Expected errors during normal operations:
//   - storage.ErrNotFound if no validation data was stored
func RetrievePersistedValidationData(r storage.Reader, data *relay.PersistedValidationData) error {
	return RetrieveByKey(r, MakePrefix(codePersistedValidationData), data)
}
