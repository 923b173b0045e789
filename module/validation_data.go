package module

import (
	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/storage"
)

// ValidationDataProvider gives access to the validation data the current block
// is being built or executed with. The host always supplies it while a block
// is executing.
type ValidationDataProvider interface {
	// PersistedValidationData returns the validation data of the current block.
	// The reader is the state visible to the current block.
	// No errors are expected during normal operation.
	PersistedValidationData(r storage.Reader) (relay.PersistedValidationData, error)
}
