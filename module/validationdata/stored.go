package validationdata

import (
	"errors"
	"fmt"

	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/module"
	"github.com/onflow/relay-storage-roots/module/irrecoverable"
	"github.com/onflow/relay-storage-roots/storage"
	"github.com/onflow/relay-storage-roots/storage/operation"
)

// StoredProvider reads the validation data from the database, where the host
// (or a benchmark) places it ahead of dispatching the update.
type StoredProvider struct{}

var _ module.ValidationDataProvider = (*StoredProvider)(nil)

func NewStoredProvider() *StoredProvider {
	return &StoredProvider{}
}

// PersistedValidationData returns the stored validation data. The host always
// supplies it, so a missing value is an exception.
func (p *StoredProvider) PersistedValidationData(r storage.Reader) (relay.PersistedValidationData, error) {
	var data relay.PersistedValidationData
	err := operation.RetrievePersistedValidationData(r, &data)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return data, irrecoverable.NewExceptionf("persisted validation data not set: %w", err)
		}
		return data, fmt.Errorf("could not retrieve persisted validation data: %w", err)
	}
	return data, nil
}

// Put stores the validation data for the next dispatch as part of the batch.
// No errors are expected during normal operation.
func (p *StoredProvider) Put(w storage.Writer, data relay.PersistedValidationData) error {
	err := operation.UpsertPersistedValidationData(w, &data)
	if err != nil {
		return fmt.Errorf("could not store persisted validation data: %w", err)
	}
	return nil
}
