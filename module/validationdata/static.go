package validationdata

import (
	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/module"
	"github.com/onflow/relay-storage-roots/storage"
)

// StaticProvider serves the validation data set by the host before each block.
// It is not safe for concurrent use, blocks are executed one at a time.
type StaticProvider struct {
	data relay.PersistedValidationData
}

var _ module.ValidationDataProvider = (*StaticProvider)(nil)

func NewStaticProvider(data relay.PersistedValidationData) *StaticProvider {
	return &StaticProvider{data: data}
}

// Set replaces the validation data served for the next block.
func (p *StaticProvider) Set(data relay.PersistedValidationData) {
	p.data = data
}

func (p *StaticProvider) PersistedValidationData(storage.Reader) (relay.PersistedValidationData, error) {
	return p.data, nil
}
