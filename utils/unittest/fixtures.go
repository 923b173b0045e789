package unittest

import (
	"encoding/binary"
	"math/rand"

	"github.com/onflow/relay-storage-roots/model/relay"
)

// StorageRootFixture returns a random storage root.
func StorageRootFixture() relay.StorageRoot {
	var root relay.StorageRoot
	_, _ = rand.Read(root[:])
	return root
}

// StorageRootForHeight returns a storage root that is unique per height and
// identical across calls, so expected values can be recomputed in assertions.
func StorageRootForHeight(height relay.BlockNumber) relay.StorageRoot {
	var root relay.StorageRoot
	for i := range root {
		root[i] = 0xab
	}
	binary.BigEndian.PutUint32(root[relay.StorageRootLength-4:], uint32(height))
	return root
}

// ValidationDataFixture returns validation data for the given relay parent
// number, with the root from StorageRootForHeight.
func ValidationDataFixture(height relay.BlockNumber, opts ...func(*relay.PersistedValidationData)) relay.PersistedValidationData {
	data := relay.PersistedValidationData{
		ParentHead:             []byte{0x01, 0x02, 0x03},
		RelayParentNumber:      height,
		RelayParentStorageRoot: StorageRootForHeight(height),
		MaxPovSize:             5 * 1024 * 1024,
	}
	for _, apply := range opts {
		apply(&data)
	}
	return data
}

// WithStorageRoot overrides the relay parent storage root of the fixture.
func WithStorageRoot(root relay.StorageRoot) func(*relay.PersistedValidationData) {
	return func(data *relay.PersistedValidationData) {
		data.RelayParentStorageRoot = root
	}
}
