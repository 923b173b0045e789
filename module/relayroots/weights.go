package relayroots

import (
	"github.com/onflow/relay-storage-roots/model/dispatch"
)

// WeightInfo declares the weight of each call of the pallet.
type WeightInfo interface {
	SetRelayStorageRoot() dispatch.Weight
}

// Measured with the worst case fill, where the update evicts the oldest root.
const (
	setRelayStorageRootRefTime   uint64 = 16_203_000
	setRelayStorageRootProofSize uint64 = 3_531
)

// DefaultWeights are derived from the benchmark of the update with a full ledger.
type DefaultWeights struct {
	db dispatch.RuntimeDbWeight
}

var _ WeightInfo = (*DefaultWeights)(nil)

func NewDefaultWeights(db dispatch.RuntimeDbWeight) *DefaultWeights {
	return &DefaultWeights{db: db}
}

// SetRelayStorageRoot reads the validation data, the key list and the root
// slot, and writes the root, the key list and the inclusion flag.
func (w *DefaultWeights) SetRelayStorageRoot() dispatch.Weight {
	return dispatch.NewWeight(setRelayStorageRootRefTime, setRelayStorageRootProofSize).
		Add(w.db.ReadsWrites(3, 3))
}

// FixedWeights returns the same weight for every call. Used by tests and by
// weights derived from a local benchmark run.
type FixedWeights struct {
	Weight dispatch.Weight
}

var _ WeightInfo = (*FixedWeights)(nil)

func (w FixedWeights) SetRelayStorageRoot() dispatch.Weight {
	return w.Weight
}
