package executive

import (
	"github.com/onflow/relay-storage-roots/model/dispatch"
)

// Block is the part of a block the executive needs: its number and the
// extrinsics in execution order. Inherents come before every other extrinsic.
type Block struct {
	Number     uint64
	Extrinsics []dispatch.Extrinsic
}

// ExtrinsicResult reports the execution of one extrinsic.
type ExtrinsicResult struct {
	Pallet string
	Call   string
	Weight dispatch.Weight
	Pays   dispatch.Pays
	Fee    uint64
}

// BlockResult reports a committed block.
type BlockResult struct {
	Number uint64
	// Weight is the weight reserved by the block hooks plus the actual weight
	// of all extrinsics.
	Weight     dispatch.Weight
	Fees       uint64
	Extrinsics []ExtrinsicResult
}

// Outcome is produced by ImportBlocks for every block it receives. Err is
// set for rejected blocks, and is always a state.InvalidBlockError.
type Outcome struct {
	Block  *Block
	Result *BlockResult
	Err    error
}

// WeightToFee converts the weight of an extrinsic into the fee charged for it.
type WeightToFee func(dispatch.Weight) uint64

// IdentityFee charges one fee unit per unit of ref time.
func IdentityFee(w dispatch.Weight) uint64 {
	return w.RefTime
}
