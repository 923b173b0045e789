package module

import (
	"github.com/onflow/relay-storage-roots/model/dispatch"
	"github.com/onflow/relay-storage-roots/storage"
)

// BlockHooks are run by the executive around the extrinsics of every block.
// All of them operate on the batch of the block being executed.
type BlockHooks interface {
	// OnInitialize runs before the first extrinsic and returns the weight the
	// pallet reserves for the block.
	// No errors are expected during normal operation.
	OnInitialize(rw storage.ReaderBatchWriter, number uint64) (dispatch.Weight, error)

	// OnFinalize runs after the last extrinsic.
	// Expected errors during normal operations:
	//   - state.InvalidBlockError if the block must be rejected
	OnFinalize(rw storage.ReaderBatchWriter, number uint64) error
}

// Dispatcher applies the calls of a pallet.
type Dispatcher interface {
	// Dispatch applies the extrinsic as part of the batch.
	// Expected errors during normal operations:
	//   - dispatch.ErrBadOrigin if the origin is not accepted by the call
	//   - dispatch.ErrUnknownCall if the call does not belong to the pallet
	Dispatch(rw storage.ReaderBatchWriter, ext dispatch.Extrinsic) (dispatch.PostDispatchInfo, error)
}

// Pallet is a unit of runtime logic the executive drives through a block.
type Pallet interface {
	BlockHooks
	Dispatcher

	// Name identifies the pallet, calls report the same name through Call.Pallet.
	Name() string
}
