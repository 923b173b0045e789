package simulate

import (
	"encoding/binary"

	"github.com/onflow/relay-storage-roots/model/dispatch"
	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/module"
	"github.com/onflow/relay-storage-roots/module/relayroots"
	"github.com/onflow/relay-storage-roots/storage"
)

const validationDataPalletName = "simulated_validation_data"

// validationDataPallet stands in for the collator: when a block starts it
// stores the validation data of the block's relay parent, which the relay
// storage roots inherent then reads within the same batch.
type validationDataPallet struct {
	writer relayroots.ValidationDataWriter
	start  relay.BlockNumber
}

var _ module.Pallet = (*validationDataPallet)(nil)

func (p *validationDataPallet) Name() string {
	return validationDataPalletName
}

func (p *validationDataPallet) OnInitialize(rw storage.ReaderBatchWriter, number uint64) (dispatch.Weight, error) {
	parent := relayParent(p.start, number)
	err := p.writer.Put(rw.Writer(), relay.PersistedValidationData{
		RelayParentNumber:      parent,
		RelayParentStorageRoot: rootForRelayParent(parent),
	})
	if err != nil {
		return dispatch.Weight{}, err
	}
	return dispatch.RocksDbWeight.Writes(1), nil
}

func (p *validationDataPallet) OnFinalize(storage.ReaderBatchWriter, uint64) error {
	return nil
}

func (p *validationDataPallet) Dispatch(_ storage.ReaderBatchWriter, ext dispatch.Extrinsic) (dispatch.PostDispatchInfo, error) {
	return dispatch.PostDispatchInfo{}, dispatch.ErrUnknownCall
}

// relayParent maps block 1 to the start relay block number.
func relayParent(start relay.BlockNumber, number uint64) relay.BlockNumber {
	return start + relay.BlockNumber(number-1)
}

// rootForRelayParent derives a recognizable root from the relay block number,
// so that roots printed by the read command can be checked by eye.
func rootForRelayParent(number relay.BlockNumber) relay.StorageRoot {
	var root relay.StorageRoot
	for i := range root {
		root[i] = 0xab
	}
	binary.BigEndian.PutUint32(root[len(root)-4:], uint32(number))
	return root
}
