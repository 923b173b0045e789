package relayroots

import (
	"github.com/onflow/relay-storage-roots/model/dispatch"
)

const (
	PalletName              = "relay_storage_roots"
	CallSetRelayStorageRoot = "set_relay_storage_root"
)

// SetRelayStorageRoot records the storage root of the relay parent of the
// current block. It takes no arguments: the relay parent number and root are
// read from the validation data when the call executes.
type SetRelayStorageRoot struct {
	weight dispatch.Weight
}

var _ dispatch.Call = (*SetRelayStorageRoot)(nil)

func (c *SetRelayStorageRoot) Pallet() string { return PalletName }

func (c *SetRelayStorageRoot) Name() string { return CallSetRelayStorageRoot }

// Info reports the declared weight. The call is mandatory and fee free.
func (c *SetRelayStorageRoot) Info() dispatch.DispatchInfo {
	return dispatch.DispatchInfo{
		Weight: c.weight,
		Class:  dispatch.Mandatory,
		Pays:   dispatch.PaysNo,
	}
}
