package relay

// BlockNumber is the height of a block on the relay chain.
type BlockNumber uint32

// PersistedValidationData is the validation data the relay chain hands to the
// parachain for every block. Only the relay parent number and its storage root
// are consumed by this repository, the remaining fields are carried so the
// structure round-trips unchanged.
type PersistedValidationData struct {
	ParentHead             []byte
	RelayParentNumber      BlockNumber
	RelayParentStorageRoot StorageRoot
	MaxPovSize             uint32
}
