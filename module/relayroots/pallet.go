package relayroots

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/onflow/relay-storage-roots/model/dispatch"
	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/module"
	"github.com/onflow/relay-storage-roots/state"
	"github.com/onflow/relay-storage-roots/storage"
	"github.com/onflow/relay-storage-roots/storage/operation"
)

// MessageInherentNotIncluded is the reason a block without the inherent is rejected.
const MessageInherentNotIncluded = "Mandatory pallet_relay_storage_roots inherent not included; InherentIncluded storage item is empty"

// Pallet keeps the storage roots of the most recent relay parents, so that
// proofs against recent relay chain state can be verified. Its update call is
// a mandatory inherent: every block must include it exactly once.
//
// The pallet is driven by a single block executor and is not safe for
// concurrent use.
type Pallet struct {
	log      zerolog.Logger
	cfg      Config
	roots    storage.RelayStorageRoots
	included storage.InherentIncluded
	data     module.ValidationDataProvider
}

var _ module.Pallet = (*Pallet)(nil)

// New creates the pallet. The ledger must have been created with the
// configured capacity.
func New(
	log zerolog.Logger,
	cfg Config,
	roots storage.RelayStorageRoots,
	included storage.InherentIncluded,
	data module.ValidationDataProvider,
) (*Pallet, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if roots.Capacity() != cfg.MaxStorageRoots {
		return nil, fmt.Errorf("ledger capacity %d does not match max storage roots %d", roots.Capacity(), cfg.MaxStorageRoots)
	}

	return &Pallet{
		log:      log.With().Str("component", "relay_storage_roots").Logger(),
		cfg:      cfg,
		roots:    roots,
		included: included,
		data:     data,
	}, nil
}

func (p *Pallet) Name() string {
	return PalletName
}

// Config returns the configuration the pallet was created with.
func (p *Pallet) Config() Config {
	return p.cfg
}

func (p *Pallet) newSetRelayStorageRoot() *SetRelayStorageRoot {
	return &SetRelayStorageRoot{weight: p.cfg.Weights.SetRelayStorageRoot()}
}

// Dispatch applies a call of the pallet.
// Expected errors during normal operations:
//   - dispatch.ErrBadOrigin if the origin is not accepted by the call
//   - dispatch.ErrUnknownCall if the call does not belong to the pallet
func (p *Pallet) Dispatch(rw storage.ReaderBatchWriter, ext dispatch.Extrinsic) (dispatch.PostDispatchInfo, error) {
	switch ext.Call.(type) {
	case *SetRelayStorageRoot:
		return p.SetRelayStorageRoot(rw, ext.Origin)
	default:
		return dispatch.PostDispatchInfo{}, fmt.Errorf("pallet %s cannot dispatch %T: %w", PalletName, ext.Call, dispatch.ErrUnknownCall)
	}
}

// SetRelayStorageRoot records the relay parent storage root of the current
// block and marks the inherent as included. A relay parent number that is
// already recorded keeps its root; the inherent still counts as included.
// Expected errors during normal operations:
//   - dispatch.ErrBadOrigin if the origin is not the none origin
func (p *Pallet) SetRelayStorageRoot(rw storage.ReaderBatchWriter, origin dispatch.Origin) (dispatch.PostDispatchInfo, error) {
	err := dispatch.EnsureNone(origin)
	if err != nil {
		return dispatch.PostDispatchInfo{}, err
	}

	data, err := p.data.PersistedValidationData(rw.Reader())
	if err != nil {
		return dispatch.PostDispatchInfo{}, fmt.Errorf("could not get persisted validation data: %w", err)
	}

	number := data.RelayParentNumber
	recorded, evicted, err := p.roots.BatchRecord(rw, number, data.RelayParentStorageRoot)
	if err != nil {
		return dispatch.PostDispatchInfo{}, fmt.Errorf("could not record relay storage root for %d: %w", number, err)
	}

	err = p.included.BatchSet(rw)
	if err != nil {
		return dispatch.PostDispatchInfo{}, fmt.Errorf("could not mark inherent as included: %w", err)
	}

	lg := p.log.Debug().Uint32("relay_parent_number", uint32(number))
	switch {
	case !recorded:
		lg.Msg("relay storage root already recorded")
	case evicted != nil:
		lg.Str("root", data.RelayParentStorageRoot.String()).
			Uint32("evicted", uint32(*evicted)).
			Msg("relay storage root recorded, oldest root evicted")
	default:
		lg.Str("root", data.RelayParentStorageRoot.String()).
			Msg("relay storage root recorded")
	}

	return dispatch.PaysNoInfo(), nil
}

// OnInitialize clears any inclusion flag left over from outside a block and
// reserves the weight of the read and the write OnFinalize performs.
// No errors are expected during normal operation.
func (p *Pallet) OnInitialize(rw storage.ReaderBatchWriter, number uint64) (dispatch.Weight, error) {
	err := p.included.BatchClear(rw)
	if err != nil {
		return dispatch.Weight{}, fmt.Errorf("could not reset inherent included flag at block %d: %w", number, err)
	}
	return p.cfg.DbWeight.ReadsWrites(1, 1), nil
}

// OnFinalize takes the inclusion flag. A block that did not run the inherent
// is invalid.
// Expected errors during normal operations:
//   - state.InvalidBlockError if the inherent was not included
func (p *Pallet) OnFinalize(rw storage.ReaderBatchWriter, number uint64) error {
	included, err := p.included.BatchTake(rw)
	if err != nil {
		return fmt.Errorf("could not take inherent included flag: %w", err)
	}
	if !included {
		p.log.Error().Uint64("block", number).Msg("mandatory inherent missing, rejecting block")
		return state.NewInvalidBlockError(number, MessageInherentNotIncluded)
	}
	return nil
}

// RelayStorageRoot returns the root recorded for the relay block number in
// the state visible to the reader, and false if there is none.
// No errors are expected during normal operation.
func (p *Pallet) RelayStorageRoot(r storage.Reader, number relay.BlockNumber) (relay.StorageRoot, bool, error) {
	var root relay.StorageRoot
	err := operation.RetrieveRelayStorageRoot(r, number, &root)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return relay.ZeroStorageRoot, false, nil
		}
		return relay.ZeroStorageRoot, false, fmt.Errorf("could not retrieve relay storage root for %d: %w", number, err)
	}
	return root, true, nil
}

// RelayStorageRootKeys returns the recorded relay block numbers in arrival order.
// No errors are expected during normal operation.
func (p *Pallet) RelayStorageRootKeys(r storage.Reader) ([]relay.BlockNumber, error) {
	var keys []relay.BlockNumber
	err := operation.RetrieveRelayStorageRootKeys(r, &keys)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve relay storage root keys: %w", err)
	}
	return keys, nil
}

// InherentIncluded returns whether the inherent ran in the block whose
// state is visible to the reader. It is false after any finalized block, and
// only a call committed outside a block leaves it set until the next block starts.
// No errors are expected during normal operation.
func (p *Pallet) InherentIncluded(r storage.Reader) (bool, error) {
	return p.included.IsSet(r)
}
