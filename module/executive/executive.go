package executive

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/onflow/relay-storage-roots/model/dispatch"
	"github.com/onflow/relay-storage-roots/model/inherent"
	"github.com/onflow/relay-storage-roots/module"
	"github.com/onflow/relay-storage-roots/module/irrecoverable"
	"github.com/onflow/relay-storage-roots/state"
	"github.com/onflow/relay-storage-roots/storage"
)

// Executive builds blocks and executes them against the pallets. Blocks are
// executed one at a time, each in a single storage batch: either every change
// of the block is committed, or none is.
type Executive struct {
	log         zerolog.Logger
	db          storage.DB
	metrics     module.ExecutiveMetrics
	pallets     []module.Pallet
	byName      map[string]module.Pallet
	providers   []module.InherentProvider
	weightToFee WeightToFee

	lastExecuted *atomic.Uint64
}

type Option func(*Executive)

// WithWeightToFee sets the conversion from weight to fee. IdentityFee is the default.
func WithWeightToFee(f WeightToFee) Option {
	return func(e *Executive) {
		e.weightToFee = f
	}
}

// New creates an executive running the given pallets. Hooks run in the order
// the pallets are given. Pallets implementing module.InherentProvider take
// part in block building and inherent checks.
func New(
	log zerolog.Logger,
	db storage.DB,
	collector module.ExecutiveMetrics,
	pallets []module.Pallet,
	opts ...Option,
) (*Executive, error) {
	e := &Executive{
		log:          log.With().Str("component", "executive").Logger(),
		db:           db,
		metrics:      collector,
		pallets:      pallets,
		byName:       make(map[string]module.Pallet, len(pallets)),
		weightToFee:  IdentityFee,
		lastExecuted: atomic.NewUint64(0),
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, p := range pallets {
		if _, ok := e.byName[p.Name()]; ok {
			return nil, fmt.Errorf("duplicate pallet %s", p.Name())
		}
		e.byName[p.Name()] = p

		if provider, ok := p.(module.InherentProvider); ok {
			e.providers = append(e.providers, provider)
		}
	}

	return e, nil
}

// LastExecuted returns the number of the last committed block, 0 if none.
func (e *Executive) LastExecuted() uint64 {
	return e.lastExecuted.Load()
}

// BuildBlock creates a block with the given number. The inherents created
// from the data are placed first, followed by the transactions.
// No errors are expected during normal operation.
func (e *Executive) BuildBlock(number uint64, data *inherent.Data, txs []dispatch.Extrinsic) (*Block, error) {
	extrinsics := make([]dispatch.Extrinsic, 0, len(e.providers)+len(txs))
	for _, provider := range e.providers {
		required, err := provider.IsInherentRequired(data)
		if err != nil {
			return nil, fmt.Errorf("could not check whether inherent %s is required: %w", provider.InherentIdentifier(), err)
		}

		call := provider.CreateInherent(data)
		if call == nil {
			if required != nil {
				return nil, fmt.Errorf("required inherent %s was not created: %w", provider.InherentIdentifier(), required)
			}
			continue
		}

		extrinsics = append(extrinsics, dispatch.Extrinsic{
			Origin: dispatch.NoneOrigin(),
			Call:   call,
		})
	}
	extrinsics = append(extrinsics, txs...)

	return &Block{
		Number:     number,
		Extrinsics: extrinsics,
	}, nil
}

// CheckInherents reports a fatal error for every required inherent the block
// does not contain.
// No errors are expected during normal operation.
func (e *Executive) CheckInherents(block *Block, data *inherent.Data) (*inherent.CheckResult, error) {
	result := inherent.NewCheckResult()
	for _, provider := range e.providers {
		required, err := provider.IsInherentRequired(data)
		if err != nil {
			return nil, fmt.Errorf("could not check whether inherent %s is required: %w", provider.InherentIdentifier(), err)
		}
		if required == nil {
			continue
		}

		found := false
		for _, ext := range block.Extrinsics {
			if provider.IsInherent(ext.Call) {
				found = true
				break
			}
		}
		if found {
			continue
		}

		err = result.PutError(provider.InherentIdentifier(), required)
		if err != nil {
			return nil, fmt.Errorf("could not record inherent error: %w", err)
		}
	}
	return result, nil
}

// inherentProvider returns the provider the call is an inherent of.
func (e *Executive) inherentProvider(call dispatch.Call) (module.InherentProvider, bool) {
	for _, provider := range e.providers {
		if provider.IsInherent(call) {
			return provider, true
		}
	}
	return nil, false
}

// ExecuteBlock executes the block and commits its changes.
// Expected errors during normal operations:
//   - state.InvalidBlockError if the block is invalid, nothing is committed
func (e *Executive) ExecuteBlock(block *Block) (*BlockResult, error) {
	start := time.Now()

	var result *BlockResult
	err := e.db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
		var err error
		result, err = e.executeBlock(rw, block)
		return err
	})
	if err != nil {
		if state.IsInvalidBlockError(err) {
			e.metrics.BlockRejected(block.Number)
			e.log.Warn().Err(err).Uint64("block", block.Number).Msg("block rejected")
			return nil, err
		}
		return nil, fmt.Errorf("could not execute block %d: %w", block.Number, err)
	}

	e.lastExecuted.Store(block.Number)
	e.metrics.BlockExecuted(block.Number, time.Since(start), len(block.Extrinsics))
	e.log.Debug().
		Uint64("block", block.Number).
		Int("extrinsics", len(block.Extrinsics)).
		Uint64("fees", result.Fees).
		Msg("block executed")

	return result, nil
}

func (e *Executive) executeBlock(rw storage.ReaderBatchWriter, block *Block) (*BlockResult, error) {
	result := &BlockResult{
		Number:     block.Number,
		Extrinsics: make([]ExtrinsicResult, 0, len(block.Extrinsics)),
	}

	for _, p := range e.pallets {
		weight, err := p.OnInitialize(rw, block.Number)
		if err != nil {
			return nil, fmt.Errorf("on_initialize of %s failed: %w", p.Name(), err)
		}
		result.Weight = result.Weight.Add(weight)
	}

	seen := make(map[inherent.Identifier]struct{})
	transactionsStarted := false
	for i, ext := range block.Extrinsics {
		provider, isInherent := e.inherentProvider(ext.Call)
		if isInherent {
			if transactionsStarted {
				return nil, state.NewInvalidBlockErrorf(block.Number, "inherent %s at position %d follows a transaction", provider.InherentIdentifier(), i)
			}
			id := provider.InherentIdentifier()
			if _, ok := seen[id]; ok {
				return nil, state.NewInvalidBlockErrorf(block.Number, "inherent %s included more than once", id)
			}
			seen[id] = struct{}{}
		} else {
			transactionsStarted = true
		}

		extResult, err := e.applyExtrinsic(rw, ext)
		if err != nil {
			if irrecoverable.IsException(err) {
				return nil, err
			}
			return nil, state.NewInvalidBlockErrorf(block.Number, "extrinsic %d failed: %w", i, err)
		}
		result.Weight = result.Weight.Add(extResult.Weight)
		result.Fees += extResult.Fee
		result.Extrinsics = append(result.Extrinsics, extResult)
	}

	for _, p := range e.pallets {
		err := p.OnFinalize(rw, block.Number)
		if err != nil {
			return nil, fmt.Errorf("on_finalize of %s failed: %w", p.Name(), err)
		}
	}

	return result, nil
}

func (e *Executive) applyExtrinsic(rw storage.ReaderBatchWriter, ext dispatch.Extrinsic) (ExtrinsicResult, error) {
	if ext.Call == nil {
		return ExtrinsicResult{}, fmt.Errorf("missing call: %w", dispatch.ErrUnknownCall)
	}

	p, ok := e.byName[ext.Call.Pallet()]
	if !ok {
		return ExtrinsicResult{}, fmt.Errorf("no pallet %s: %w", ext.Call.Pallet(), dispatch.ErrUnknownCall)
	}

	info := ext.Call.Info()
	post, err := p.Dispatch(rw, ext)
	if err != nil {
		return ExtrinsicResult{}, fmt.Errorf("%s.%s: %w", ext.Call.Pallet(), ext.Call.Name(), err)
	}

	res := ExtrinsicResult{
		Pallet: ext.Call.Pallet(),
		Call:   ext.Call.Name(),
		Weight: post.CalcActualWeight(info),
		Pays:   post.PaysFee(info),
	}
	if res.Pays == dispatch.PaysYes {
		res.Fee = e.weightToFee(res.Weight)
	}
	return res, nil
}

// ImportBlocks executes the blocks received on the channel in order and
// reports an Outcome for each of them. Invalid blocks are reported and
// skipped, any other failure is thrown on the context. The returned channel
// is closed once blocks is closed and drained, or the context is done.
func (e *Executive) ImportBlocks(ctx irrecoverable.SignalerContext, blocks <-chan *Block) <-chan Outcome {
	outcomes := make(chan Outcome)

	go func() {
		defer close(outcomes)

		for {
			select {
			case <-ctx.Done():
				return
			case block, ok := <-blocks:
				if !ok {
					return
				}

				result, err := e.ExecuteBlock(block)
				if err != nil && !state.IsInvalidBlockError(err) {
					ctx.Throw(err)
					return
				}

				select {
				case <-ctx.Done():
					return
				case outcomes <- Outcome{Block: block, Result: result, Err: err}:
				}
			}
		}
	}()

	return outcomes
}
