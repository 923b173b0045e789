package executive_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/onflow/relay-storage-roots/model/dispatch"
	"github.com/onflow/relay-storage-roots/model/inherent"
	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/module"
	"github.com/onflow/relay-storage-roots/module/executive"
	"github.com/onflow/relay-storage-roots/module/irrecoverable"
	"github.com/onflow/relay-storage-roots/module/metrics"
	modulemock "github.com/onflow/relay-storage-roots/module/mock"
	"github.com/onflow/relay-storage-roots/module/relayroots"
	"github.com/onflow/relay-storage-roots/module/validationdata"
	"github.com/onflow/relay-storage-roots/state"
	"github.com/onflow/relay-storage-roots/storage"
	"github.com/onflow/relay-storage-roots/storage/operation"
	"github.com/onflow/relay-storage-roots/storage/operation/pebbleimpl"
	"github.com/onflow/relay-storage-roots/storage/store"
	"github.com/onflow/relay-storage-roots/utils/unittest"
)

const remarkPalletName = "remark"

// remarkCall stores its text under its key. It pays fees unless told otherwise.
type remarkCall struct {
	key  byte
	text string
	pays dispatch.Pays
	fail error
}

func (c *remarkCall) Pallet() string { return remarkPalletName }
func (c *remarkCall) Name() string   { return "remark" }
func (c *remarkCall) Info() dispatch.DispatchInfo {
	return dispatch.DispatchInfo{Weight: dispatch.NewWeight(1_000, 10), Class: dispatch.Normal, Pays: c.pays}
}

type remarkPallet struct{}

var _ module.Pallet = (*remarkPallet)(nil)

func (remarkPallet) Name() string { return remarkPalletName }

func (remarkPallet) OnInitialize(storage.ReaderBatchWriter, uint64) (dispatch.Weight, error) {
	return dispatch.Weight{}, nil
}

func (remarkPallet) OnFinalize(storage.ReaderBatchWriter, uint64) error {
	return nil
}

func (remarkPallet) Dispatch(rw storage.ReaderBatchWriter, ext dispatch.Extrinsic) (dispatch.PostDispatchInfo, error) {
	call, ok := ext.Call.(*remarkCall)
	if !ok {
		return dispatch.PostDispatchInfo{}, dispatch.ErrUnknownCall
	}
	if call.fail != nil {
		return dispatch.PostDispatchInfo{}, call.fail
	}
	// only the half of the declared weight is used
	actual := dispatch.NewWeight(500, 5)
	return dispatch.PostDispatchInfo{ActualWeight: &actual, Pays: dispatch.PaysYes},
		operation.UpsertByKey(rw.Writer(), remarkKey(call.key), call.text)
}

func remarkKey(key byte) []byte {
	return []byte{0xf0, key}
}

func TestExecutive(t *testing.T) {
	suite.Run(t, new(ExecutiveSuite))
}

type ExecutiveSuite struct {
	suite.Suite

	dir      string
	db       storage.DB
	provider *validationdata.StaticProvider
	roots    *relayroots.Pallet
	metrics  *modulemock.ExecutiveMetrics
	exec     *executive.Executive
}

func (s *ExecutiveSuite) SetupTest() {
	s.dir = unittest.TempDir(s.T())
	s.db = pebbleimpl.ToDB(unittest.PebbleDB(s.T(), s.dir))

	collector := metrics.NewNoopCollector()
	cfg := relayroots.DefaultConfig()
	cfg.MaxStorageRoots = 3
	ledger, err := store.NewRelayStorageRoots(collector, collector, s.db, cfg.MaxStorageRoots)
	s.Require().NoError(err)
	s.provider = validationdata.NewStaticProvider(unittest.ValidationDataFixture(100))

	s.roots, err = relayroots.New(unittest.Logger(), cfg, ledger, store.NewInherentIncluded(), s.provider)
	s.Require().NoError(err)

	s.metrics = modulemock.NewExecutiveMetrics(s.T())
	s.exec, err = executive.New(unittest.Logger(), s.db, s.metrics, []module.Pallet{s.roots, remarkPallet{}})
	s.Require().NoError(err)
}

func (s *ExecutiveSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
	s.Require().NoError(os.RemoveAll(s.dir))
}

func (s *ExecutiveSuite) rootRecorded(number relay.BlockNumber) bool {
	_, ok, err := s.roots.RelayStorageRoot(s.db.Reader(), number)
	s.Require().NoError(err)
	return ok
}

func (s *ExecutiveSuite) TestBuildBlockPrependsInherent() {
	txs := []dispatch.Extrinsic{
		{Origin: dispatch.SignedOrigin("alice"), Call: &remarkCall{key: 1, text: "hi"}},
	}
	block, err := s.exec.BuildBlock(1, inherent.NewData(), txs)
	s.Require().NoError(err)

	s.Require().Len(block.Extrinsics, 2)
	s.Assert().True(s.roots.IsInherent(block.Extrinsics[0].Call))
	s.Assert().Equal(dispatch.NoneOrigin(), block.Extrinsics[0].Origin)
	s.Assert().Equal(txs[0], block.Extrinsics[1])

	result, err := s.exec.CheckInherents(block, inherent.NewData())
	s.Require().NoError(err)
	s.Assert().True(result.Ok())
}

func (s *ExecutiveSuite) TestCheckInherentsReportsMissing() {
	block := &executive.Block{Number: 1}

	result, err := s.exec.CheckInherents(block, inherent.NewData())
	s.Require().NoError(err)
	s.Require().False(result.Ok())
	s.Assert().True(result.FatalErrorReported())

	reported, ok := result.Error(relayroots.InherentIdentifier)
	s.Require().True(ok)
	s.Assert().Equal(relayroots.MessageInherentRequired, reported.Error())
	s.Assert().ErrorContains(result.Err(), relayroots.MessageInherentRequired)
}

func (s *ExecutiveSuite) TestExecuteBlock() {
	s.metrics.On("BlockExecuted", uint64(1), mock.Anything, 2).Once()

	block, err := s.exec.BuildBlock(1, inherent.NewData(), []dispatch.Extrinsic{
		{Origin: dispatch.SignedOrigin("alice"), Call: &remarkCall{key: 1, text: "hi", pays: dispatch.PaysYes}},
	})
	s.Require().NoError(err)

	result, err := s.exec.ExecuteBlock(block)
	s.Require().NoError(err)
	s.Assert().Equal(uint64(1), s.exec.LastExecuted())
	s.Assert().True(s.rootRecorded(100))

	// only the remark pays, for the weight it actually used
	s.Require().Len(result.Extrinsics, 2)
	s.Assert().Equal(dispatch.PaysNo, result.Extrinsics[0].Pays)
	s.Assert().Equal(uint64(0), result.Extrinsics[0].Fee)
	s.Assert().Equal(dispatch.PaysYes, result.Extrinsics[1].Pays)
	s.Assert().Equal(dispatch.NewWeight(500, 5), result.Extrinsics[1].Weight)
	s.Assert().Equal(uint64(500), result.Extrinsics[1].Fee)
	s.Assert().Equal(uint64(500), result.Fees)

	expected := s.roots.Config().DbWeight.ReadsWrites(1, 1).
		Add(s.roots.Config().Weights.SetRelayStorageRoot()).
		Add(dispatch.NewWeight(500, 5))
	s.Assert().Equal(expected, result.Weight)

	var text string
	s.Require().NoError(operation.RetrieveByKey(s.db.Reader(), remarkKey(1), &text))
	s.Assert().Equal("hi", text)

	// the inclusion flag does not outlive the block
	included, err := s.roots.InherentIncluded(s.db.Reader())
	s.Require().NoError(err)
	s.Assert().False(included)
}

func (s *ExecutiveSuite) TestFeeWaivedByCall() {
	s.metrics.On("BlockExecuted", uint64(1), mock.Anything, 2).Once()

	block, err := s.exec.BuildBlock(1, inherent.NewData(), []dispatch.Extrinsic{
		{Origin: dispatch.SignedOrigin("alice"), Call: &remarkCall{key: 1, pays: dispatch.PaysNo}},
	})
	s.Require().NoError(err)

	result, err := s.exec.ExecuteBlock(block)
	s.Require().NoError(err)
	s.Assert().Equal(uint64(0), result.Fees)
}

func (s *ExecutiveSuite) TestBlockWithoutInherentRejected() {
	s.metrics.On("BlockRejected", uint64(1)).Once()

	block := &executive.Block{
		Number: 1,
		Extrinsics: []dispatch.Extrinsic{
			{Origin: dispatch.SignedOrigin("alice"), Call: &remarkCall{key: 1, text: "hi"}},
		},
	}

	_, err := s.exec.ExecuteBlock(block)
	s.Require().Error(err)
	s.Assert().True(state.IsInvalidBlockError(err))
	s.Assert().ErrorContains(err, relayroots.MessageInherentNotIncluded)

	// nothing of the block was committed
	exists, err := operation.KeyExists(s.db.Reader(), remarkKey(1))
	s.Require().NoError(err)
	s.Assert().False(exists)
	s.Assert().Equal(uint64(0), s.exec.LastExecuted())
}

func (s *ExecutiveSuite) TestDuplicateInherentRejected() {
	s.metrics.On("BlockRejected", uint64(1)).Once()

	inherentCall := s.roots.CreateInherent(nil)
	block := &executive.Block{
		Number: 1,
		Extrinsics: []dispatch.Extrinsic{
			{Origin: dispatch.NoneOrigin(), Call: inherentCall},
			{Origin: dispatch.NoneOrigin(), Call: inherentCall},
		},
	}

	_, err := s.exec.ExecuteBlock(block)
	s.Assert().True(state.IsInvalidBlockError(err))
	s.Assert().False(s.rootRecorded(100))
}

func (s *ExecutiveSuite) TestInherentAfterTransactionRejected() {
	s.metrics.On("BlockRejected", uint64(1)).Once()

	block := &executive.Block{
		Number: 1,
		Extrinsics: []dispatch.Extrinsic{
			{Origin: dispatch.SignedOrigin("alice"), Call: &remarkCall{key: 1}},
			{Origin: dispatch.NoneOrigin(), Call: s.roots.CreateInherent(nil)},
		},
	}

	_, err := s.exec.ExecuteBlock(block)
	s.Assert().True(state.IsInvalidBlockError(err))
	s.Assert().False(s.rootRecorded(100))
}

func (s *ExecutiveSuite) TestSignedInherentRejected() {
	s.metrics.On("BlockRejected", uint64(1)).Once()

	block := &executive.Block{
		Number: 1,
		Extrinsics: []dispatch.Extrinsic{
			{Origin: dispatch.SignedOrigin("mallory"), Call: s.roots.CreateInherent(nil)},
		},
	}

	_, err := s.exec.ExecuteBlock(block)
	s.Assert().True(state.IsInvalidBlockError(err))
	s.Assert().ErrorIs(err, dispatch.ErrBadOrigin)
}

func (s *ExecutiveSuite) TestUnknownPalletRejected() {
	s.metrics.On("BlockRejected", uint64(1)).Once()

	block, err := s.exec.BuildBlock(1, nil, []dispatch.Extrinsic{
		{Origin: dispatch.SignedOrigin("alice"), Call: &foreignCall{}},
	})
	s.Require().NoError(err)

	_, err = s.exec.ExecuteBlock(block)
	s.Assert().True(state.IsInvalidBlockError(err))
	s.Assert().ErrorIs(err, dispatch.ErrUnknownCall)
}

func (s *ExecutiveSuite) TestExceptionIsNotInvalidBlock() {
	block, err := s.exec.BuildBlock(1, nil, []dispatch.Extrinsic{
		{Origin: dispatch.SignedOrigin("alice"), Call: &remarkCall{key: 1, fail: irrecoverable.NewExceptionf("disk on fire")}},
	})
	s.Require().NoError(err)

	_, err = s.exec.ExecuteBlock(block)
	s.Require().Error(err)
	s.Assert().False(state.IsInvalidBlockError(err))
	s.Assert().True(irrecoverable.IsException(err))
}

func (s *ExecutiveSuite) TestImportBlocks() {
	s.metrics.On("BlockExecuted", uint64(1), mock.Anything, 1).Once()
	s.metrics.On("BlockRejected", uint64(2)).Once()
	s.metrics.On("BlockExecuted", uint64(3), mock.Anything, 1).Once()

	first, err := s.exec.BuildBlock(1, nil, nil)
	s.Require().NoError(err)
	third, err := s.exec.BuildBlock(3, nil, nil)
	s.Require().NoError(err)
	blocks := make(chan *executive.Block, 3)
	blocks <- first
	blocks <- &executive.Block{Number: 2}
	blocks <- third
	close(blocks)

	ctx, cancel := irrecoverable.NewMockSignalerContextWithCancel(s.T(), context.Background())
	defer cancel()

	var outcomes []executive.Outcome
	unittest.RequireReturnsBefore(s.T(), func() {
		for outcome := range s.exec.ImportBlocks(ctx, blocks) {
			outcomes = append(outcomes, outcome)
		}
	}, time.Second)

	s.Require().Len(outcomes, 3)
	s.Assert().NoError(outcomes[0].Err)
	s.Assert().True(state.IsInvalidBlockError(outcomes[1].Err))
	s.Assert().Nil(outcomes[1].Result)
	s.Assert().NoError(outcomes[2].Err)
	s.Assert().Equal(uint64(3), s.exec.LastExecuted())
}

func (s *ExecutiveSuite) TestImportBlocksThrowsExceptions() {
	block, err := s.exec.BuildBlock(1, nil, []dispatch.Extrinsic{
		{Origin: dispatch.SignedOrigin("alice"), Call: &remarkCall{key: 1, fail: irrecoverable.NewExceptionf("disk on fire")}},
	})
	s.Require().NoError(err)
	blocks := make(chan *executive.Block, 1)
	blocks <- block

	ctx, cancel, errCh := irrecoverable.WithSignallerAndCancel(context.Background())
	defer cancel()

	outcomes := s.exec.ImportBlocks(ctx, blocks)

	select {
	case err := <-errCh:
		s.Assert().True(irrecoverable.IsException(err))
	case <-time.After(time.Second):
		s.Fail("exception was not thrown")
	}

	// the import stopped without reporting the block
	_, ok := <-outcomes
	s.Assert().False(ok)
}

func (s *ExecutiveSuite) TestImportBlocksStopsAfterExpectedException() {
	diskFailure := errors.New("disk on fire")
	block, err := s.exec.BuildBlock(1, nil, []dispatch.Extrinsic{
		{Origin: dispatch.SignedOrigin("alice"), Call: &remarkCall{key: 1, fail: irrecoverable.NewException(diskFailure)}},
	})
	s.Require().NoError(err)
	blocks := make(chan *executive.Block, 1)
	blocks <- block

	ctx := irrecoverable.NewMockSignalerContextExpectError(s.T(), context.Background(), diskFailure)

	var outcomes []executive.Outcome
	unittest.RequireReturnsBefore(s.T(), func() {
		for outcome := range s.exec.ImportBlocks(ctx, blocks) {
			outcomes = append(outcomes, outcome)
		}
	}, time.Second)
	s.Assert().Empty(outcomes)
	s.Assert().Equal(uint64(0), s.exec.LastExecuted())
}

type foreignCall struct{}

func (foreignCall) Pallet() string              { return "unknown" }
func (foreignCall) Name() string                { return "call" }
func (foreignCall) Info() dispatch.DispatchInfo { return dispatch.DispatchInfo{} }

func TestNewRejectsDuplicatePallets(t *testing.T) {
	unittest.RunWithStorages(t, func(t *testing.T, db storage.DB) {
		_, err := executive.New(unittest.Logger(), db, metrics.NewNoopCollector(), []module.Pallet{remarkPallet{}, remarkPallet{}})
		require.Error(t, err)
	})
}

func TestWithWeightToFee(t *testing.T) {
	unittest.RunWithStorages(t, func(t *testing.T, db storage.DB) {
		exec, err := executive.New(unittest.Logger(), db, metrics.NewNoopCollector(), []module.Pallet{remarkPallet{}},
			executive.WithWeightToFee(func(w dispatch.Weight) uint64 { return w.RefTime * 2 }))
		require.NoError(t, err)

		// no pallet provides inherents, so the block has only the remark
		block, err := exec.BuildBlock(1, nil, []dispatch.Extrinsic{
			{Origin: dispatch.SignedOrigin("alice"), Call: &remarkCall{key: 2, text: "x"}},
		})
		require.NoError(t, err)
		require.Len(t, block.Extrinsics, 1)

		result, err := exec.ExecuteBlock(block)
		require.NoError(t, err)
		require.Equal(t, uint64(1_000), result.Fees)
	})
}
