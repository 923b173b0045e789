package relayroots_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/relay-storage-roots/model/dispatch"
	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/module/relayroots"
	"github.com/onflow/relay-storage-roots/module/validationdata"
	"github.com/onflow/relay-storage-roots/storage"
	"github.com/onflow/relay-storage-roots/utils/unittest"
)

func TestFillStorageRoots(t *testing.T) {
	unittest.RunWithStorages(t, func(t *testing.T, db storage.DB) {
		provider := validationdata.NewStoredProvider()
		p := newPallet(t, db, testConfig(4), provider)

		require.NoError(t, relayroots.FillStorageRoots(db, p, provider))

		keys, err := p.RelayStorageRootKeys(db.Reader())
		require.NoError(t, err)
		assert.Equal(t, []relay.BlockNumber{0, 1, 2, 3}, keys)
	})
}

func TestBenchmarkSetRelayStorageRoot(t *testing.T) {
	unittest.RunWithStorages(t, func(t *testing.T, db storage.DB) {
		provider := validationdata.NewStoredProvider()
		p := newPallet(t, db, testConfig(4), provider)

		_, err := relayroots.BenchmarkSetRelayStorageRoot(db, p, provider)
		require.NoError(t, err)

		// the measured update evicted the oldest root of the full ledger
		keys, err := p.RelayStorageRootKeys(db.Reader())
		require.NoError(t, err)
		assert.Equal(t, []relay.BlockNumber{1, 2, 3, relayroots.BenchmarkRelayParentNumber}, keys)

		root, ok, err := p.RelayStorageRoot(db.Reader(), relayroots.BenchmarkRelayParentNumber)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, relay.ZeroStorageRoot, root)

		included, err := p.InherentIncluded(db.Reader())
		require.NoError(t, err)
		assert.True(t, included)
	})
}

func TestRunBenchmark(t *testing.T) {
	cfg := testConfig(8)
	open := func() (storage.DB, error) {
		return unittest.InMemoryBadgerDB(t), nil
	}

	result, err := relayroots.RunBenchmark(unittest.Logger(), cfg, 3, open)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Iterations)
	assert.LessOrEqual(t, result.Min, result.Mean)
	assert.LessOrEqual(t, result.Mean, result.Max)
	assert.LessOrEqual(t, result.Min, result.Median)
	assert.LessOrEqual(t, result.Median, result.Max)
	assert.GreaterOrEqual(t, result.StdDev, time.Duration(0))
	assert.True(t, cfg.DbWeight.ReadsWrites(3, 3).AllLTE(result.Weight))

	_, err = relayroots.RunBenchmark(unittest.Logger(), cfg, 0, open)
	require.Error(t, err)
}

func BenchmarkSetRelayStorageRootWorstCase(b *testing.B) {
	cfg := relayroots.DefaultConfig()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		db := unittest.InMemoryBadgerDB(b)
		provider := validationdata.NewStoredProvider()
		p := newPallet(b, db, cfg, provider)
		require.NoError(b, relayroots.FillStorageRoots(db, p, provider))
		require.NoError(b, db.WithReaderBatchWriter(storage.OnlyWriter(func(w storage.Writer) error {
			return provider.Put(w, unittest.ValidationDataFixture(relayroots.BenchmarkRelayParentNumber))
		})))
		b.StartTimer()

		err := db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
			_, err := p.SetRelayStorageRoot(rw, dispatch.NoneOrigin())
			return err
		})

		b.StopTimer()
		require.NoError(b, err)
		require.NoError(b, db.Close())
		b.StartTimer()
	}
}
