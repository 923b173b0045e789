package relayroots

import (
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"

	"github.com/onflow/relay-storage-roots/model/dispatch"
	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/module/metrics"
	"github.com/onflow/relay-storage-roots/module/validationdata"
	"github.com/onflow/relay-storage-roots/storage"
	"github.com/onflow/relay-storage-roots/storage/store"
)

// BenchmarkRelayParentNumber is the relay parent number of the measured update.
// It is above every number the fill records, so the update evicts.
const BenchmarkRelayParentNumber relay.BlockNumber = 1000

// ValidationDataWriter places the validation data the next update reads.
type ValidationDataWriter interface {
	Put(w storage.Writer, data relay.PersistedValidationData) error
}

// FillStorageRoots brings the ledger to its worst case: full, so that the next
// new relay parent number evicts the oldest root. It records relay parent
// numbers 0 to MaxStorageRoots-1 with a zero root, one update per batch.
// The pallet must read its validation data from what the writer stores.
func FillStorageRoots(db storage.DB, p *Pallet, writer ValidationDataWriter) error {
	for i := uint32(0); i < p.cfg.MaxStorageRoots; i++ {
		data := relay.PersistedValidationData{
			RelayParentNumber:      relay.BlockNumber(i),
			RelayParentStorageRoot: relay.ZeroStorageRoot,
		}
		err := db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
			err := writer.Put(rw.Writer(), data)
			if err != nil {
				return err
			}
			_, err = p.SetRelayStorageRoot(rw, dispatch.NoneOrigin())
			return err
		})
		if err != nil {
			return fmt.Errorf("could not record relay parent %d: %w", i, err)
		}
	}

	keys, err := p.RelayStorageRootKeys(db.Reader())
	if err != nil {
		return err
	}
	if uint64(len(keys)) < uint64(p.cfg.MaxStorageRoots) {
		return fmt.Errorf("ledger holds %d roots after fill, expected at least %d", len(keys), p.cfg.MaxStorageRoots)
	}
	return nil
}

// BenchmarkSetRelayStorageRoot fills the ledger, then measures one update
// with relay parent number BenchmarkRelayParentNumber and verifies that its
// root was recorded and the inherent marked as included.
func BenchmarkSetRelayStorageRoot(db storage.DB, p *Pallet, writer ValidationDataWriter) (time.Duration, error) {
	err := FillStorageRoots(db, p, writer)
	if err != nil {
		return 0, fmt.Errorf("could not fill relay storage roots: %w", err)
	}

	expected := relay.ZeroStorageRoot
	err = db.WithReaderBatchWriter(storage.OnlyWriter(func(w storage.Writer) error {
		return writer.Put(w, relay.PersistedValidationData{
			RelayParentNumber:      BenchmarkRelayParentNumber,
			RelayParentStorageRoot: expected,
		})
	}))
	if err != nil {
		return 0, fmt.Errorf("could not store validation data: %w", err)
	}

	start := time.Now()
	err = db.WithReaderBatchWriter(func(rw storage.ReaderBatchWriter) error {
		_, err := p.SetRelayStorageRoot(rw, dispatch.NoneOrigin())
		return err
	})
	elapsed := time.Since(start)
	if err != nil {
		return 0, fmt.Errorf("could not set relay storage root: %w", err)
	}

	root, ok, err := p.RelayStorageRoot(db.Reader(), BenchmarkRelayParentNumber)
	if err != nil {
		return 0, err
	}
	if !ok || root != expected {
		return 0, fmt.Errorf("relay storage root for %d not recorded", BenchmarkRelayParentNumber)
	}
	included, err := p.InherentIncluded(db.Reader())
	if err != nil {
		return 0, err
	}
	if !included {
		return 0, fmt.Errorf("inherent not marked as included")
	}

	return elapsed, nil
}

// BenchmarkResult summarizes repeated runs of BenchmarkSetRelayStorageRoot.
type BenchmarkResult struct {
	Iterations int
	Mean       time.Duration
	Median     time.Duration
	StdDev     time.Duration
	Min        time.Duration
	Max        time.Duration
	// Weight is the suggested declared weight: the mean execution time plus
	// the database weight of three reads and three writes.
	Weight dispatch.Weight
}

// RunBenchmark runs the benchmark the given number of times, each time against
// a fresh database returned by open.
func RunBenchmark(log zerolog.Logger, cfg Config, iterations int, open func() (storage.DB, error)) (BenchmarkResult, error) {
	if iterations <= 0 {
		return BenchmarkResult{}, fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	samples := make(stats.Float64Data, 0, iterations)
	for i := 0; i < iterations; i++ {
		elapsed, err := runBenchmarkOnce(log, cfg, open)
		if err != nil {
			return BenchmarkResult{}, fmt.Errorf("iteration %d failed: %w", i, err)
		}
		samples = append(samples, float64(elapsed))
		log.Debug().Int("iteration", i).Dur("elapsed", elapsed).Msg("benchmark iteration done")
	}

	result, err := summarize(samples)
	if err != nil {
		return BenchmarkResult{}, fmt.Errorf("could not summarize benchmark: %w", err)
	}
	result.Weight = dispatch.NewWeight(uint64(result.Mean.Nanoseconds())*dispatch.WeightRefTimePerNanos, 0).
		Add(cfg.DbWeight.ReadsWrites(3, 3))
	return result, nil
}

// summarize computes the statistics of non-empty samples given in nanoseconds.
func summarize(samples stats.Float64Data) (BenchmarkResult, error) {
	mean, err := stats.Mean(samples)
	if err != nil {
		return BenchmarkResult{}, err
	}
	median, err := stats.Median(samples)
	if err != nil {
		return BenchmarkResult{}, err
	}
	stdDev, err := stats.StandardDeviation(samples)
	if err != nil {
		return BenchmarkResult{}, err
	}
	minimum, err := stats.Min(samples)
	if err != nil {
		return BenchmarkResult{}, err
	}
	maximum, err := stats.Max(samples)
	if err != nil {
		return BenchmarkResult{}, err
	}

	return BenchmarkResult{
		Iterations: len(samples),
		Mean:       time.Duration(mean),
		Median:     time.Duration(median),
		StdDev:     time.Duration(stdDev),
		Min:        time.Duration(minimum),
		Max:        time.Duration(maximum),
	}, nil
}

func runBenchmarkOnce(log zerolog.Logger, cfg Config, open func() (storage.DB, error)) (elapsed time.Duration, err error) {
	db, err := open()
	if err != nil {
		return 0, fmt.Errorf("could not open db: %w", err)
	}
	defer func() {
		err = multierr.Append(err, db.Close())
	}()

	collector := metrics.NewNoopCollector()
	roots, err := store.NewRelayStorageRoots(collector, collector, db, cfg.MaxStorageRoots)
	if err != nil {
		return 0, err
	}
	provider := validationdata.NewStoredProvider()

	p, err := New(log, cfg, roots, store.NewInherentIncluded(), provider)
	if err != nil {
		return 0, err
	}

	return BenchmarkSetRelayStorageRoot(db, p, provider)
}
