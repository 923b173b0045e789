package bench

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/onflow/relay-storage-roots/cmd/util/cmd/common"
	"github.com/onflow/relay-storage-roots/module/relayroots"
	"github.com/onflow/relay-storage-roots/storage"
)

const (
	flagMaxStorageRoots = "max-storage-roots"
	flagIterations      = "iterations"
)

// Cmd measures the worst case of the relay storage root update: a full
// ledger that must evict its oldest root. Every iteration runs against a
// fresh database created under --datadir and removed afterwards.
var Cmd = &cobra.Command{
	Use:   "bench",
	Short: "benchmark the relay storage root update and suggest its weight",
	RunE:  run,
}

func init() {
	Cmd.Flags().Uint32(flagMaxStorageRoots, relayroots.DefaultMaxStorageRoots,
		"capacity of the ledger under benchmark")
	Cmd.Flags().Int(flagIterations, 10,
		"number of times the benchmark is repeated")
	common.BindFlags(Cmd.Flags())
}

func run(*cobra.Command, []string) error {
	cfg := relayroots.DefaultConfig()
	cfg.MaxStorageRoots = viper.GetUint32(flagMaxStorageRoots)
	err := cfg.Validate()
	if err != nil {
		return err
	}

	backend := viper.GetString(common.FlagBackend)
	baseDir := viper.GetString(common.FlagDatadir)
	err = os.MkdirAll(baseDir, 0700)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", baseDir, err)
	}

	var dirs []string
	defer func() {
		for _, dir := range dirs {
			if err := os.RemoveAll(dir); err != nil {
				log.Warn().Err(err).Str("dir", dir).Msg("could not remove benchmark database")
			}
		}
	}()

	iterations := viper.GetInt(flagIterations)
	bar := progressbar.Default(int64(iterations), "Benchmarking:")

	open := func() (storage.DB, error) {
		_ = bar.Add(1)
		dir, err := os.MkdirTemp(baseDir, "bench-")
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, dir)
		return common.InitStorage(backend, dir)
	}

	log.Info().
		Str("backend", backend).
		Uint32("max_storage_roots", cfg.MaxStorageRoots).
		Int("iterations", iterations).
		Msg("running benchmark")

	result, err := relayroots.RunBenchmark(log.Logger, cfg, iterations, open)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	log.Info().
		Dur("mean", result.Mean).
		Dur("median", result.Median).
		Dur("stddev", result.StdDev).
		Dur("min", result.Min).
		Dur("max", result.Max).
		Msg("benchmark done")

	fmt.Printf("suggested weight: ref_time=%d proof_size=%d\n", result.Weight.RefTime, result.Weight.ProofSize)
	return nil
}
