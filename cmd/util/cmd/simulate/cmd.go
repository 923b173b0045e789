package simulate

import (
	"context"
	"fmt"

	"github.com/docker/go-units"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/onflow/relay-storage-roots/cmd/util/cmd/common"
	"github.com/onflow/relay-storage-roots/model/inherent"
	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/module"
	"github.com/onflow/relay-storage-roots/module/executive"
	"github.com/onflow/relay-storage-roots/module/irrecoverable"
	"github.com/onflow/relay-storage-roots/module/metrics"
	"github.com/onflow/relay-storage-roots/module/relayroots"
	"github.com/onflow/relay-storage-roots/module/validationdata"
	"github.com/onflow/relay-storage-roots/storage/store"
)

const (
	flagBlocks          = "blocks"
	flagStart           = "start"
	flagSkipInherentAt  = "skip-inherent-at"
	flagMaxStorageRoots = "max-storage-roots"
	flagMetricsPort     = "metrics-port"
)

// Cmd builds and executes blocks against the database. Block n records the
// root of relay block start+n-1. The block given by --skip-inherent-at is
// built without the relay storage roots inherent and gets rejected.
var Cmd = &cobra.Command{
	Use:   "simulate",
	Short: "execute a sequence of blocks recording relay storage roots",
	RunE:  run,
}

func init() {
	Cmd.Flags().Uint64(flagBlocks, 10, "number of blocks to execute")
	Cmd.Flags().Uint32(flagStart, 1, "relay parent number of the first block")
	Cmd.Flags().Uint64(flagSkipInherentAt, 0, "block built without the inherent, 0 for none")
	Cmd.Flags().Uint32(flagMaxStorageRoots, relayroots.DefaultMaxStorageRoots, "capacity of the ledger")
	Cmd.Flags().Uint(flagMetricsPort, 0, "port serving prometheus metrics while simulating, 0 to disable")
	common.BindFlags(Cmd.Flags())
}

func run(*cobra.Command, []string) (err error) {
	db, err := common.InitStorageFromFlags()
	if err != nil {
		return fmt.Errorf("could not open database: %w", err)
	}
	defer func() {
		err = multierr.Append(err, db.Close())
	}()

	registry := prometheus.NewRegistry()
	cacheCollector := metrics.NewCacheCollector(registry)
	ledgerCollector := metrics.NewRelayStorageRootsCollector(registry)
	executiveCollector := metrics.NewExecutiveCollector(registry)

	if port := viper.GetUint(flagMetricsPort); port > 0 {
		server := metrics.NewServer(log.Logger, port, registry, metrics.NewHTTPCollector(registry))
		<-server.Ready()
		defer func() {
			<-server.Done()
		}()
	}

	cfg := relayroots.DefaultConfig()
	cfg.MaxStorageRoots = viper.GetUint32(flagMaxStorageRoots)

	roots, err := store.NewRelayStorageRoots(cacheCollector, ledgerCollector, db, cfg.MaxStorageRoots)
	if err != nil {
		return fmt.Errorf("could not open relay storage roots: %w", err)
	}
	provider := validationdata.NewStoredProvider()
	pallet, err := relayroots.New(log.Logger, cfg, roots, store.NewInherentIncluded(), provider)
	if err != nil {
		return err
	}

	exec, err := executive.New(log.Logger, db, executiveCollector, []module.Pallet{
		&validationDataPallet{writer: provider, start: relay.BlockNumber(viper.GetUint32(flagStart))},
		pallet,
	})
	if err != nil {
		return err
	}

	blocks, err := buildBlocks(exec, viper.GetUint64(flagBlocks), viper.GetUint64(flagSkipInherentAt))
	if err != nil {
		return err
	}

	ctx, cancel, errCh := irrecoverable.WithSignallerAndCancel(context.Background())
	defer cancel()

	executed, rejected, err := importBlocks(ctx, exec, blocks, errCh)
	if err != nil {
		return err
	}

	keys, err := roots.Keys()
	if err != nil {
		return err
	}
	size, err := common.DirSize(viper.GetString(common.FlagDatadir))
	if err != nil {
		return err
	}
	log.Info().
		Str("db_size", units.HumanSize(float64(size))).
		Int("executed", executed).
		Int("rejected", rejected).
		Uint64("last_executed", exec.LastExecuted()).
		Int("recorded_roots", len(keys)).
		Msg("simulation done")

	return nil
}

// buildBlocks builds the blocks 1 to count. Built blocks are checked for
// their inherents, a block failing the check is still returned so that its
// rejection can be observed.
func buildBlocks(exec *executive.Executive, count uint64, skipInherentAt uint64) ([]*executive.Block, error) {
	blocks := make([]*executive.Block, 0, count)
	for number := uint64(1); number <= count; number++ {
		data := inherent.NewData()
		block, err := exec.BuildBlock(number, data, nil)
		if err != nil {
			return nil, fmt.Errorf("could not build block %d: %w", number, err)
		}
		if number == skipInherentAt {
			block.Extrinsics = nil
		}

		result, err := exec.CheckInherents(block, data)
		if err != nil {
			return nil, fmt.Errorf("could not check inherents of block %d: %w", number, err)
		}
		if !result.Ok() {
			log.Warn().Err(result.Err()).Uint64("block", number).Bool("fatal", result.FatalErrorReported()).Msg("inherent check failed")
		}

		blocks = append(blocks, block)
	}
	return blocks, nil
}

func importBlocks(ctx irrecoverable.SignalerContext, exec *executive.Executive, blocks []*executive.Block, errCh <-chan error) (int, int, error) {
	in := make(chan *executive.Block, len(blocks))
	for _, block := range blocks {
		in <- block
	}
	close(in)

	bar := progressbar.Default(int64(len(blocks)), "Importing:")

	executed, rejected := 0, 0
	outcomes := exec.ImportBlocks(ctx, in)
	for {
		select {
		case err := <-errCh:
			return executed, rejected, fmt.Errorf("block import failed: %w", err)
		case outcome, ok := <-outcomes:
			if !ok {
				// a thrown error is delivered before the outcomes are closed
				select {
				case err := <-errCh:
					return executed, rejected, fmt.Errorf("block import failed: %w", err)
				default:
					return executed, rejected, nil
				}
			}
			_ = bar.Add(1)
			if outcome.Err != nil {
				rejected++
				log.Warn().Err(outcome.Err).Uint64("block", outcome.Block.Number).Msg("block rejected")
				continue
			}
			executed++
			log.Info().
				Uint64("block", outcome.Block.Number).
				Str("weight", outcome.Result.Weight.String()).
				Uint64("fees", outcome.Result.Fees).
				Msg("block executed")
		}
	}
}
