package read

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/onflow/relay-storage-roots/cmd/util/cmd/common"
	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/module/metrics"
	"github.com/onflow/relay-storage-roots/module/relayroots"
	"github.com/onflow/relay-storage-roots/storage/store"
)

const (
	flagHeight          = "height"
	flagMaxStorageRoots = "max-storage-roots"
)

// Cmd prints the recorded relay storage roots.
var Cmd = &cobra.Command{
	Use:   "read",
	Short: "print recorded relay storage roots",
	Long: `print the root recorded for --height, or every recorded relay block
number in arrival order together with its root when no height is given`,
	RunE: run,
}

func init() {
	Cmd.Flags().Int64(flagHeight, -1, "relay block number to print the root of")
	Cmd.Flags().Uint32(flagMaxStorageRoots, relayroots.DefaultMaxStorageRoots, "capacity the ledger was written with")
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

	collector := metrics.NewNoopCollector()
	roots, err := store.NewRelayStorageRoots(collector, collector, db, viper.GetUint32(flagMaxStorageRoots))
	if err != nil {
		return fmt.Errorf("could not open relay storage roots: %w", err)
	}

	height := viper.GetInt64(flagHeight)
	if height >= 0 {
		if height > int64(^uint32(0)) {
			return fmt.Errorf("height %d is not a relay block number", height)
		}
		return printRoot(roots, relay.BlockNumber(height))
	}
	return printAll(roots)
}

func printRoot(roots *store.RelayStorageRoots, number relay.BlockNumber) error {
	root, err := roots.ByNumber(number)
	if err != nil {
		return fmt.Errorf("could not read root of %d: %w", number, err)
	}
	fmt.Printf("%d %s\n", number, root)
	return nil
}

func printAll(roots *store.RelayStorageRoots) error {
	keys, err := roots.Keys()
	if err != nil {
		return err
	}
	log.Info().Int("count", len(keys)).Msg("recorded relay storage roots")

	for _, number := range keys {
		root, err := roots.ByNumber(number)
		if err != nil {
			// every listed number must have a root
			return fmt.Errorf("inconsistent ledger at %d: %w", number, err)
		}
		fmt.Printf("%d %s\n", number, root)
	}
	return nil
}
