package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/onflow/relay-storage-roots/cmd/util/cmd/bench"
	"github.com/onflow/relay-storage-roots/cmd/util/cmd/common"
	"github.com/onflow/relay-storage-roots/cmd/util/cmd/read"
	"github.com/onflow/relay-storage-roots/cmd/util/cmd/simulate"
)

const envPrefix = "RELAY_ROOTS"

var (
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "relay-roots",
	Short: "inspect, simulate and benchmark the relay storage roots ledger",
	PersistentPreRunE: func(*cobra.Command, []string) error {
		level, err := zerolog.ParseLevel(viper.GetString("log-level"))
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		zerolog.SetGlobalLevel(level)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error", err)
		os.Exit(1)
	}
}

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVarP(&flagLogLevel, "log-level", "l", "info", "log level (panic, fatal, error, warn, info, debug)")
	common.InitStorageFlags(rootCmd.PersistentFlags())
	common.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(bench.Cmd)
	rootCmd.AddCommand(read.Cmd)
	rootCmd.AddCommand(simulate.Cmd)

	cobra.OnInitialize(initConfig)
}

// initConfig lets every flag be set from the environment, for example
// RELAY_ROOTS_DATADIR for --datadir.
func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
