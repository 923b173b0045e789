package common

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	FlagDatadir = "datadir"
	FlagBackend = "backend"
)

// InitStorageFlags registers the flags selecting the database.
func InitStorageFlags(flags *pflag.FlagSet) {
	flags.StringP(FlagDatadir, "d", "/var/relay-roots/data", "directory of the relay roots database")
	flags.String(FlagBackend, BackendPebble, "storage backend of the database (pebble, badger)")
}

// BindFlags makes the flags readable through viper, so they can also be
// given as environment variables.
func BindFlags(flags *pflag.FlagSet) {
	err := viper.BindPFlags(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("could not bind flags")
	}
}
