package common

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/storage"
	"github.com/onflow/relay-storage-roots/storage/badger"
	"github.com/onflow/relay-storage-roots/storage/operation"
	"github.com/onflow/relay-storage-roots/storage/pebble"
)

const (
	BackendPebble = "pebble"
	BackendBadger = "badger"
)

// InitStorage opens the database in dir with the given backend. The stored
// key list is decoded once, so a database written by something else is
// rejected before any command works on it.
func InitStorage(backend string, dir string) (storage.DB, error) {
	switch backend {
	case BackendPebble:
		return pebble.OpenDB(dir, checkKeys)
	case BackendBadger:
		return badger.OpenDB(dir, checkKeys)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// InitStorageFromFlags opens the database selected by the --backend and --datadir flags.
func InitStorageFromFlags() (storage.DB, error) {
	return InitStorage(viper.GetString(FlagBackend), viper.GetString(FlagDatadir))
}

func checkKeys(r storage.Reader) error {
	var keys []relay.BlockNumber
	err := operation.RetrieveRelayStorageRootKeys(r, &keys)
	if err != nil {
		return fmt.Errorf("could not read relay storage root keys: %w", err)
	}
	return nil
}

// DirSize returns the number of bytes taken by the files below dir.
func DirSize(dir string) (int64, error) {
	var size int64
	err := filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		size += info.Size()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("could not walk %s: %w", dir, err)
	}
	return size, nil
}
