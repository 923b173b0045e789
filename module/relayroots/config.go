package relayroots

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/onflow/relay-storage-roots/model/dispatch"
)

// DefaultMaxStorageRoots is the number of relay storage roots kept by default.
const DefaultMaxStorageRoots uint32 = 30

// Config is fixed when the pallet is created.
type Config struct {
	// MaxStorageRoots is the number of relay storage roots kept before the
	// oldest one is evicted. Must be positive.
	MaxStorageRoots uint32 `validate:"gt=0"`
	// Weights declares the cost of the pallet's calls.
	Weights WeightInfo `validate:"required"`
	// DbWeight prices the database accesses of the block hooks.
	DbWeight dispatch.RuntimeDbWeight
}

func DefaultConfig() Config {
	return Config{
		MaxStorageRoots: DefaultMaxStorageRoots,
		Weights:         NewDefaultWeights(dispatch.RocksDbWeight),
		DbWeight:        dispatch.RocksDbWeight,
	}
}

var validate = validator.New()

// Validate returns an error if the config cannot be used. The error wraps the
// validator.ValidationErrors naming the offending fields.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err != nil {
		return fmt.Errorf("invalid relay storage roots config: %w", err)
	}
	return nil
}
