package operation

import (
	"encoding/binary"
	"fmt"

	"github.com/onflow/relay-storage-roots/model/relay"
)

const (
	// codes for the relay storage roots ledger
	codeRelayStorageRoot     = 10 // relay block number -> relay storage root
	codeRelayStorageRootKeys = 11 // relay block numbers in arrival order

	// codes for per-block flags
	codeInherentIncluded = 20 // present while the mandatory inherent has run in the current block

	// codes for environment data supplied by the host
	codePersistedValidationData = 30 // validation data of the block being built (benchmarks and simulation)
)

// MakePrefix returns the key for the given code, with each of the key parts
// appended in their binary (big endian) encoding.
func MakePrefix(code byte, keys ...any) []byte {
	prefix := make([]byte, 1)
	prefix[0] = code
	for _, key := range keys {
		prefix = append(prefix, EncodeKeyPart(key)...)
	}
	return prefix
}

// EncodeKeyPart encodes a key part. Integers are encoded big endian so that
// numerically smaller values sort lexicographically first.
func EncodeKeyPart(v any) []byte {
	switch i := v.(type) {
	case uint8:
		return []byte{i}
	case uint32:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, i)
		return b
	case uint64:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, i)
		return b
	case string:
		return []byte(i)
	case relay.BlockNumber:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, uint32(i))
		return b
	default:
		panic(fmt.Sprintf("unsupported type to convert (%T)", v))
	}
}
