package relay

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// StorageRootLength is the size of a relay chain storage root.
const StorageRootLength = 32

// StorageRoot is the digest summarizing the complete state of the relay chain
// at a given relay block.
type StorageRoot [StorageRootLength]byte

// ZeroStorageRoot is the default (all zero) storage root.
var ZeroStorageRoot = StorageRoot{}

// HexToStorageRoot converts a hex string, with or without 0x prefix, to a StorageRoot.
func HexToStorageRoot(h string) (StorageRoot, error) {
	var root StorageRoot

	b, err := hex.DecodeString(strings.TrimPrefix(h, "0x"))
	if err != nil {
		return root, fmt.Errorf("could not decode storage root hex: %w", err)
	}
	if len(b) != StorageRootLength {
		return root, fmt.Errorf("invalid storage root length: expected %d bytes, got %d", StorageRootLength, len(b))
	}

	copy(root[:], b)
	return root, nil
}

// MustHexToStorageRoot is HexToStorageRoot but panics on malformed input.
func MustHexToStorageRoot(h string) StorageRoot {
	root, err := HexToStorageRoot(h)
	if err != nil {
		panic(err)
	}
	return root
}

// Bytes returns the byte representation of the storage root.
func (r StorageRoot) Bytes() []byte { return r[:] }

// Hex returns the hex string representation of the storage root.
func (r StorageRoot) Hex() string {
	return hex.EncodeToString(r[:])
}

// String returns the 0x prefixed hex representation of the storage root.
func (r StorageRoot) String() string {
	return "0x" + r.Hex()
}

// IsZero returns true if the root is the default (all zero) value.
func (r StorageRoot) IsZero() bool {
	return r == ZeroStorageRoot
}
