// Package inherent contains the types exchanged between the block production
// pipeline and the pallets that provide inherents: operations the block
// producer constructs and injects itself rather than receiving from users.
package inherent

import (
	"fmt"
)

// IdentifierLength is the size of an inherent identifier.
const IdentifierLength = 8

// Identifier names the inherent a payload belongs to.
type Identifier [IdentifierLength]byte

// MakeIdentifier converts an 8 character string to an Identifier.
// It panics if the string has a different length.
func MakeIdentifier(s string) Identifier {
	if len(s) != IdentifierLength {
		panic(fmt.Sprintf("inherent identifier must be %d bytes, got %q", IdentifierLength, s))
	}
	var id Identifier
	copy(id[:], s)
	return id
}

func (id Identifier) String() string {
	return string(id[:])
}

// Error is an error reported by an inherent provider. A fatal error means
// the block cannot be considered valid.
type Error interface {
	error
	IsFatal() bool
}

// Data holds the encoded environment data inherents are created from, keyed
// by identifier.
type Data struct {
	data map[Identifier][]byte
}

// NewData returns empty inherent data.
func NewData() *Data {
	return &Data{data: make(map[Identifier][]byte)}
}

// Put stores the payload for the identifier. Returns an error if a payload
// is already present.
func (d *Data) Put(id Identifier, payload []byte) error {
	if _, ok := d.data[id]; ok {
		return fmt.Errorf("inherent data for %s already exists", id)
	}
	d.data[id] = payload
	return nil
}

// Get returns the payload for the identifier.
func (d *Data) Get(id Identifier) ([]byte, bool) {
	if d == nil {
		return nil, false
	}
	payload, ok := d.data[id]
	return payload, ok
}

// Len returns the number of payloads.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.data)
}
