package relayroots

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/onflow/relay-storage-roots/model/dispatch"
	"github.com/onflow/relay-storage-roots/model/inherent"
	"github.com/onflow/relay-storage-roots/module"
)

// InherentIdentifier identifies the relay storage root inherent.
var InherentIdentifier = inherent.MakeIdentifier("relsroot")

// MessageInherentRequired is reported when a block lacks the inherent.
const MessageInherentRequired = "Inherent required to set relay storage roots"

// InherentError is the only error the inherent reports. It is always fatal:
// a block without the inherent cannot be valid.
type InherentError struct {
	Other string `cbor:"1,keyasint"`
}

var _ inherent.Error = (*InherentError)(nil)

func NewInherentError(msg string) *InherentError {
	return &InherentError{Other: msg}
}

func (e *InherentError) Error() string {
	return e.Other
}

func (e *InherentError) IsFatal() bool {
	return true
}

// Encode returns the cbor encoding used when the error is exchanged with the host.
func (e *InherentError) Encode() ([]byte, error) {
	b, err := cbor.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("could not encode inherent error: %w", err)
	}
	return b, nil
}

// TryFromInherentData decodes an error reported for the given identifier.
// It returns false if the identifier belongs to another inherent or the
// payload does not decode.
func TryFromInherentData(id inherent.Identifier, payload []byte) (*InherentError, bool) {
	if id != InherentIdentifier {
		return nil, false
	}
	var e InherentError
	err := cbor.Unmarshal(payload, &e)
	if err != nil {
		return nil, false
	}
	return &e, true
}

var _ module.InherentProvider = (*Pallet)(nil)

func (p *Pallet) InherentIdentifier() inherent.Identifier {
	return InherentIdentifier
}

// IsInherentRequired always requires the inherent, whatever the data.
func (p *Pallet) IsInherentRequired(*inherent.Data) (inherent.Error, error) {
	return NewInherentError(MessageInherentRequired), nil
}

// CreateInherent returns the update call. It needs no inherent data, the call
// reads the validation data when it executes.
func (p *Pallet) CreateInherent(*inherent.Data) dispatch.Call {
	return p.newSetRelayStorageRoot()
}

func (p *Pallet) IsInherent(call dispatch.Call) bool {
	_, ok := call.(*SetRelayStorageRoot)
	return ok
}
