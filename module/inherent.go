package module

import (
	"github.com/onflow/relay-storage-roots/model/dispatch"
	"github.com/onflow/relay-storage-roots/model/inherent"
)

// InherentProvider is implemented by pallets whose operations the block
// producer constructs and injects into blocks itself.
type InherentProvider interface {
	// InherentIdentifier is the identifier of the inherent data the provider consumes.
	InherentIdentifier() inherent.Identifier

	// IsInherentRequired returns a non-nil inherent.Error if the provider's inherent
	// must be present in a block built from the given data. The returned error is
	// the one to report when it is missing.
	// No errors are expected during normal operation.
	IsInherentRequired(data *inherent.Data) (inherent.Error, error)

	// CreateInherent constructs the inherent call, or returns nil if no call
	// should be included for the given data.
	CreateInherent(data *inherent.Data) dispatch.Call

	// IsInherent returns whether the call is this provider's inherent.
	IsInherent(call dispatch.Call) bool
}
