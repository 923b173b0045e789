package operation

import (
	"github.com/onflow/relay-storage-roots/storage"
)

// SetInherentIncluded marks the mandatory inherent as executed in the current block.
// No errors are expected during normal operation.
func SetInherentIncluded(w storage.Writer) error {
	return UpsertByKey(w, MakePrefix(codeInherentIncluded), true)
}

// InherentIncludedExists returns whether the mandatory inherent was marked as executed.
// No errors are expected during normal operation.
func InherentIncludedExists(r storage.Reader) (bool, error) {
	return KeyExists(r, MakePrefix(codeInherentIncluded))
}

// RemoveInherentIncluded clears the flag. No-op if absent.
// No errors are expected during normal operation.
func RemoveInherentIncluded(w storage.Writer) error {
	return RemoveByKey(w, MakePrefix(codeInherentIncluded))
}
