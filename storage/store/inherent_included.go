package store

import (
	"fmt"

	"github.com/onflow/relay-storage-roots/storage"
	"github.com/onflow/relay-storage-roots/storage/operation"
)

// InherentIncluded is the per-block presence flag for the mandatory inherent.
// It is cleared when a block starts, set while the block executes and taken at
// finalization.
type InherentIncluded struct{}

var _ storage.InherentIncluded = (*InherentIncluded)(nil)

func NewInherentIncluded() *InherentIncluded {
	return &InherentIncluded{}
}

func (*InherentIncluded) BatchSet(rw storage.ReaderBatchWriter) error {
	err := operation.SetInherentIncluded(rw.Writer())
	if err != nil {
		return fmt.Errorf("could not set inherent included flag: %w", err)
	}
	return nil
}

func (*InherentIncluded) BatchClear(rw storage.ReaderBatchWriter) error {
	err := operation.RemoveInherentIncluded(rw.Writer())
	if err != nil {
		return fmt.Errorf("could not clear inherent included flag: %w", err)
	}
	return nil
}

func (*InherentIncluded) BatchTake(rw storage.ReaderBatchWriter) (bool, error) {
	set, err := operation.InherentIncludedExists(rw.Reader())
	if err != nil {
		return false, fmt.Errorf("could not check inherent included flag: %w", err)
	}
	if !set {
		return false, nil
	}

	err = operation.RemoveInherentIncluded(rw.Writer())
	if err != nil {
		return false, fmt.Errorf("could not clear inherent included flag: %w", err)
	}
	return true, nil
}

func (*InherentIncluded) IsSet(r storage.Reader) (bool, error) {
	set, err := operation.InherentIncludedExists(r)
	if err != nil {
		return false, fmt.Errorf("could not check inherent included flag: %w", err)
	}
	return set, nil
}
