package storage

import (
	"errors"
)

var (
	// Note: badger.ErrKeyNotFound and pebble.ErrNotFound are the errors returned by the
	// database APIs. Both are converted to storage.ErrNotFound by the storage/operation
	// implementations, so that callers never depend on the underlying database.
	ErrNotFound = errors.New("key not found")

	ErrAlreadyExists = errors.New("key already exists")
)
