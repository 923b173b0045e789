package storage

import (
	"io"
)

// Reader is an interface for reading from a storage backend.
type Reader interface {
	// Get gets the value for the given key. It returns ErrNotFound if the DB
	// does not contain the key.
	// other errors are exceptions
	//
	// The caller should not modify the contents of the returned slice, but it is
	// safe to modify the contents of the argument after Get returns. The
	// returned slice will remain valid until the returned Closer is closed.
	// when err == nil, the caller MUST call closer.Close() or a memory leak will occur.
	Get(key []byte) (value []byte, closer io.Closer, err error)
}

// Writer is an interface for batch writing to a storage backend.
// One Writer instance cannot be used concurrently by multiple goroutines.
type Writer interface {
	// Set sets the value for the given key. It overwrites any previous value
	// for that key; a DB is not a multi-map.
	//
	// It is safe to modify the contents of the arguments after Set returns.
	// No errors expected during normal operation
	Set(k, v []byte) error

	// Delete deletes the value for the given key. Deletes are blind all will
	// succeed even if the given key does not exist.
	//
	// It is safe to modify the contents of the arguments after Delete returns.
	// No errors expected during normal operation
	Delete(key []byte) error
}

// ReaderBatchWriter groups the reads and writes of one state transition.
// Unlike a plain batch, the Reader observes the writes made through the
// Writer before they are committed, which lets a block see its own changes.
// Nothing is persisted unless the batch is committed.
type ReaderBatchWriter interface {
	// Reader returns a reader over the committed state overlaid with the
	// pending writes of this batch.
	Reader() Reader

	// Writer returns a writer for adding changes to the batch.
	Writer() Writer

	// AddCallback adds a callback to execute after the batch has been committed
	// or discarded. The error is nil if the commit succeeded.
	// Callbacks run in the order they were added.
	AddCallback(func(error))
}

// DB is an interface for a database store that provides a reader and a writer.
type DB interface {
	// Reader returns a database-backed reader which reads the latest
	// committed global database state
	Reader() Reader

	// WithReaderBatchWriter creates a batch writer and allows the caller to perform
	// atomic batch updates to the database.
	// Any error returned are considered fatal and the batch is not committed.
	WithReaderBatchWriter(func(ReaderBatchWriter) error) error

	// Close closes the database.
	Close() error
}

// OnlyWriter is an adapter to convert a function that takes a Writer
// to a function that takes a ReaderBatchWriter.
func OnlyWriter(fn func(Writer) error) func(ReaderBatchWriter) error {
	return func(rw ReaderBatchWriter) error {
		return fn(rw.Writer())
	}
}
