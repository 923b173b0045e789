package pebbleimpl

import (
	"fmt"

	"github.com/cockroachdb/pebble"

	"github.com/onflow/relay-storage-roots/storage"
	op "github.com/onflow/relay-storage-roots/storage/operation"
)

// ReaderBatchWriter buffers writes in an indexed pebble batch. Reads through
// Reader() observe the pending writes of the batch on top of the committed state.
type ReaderBatchWriter struct {
	batch *pebble.Batch

	callbacks op.Callbacks
}

var _ storage.ReaderBatchWriter = (*ReaderBatchWriter)(nil)

func (b *ReaderBatchWriter) Reader() storage.Reader {
	return dbReader{db: b.batch}
}

func (b *ReaderBatchWriter) Writer() storage.Writer {
	return b
}

func (b *ReaderBatchWriter) AddCallback(callback func(error)) {
	b.callbacks.AddCallback(callback)
}

func (b *ReaderBatchWriter) Commit() error {
	err := b.batch.Commit(pebble.Sync)

	b.callbacks.NotifyCallbacks(err)

	return err
}

// Discard drops the pending writes without applying them.
func (b *ReaderBatchWriter) Discard() error {
	return b.batch.Close()
}

func WithReaderBatchWriter(db *pebble.DB, fn func(storage.ReaderBatchWriter) error) error {
	batch := NewReaderBatchWriter(db)

	err := fn(batch)
	if err != nil {
		// callbacks may release resources held while the batch was built,
		// so they are notified of the failure as well.
		batch.callbacks.NotifyCallbacks(err)
		if closeErr := batch.Discard(); closeErr != nil {
			return fmt.Errorf("could not discard batch (%v): %w", closeErr, err)
		}
		return err
	}

	err = batch.Commit()
	if err != nil {
		return fmt.Errorf("could not commit batch: %w", err)
	}
	return batch.Discard()
}

func NewReaderBatchWriter(db *pebble.DB) *ReaderBatchWriter {
	return &ReaderBatchWriter{
		batch: db.NewIndexedBatch(),
	}
}

var _ storage.Writer = (*ReaderBatchWriter)(nil)

func (b *ReaderBatchWriter) Set(key, value []byte) error {
	return b.batch.Set(key, value, pebble.Sync)
}

func (b *ReaderBatchWriter) Delete(key []byte) error {
	return b.batch.Delete(key, pebble.Sync)
}
