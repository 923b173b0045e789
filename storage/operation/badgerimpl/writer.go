package badgerimpl

import (
	"io"

	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/relay-storage-roots/storage"
	op "github.com/onflow/relay-storage-roots/storage/operation"
)

// ReaderBatchWriter buffers writes in a read-write badger transaction. Reads
// through Reader() observe the pending writes of the transaction.
type ReaderBatchWriter struct {
	txn *badger.Txn

	callbacks op.Callbacks
}

var _ storage.ReaderBatchWriter = (*ReaderBatchWriter)(nil)

func (b *ReaderBatchWriter) Reader() storage.Reader {
	return txnReader{txn: b.txn}
}

func (b *ReaderBatchWriter) Writer() storage.Writer {
	return b
}

func (b *ReaderBatchWriter) AddCallback(callback func(error)) {
	b.callbacks.AddCallback(callback)
}

func (b *ReaderBatchWriter) Commit() error {
	err := b.txn.Commit()

	b.callbacks.NotifyCallbacks(err)

	return err
}

// Discard drops the pending writes without applying them. It is safe to call
// after Commit.
func (b *ReaderBatchWriter) Discard() {
	b.txn.Discard()
}

func WithReaderBatchWriter(db *badger.DB, fn func(storage.ReaderBatchWriter) error) error {
	batch := NewReaderBatchWriter(db)
	defer batch.Discard()

	err := fn(batch)
	if err != nil {
		// callbacks may release resources held while the batch was built,
		// so they are notified of the failure as well.
		batch.callbacks.NotifyCallbacks(err)
		return err
	}

	return batch.Commit()
}

func NewReaderBatchWriter(db *badger.DB) *ReaderBatchWriter {
	return &ReaderBatchWriter{
		txn: db.NewTransaction(true),
	}
}

var _ storage.Writer = (*ReaderBatchWriter)(nil)

func (b *ReaderBatchWriter) Set(key, value []byte) error {
	return b.txn.Set(key, value)
}

func (b *ReaderBatchWriter) Delete(key []byte) error {
	return b.txn.Delete(key)
}

type txnReader struct {
	txn *badger.Txn
}

func (r txnReader) Get(key []byte) ([]byte, io.Closer, error) {
	return get(r.txn, key)
}
