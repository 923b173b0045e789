package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onflow/relay-storage-roots/model/relay"
	"github.com/onflow/relay-storage-roots/storage/operation"
)

func TestMakePrefix(t *testing.T) {
	assert.Equal(t, []byte{0x0a}, operation.MakePrefix(0x0a))
	assert.Equal(t, []byte{0x0a, 0x00, 0x00, 0x01, 0x02}, operation.MakePrefix(0x0a, relay.BlockNumber(258)))
	assert.Equal(t, []byte{0x0a, 0x00, 0x00, 0x01, 0x02}, operation.MakePrefix(0x0a, uint32(258)))
	assert.Equal(t, []byte{0x0a, 0x07, 'a', 'b'}, operation.MakePrefix(0x0a, uint8(7), "ab"))
	assert.Equal(t, []byte{0x0a, 0, 0, 0, 0, 0, 0, 0, 0x05}, operation.MakePrefix(0x0a, uint64(5)))

	assert.Panics(t, func() {
		operation.MakePrefix(0x0a, 1.5)
	})
}
