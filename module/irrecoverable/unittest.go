package irrecoverable

import (
	"context"
	"errors"
	"testing"
)

// MockSignalerContext fails the test on any thrown error, except the one it
// was told to expect.
type MockSignalerContext struct {
	context.Context
	t           testing.TB
	expectError error
}

var _ SignalerContext = &MockSignalerContext{}

func (m MockSignalerContext) sealed() {}

func (m MockSignalerContext) Throw(err error) {
	if m.expectError != nil && errors.Is(err, m.expectError) {
		return
	}
	m.t.Fatalf("mock signaler context received error: %v", err)
}

func NewMockSignalerContext(t testing.TB, ctx context.Context) *MockSignalerContext {
	return &MockSignalerContext{
		Context: ctx,
		t:       t,
	}
}

func NewMockSignalerContextWithCancel(t testing.TB, parent context.Context) (*MockSignalerContext, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	return NewMockSignalerContext(t, ctx), cancel
}

// NewMockSignalerContextExpectError returns a context that accepts thrown
// errors matching expected with errors.Is, and fails the test on any other.
func NewMockSignalerContextExpectError(t testing.TB, parent context.Context, expected error) *MockSignalerContext {
	return &MockSignalerContext{
		Context:     parent,
		t:           t,
		expectError: expected,
	}
}
