package irrecoverable

import (
	"context"
	"runtime"
)

// Signaler forwards irrecoverable errors to the goroutine supervising the node.
type Signaler struct {
	errors chan<- error
}

func NewSignaler(errors chan<- error) *Signaler {
	return &Signaler{errors}
}

// Throw is a narrow drop-in replacement for panic, log.Fatal, log.Panic, etc
// anywhere there's something connected to the error channel.
// It terminates the calling goroutine.
func (e *Signaler) Throw(err error) {
	e.errors <- err
	runtime.Goexit()
}

// SignalerContext is a context.Context that can also throw irrecoverable errors.
type SignalerContext interface {
	context.Context
	Throw(err error) // delegates to the signaler
	sealed()         // private, to constrain builder to using WithSignaler
}

type signalerCtxt struct {
	context.Context
	signaler *Signaler
}

func (sc signalerCtxt) sealed() {}

func (sc signalerCtxt) Throw(err error) {
	sc.signaler.Throw(err)
}

// WithSignaler is the only way of getting a SignalerContext.
func WithSignaler(ctx context.Context, sig *Signaler) SignalerContext {
	return signalerCtxt{ctx, sig}
}

// WithSignallerAndCancel returns a SignalerContext that is canceled when the
// returned cancel function is called, together with the channel thrown errors
// are delivered on.
func WithSignallerAndCancel(ctx context.Context) (SignalerContext, context.CancelFunc, <-chan error) {
	parent, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	return WithSignaler(parent, NewSignaler(errCh)), cancel, errCh
}
