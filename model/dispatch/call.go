package dispatch

import "errors"

// ErrUnknownCall is returned when a call is dispatched to a pallet it does not belong to.
var ErrUnknownCall = errors.New("unknown call")

// Call is an operation that can be dispatched to a pallet.
type Call interface {
	// Pallet is the name of the pallet the call belongs to.
	Pallet() string
	// Name is the name of the call within its pallet.
	Name() string
	// Info returns the call's declared weight, class and fee policy.
	Info() DispatchInfo
}

// Extrinsic is a call together with the origin it is dispatched from.
type Extrinsic struct {
	Origin Origin
	Call   Call
}
