package relayroots

import (
	"errors"
)

// Event is deposited by the pallet.
type Event interface {
	isRelayRootsEvent()
}

// EventRequestExpirationExecuted is part of the pallet's interface, no call deposits it.
type EventRequestExpirationExecuted struct {
	ID uint8
}

func (EventRequestExpirationExecuted) isRelayRootsEvent() {}

// ErrRequestCounterOverflowed is part of the pallet's interface, no call returns it.
var ErrRequestCounterOverflowed = errors.New("request counter overflowed")
