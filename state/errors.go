package state

import (
	"errors"
	"fmt"
)

// InvalidBlockError is returned when a block violates a state transition rule.
// An invalid block is distinct from a failure of the node itself: it indicates
// a malformed or malicious input, and the host must reject the block and
// discard every state change it made.
type InvalidBlockError struct {
	number uint64
	error
}

func NewInvalidBlockError(number uint64, msg string) error {
	return InvalidBlockError{
		number: number,
		error:  errors.New(msg),
	}
}

func NewInvalidBlockErrorf(number uint64, msg string, args ...interface{}) error {
	return InvalidBlockError{
		number: number,
		error:  fmt.Errorf(msg, args...),
	}
}

// Number returns the number of the rejected block.
func (e InvalidBlockError) Number() uint64 {
	return e.number
}

func (e InvalidBlockError) Error() string {
	return fmt.Sprintf("invalid block %d: %v", e.number, e.error)
}

func (e InvalidBlockError) Unwrap() error {
	return e.error
}

// IsInvalidBlockError returns whether the given error is an InvalidBlockError error
func IsInvalidBlockError(err error) bool {
	var e InvalidBlockError
	return errors.As(err, &e)
}
