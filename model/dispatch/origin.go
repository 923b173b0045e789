package dispatch

import (
	"errors"
	"fmt"
)

// ErrBadOrigin is returned when an operation is dispatched from an origin it does not accept.
var ErrBadOrigin = errors.New("bad origin")

// OriginKind enumerates the sources an operation can be dispatched from.
type OriginKind uint8

const (
	// OriginKindNone is used by operations the block producer injects itself (inherents).
	OriginKindNone OriginKind = iota
	// OriginKindRoot is the privileged origin.
	OriginKindRoot
	// OriginKindSigned is a user transaction signed by an account.
	OriginKindSigned
)

// Origin is the source an operation is dispatched from.
type Origin struct {
	Kind   OriginKind
	Signer string
}

// NoneOrigin is the origin of inherents.
func NoneOrigin() Origin {
	return Origin{Kind: OriginKindNone}
}

// RootOrigin is the privileged origin.
func RootOrigin() Origin {
	return Origin{Kind: OriginKindRoot}
}

// SignedOrigin is the origin of a transaction signed by the given account.
func SignedOrigin(signer string) Origin {
	return Origin{Kind: OriginKindSigned, Signer: signer}
}

func (o Origin) String() string {
	switch o.Kind {
	case OriginKindNone:
		return "none"
	case OriginKindRoot:
		return "root"
	case OriginKindSigned:
		return fmt.Sprintf("signed(%s)", o.Signer)
	default:
		return "unknown"
	}
}

// EnsureNone returns ErrBadOrigin unless the origin is the unsigned inherent origin.
func EnsureNone(o Origin) error {
	if o.Kind != OriginKindNone {
		return fmt.Errorf("expected none origin, got %s: %w", o, ErrBadOrigin)
	}
	return nil
}
