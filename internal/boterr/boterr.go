// Package boterr defines the closed set of failure kinds reported by the
// configuration store and by calls into the chat platform.
package boterr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// KindIO is a local filesystem read/write failure.
	KindIO Kind = iota + 1
	// KindRemote is a failed or rejected call to the chat platform.
	KindRemote
	// KindSerialize is a failure encoding a value to the config format.
	KindSerialize
	// KindDeserialize is a malformed or incomplete config document.
	KindDeserialize
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindRemote:
		return "remote"
	case KindSerialize:
		return "serialize"
	case KindDeserialize:
		return "deserialize"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a failure tagged with its Kind. Op names the operation that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s failure", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s failure: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// IO wraps err as a KindIO failure.
func IO(op string, err error) error { return newError(KindIO, op, err) }

// Remote wraps err as a KindRemote failure.
func Remote(op string, err error) error { return newError(KindRemote, op, err) }

// Serialize wraps err as a KindSerialize failure.
func Serialize(op string, err error) error { return newError(KindSerialize, op, err) }

// Deserialize wraps err as a KindDeserialize failure.
func Deserialize(op string, err error) error { return newError(KindDeserialize, op, err) }

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
