package ledger

import (
	"errors"
	"fmt"
)

type ErrKind string

const (
	KindNotFound ErrKind = "not_found"
	KindTimeout  ErrKind = "timeout"
	KindNetwork  ErrKind = "network"
)

// Error is the value every client operation returns on remote failure.
// Callers branch on the kind instead of inspecting transport errors.
type Error struct {
	Kind ErrKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ledger: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("ledger: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func isKind(err error, kind ErrKind) bool {
	var lerr *Error
	return errors.As(err, &lerr) && lerr.Kind == kind
}

func IsNotFound(err error) bool {
	return isKind(err, KindNotFound)
}

func IsTimeout(err error) bool {
	return isKind(err, KindTimeout)
}

func IsNetwork(err error) bool {
	return isKind(err, KindNetwork)
}
