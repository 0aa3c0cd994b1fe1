package domain

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the service reports.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindProbeTimeout
	KindProbeFailure
	KindStorageError
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindProbeTimeout:
		return "probe_timeout"
	case KindProbeFailure:
		return "probe_failure"
	case KindStorageError:
		return "storage_error"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func E(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the taxonomy kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
