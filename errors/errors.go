package errors

import (
	// Go Internal Packages
	stderrors "errors"
	"fmt"
)

// Kind classifies an error by how the caller is expected to react to it.
type Kind uint8

const (
	Other       Kind = iota // Unclassified error
	Invalid                 // Invalid input or configuration
	Internal                // Programming defect, not recoverable
	Unavailable             // Dependency temporarily unreachable
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Internal:
		return "internal"
	case Unavailable:
		return "unavailable"
	default:
		return "other"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// E builds a kinded error wrapping err (which may be nil).
func E(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Msg, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain is an *Error of the given kind.
func Is(kind Kind, err error) bool {
	var e *Error
	for err != nil {
		if !stderrors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}
