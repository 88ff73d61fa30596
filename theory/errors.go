package theory

import (
	"errors"
	"fmt"
)

// Kind identifies the class of failure reported by the engine.
type Kind int

const (
	InvalidNoteName Kind = iota + 1
	UnknownNoteValue
	UnknownInterval
	OutOfRange
	InvalidDirection
	UnknownScale
)

func (k Kind) String() string {
	switch k {
	case InvalidNoteName:
		return "invalid note name"
	case UnknownNoteValue:
		return "unknown note value"
	case UnknownInterval:
		return "unknown interval"
	case OutOfRange:
		return "out of range"
	case InvalidDirection:
		return "invalid direction"
	case UnknownScale:
		return "unknown scale"
	default:
		return "unknown error"
	}
}

// Error is returned by every failing engine operation.
type Error struct {
	Kind  Kind
	Op    string // operation that failed, e.g. "ParseNoteName"
	Input string // offending input, formatted with %v
}

func (e *Error) Error() string {
	return fmt.Sprintf("theory: %s: %s: %q", e.Op, e.Kind, e.Input)
}

func newError(kind Kind, op string, input any) *Error {
	return &Error{Kind: kind, Op: op, Input: fmt.Sprint(input)}
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return 0
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
