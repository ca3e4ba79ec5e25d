package block

import (
	"errors"
)

// ErrorKind classifies a block device failure. Callers that want to
// distinguish failed reads from failed writes (e.g., to decide whether
// cached data may still be authoritative) should classify errors with
// KindOf() rather than inspecting messages.
type ErrorKind int

const (
	// ErrorKindUnknown is an unclassified failure.
	ErrorKindUnknown ErrorKind = iota
	// ErrorKindRead is a failure to read from the device.
	ErrorKindRead
	// ErrorKindWrite is a failure to write to the device. This
	// includes write-backs of dirty cache entries performed during
	// eviction and flushing.
	ErrorKindWrite
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindRead:
		return "read error"
	case ErrorKindWrite:
		return "write error"
	default:
		return "unknown error"
	}
}

// Error associates an ErrorKind with an underlying cause. The cause is
// conventionally a gRPC status error, so that messages remain
// wrappable with the util package's status helpers.
type Error struct {
	Kind ErrorKind
	Err  error
}

// NewReadError creates an Error with kind ErrorKindRead.
func NewReadError(err error) error {
	return &Error{Kind: ErrorKindRead, Err: err}
}

// NewWriteError creates an Error with kind ErrorKindWrite.
func NewWriteError(err error) error {
	return &Error{Kind: ErrorKindWrite, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind of an error produced by a block device,
// unwrapping as needed. Errors that don't carry a kind are classified
// as ErrorKindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrorKindUnknown
}
