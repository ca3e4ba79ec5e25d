package storage

import (
	"errors"

	"github.com/Thog/kfs-libfs/pkg/block"
)

// ErrorKind classifies a storage device failure. The kinds mirror
// those of the block layer, so that the classification of a failure
// survives the translation from block to byte granularity.
type ErrorKind int

const (
	// ErrorKindUnknown is an unclassified failure.
	ErrorKindUnknown ErrorKind = iota
	// ErrorKindRead is a failure to read from the device.
	ErrorKindRead
	// ErrorKindWrite is a failure to write to the device.
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

// Error associates an ErrorKind with an underlying cause.
type Error struct {
	Kind ErrorKind
	Err  error
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

// KindOf returns the ErrorKind of an error produced by a storage
// device, unwrapping as needed. Errors that don't carry a kind are
// classified as ErrorKindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrorKindUnknown
}

// ConvertBlockError translates an error produced by a block device to
// its storage level equivalent. The kind is mapped one to one; the
// original error is retained as the cause.
func ConvertBlockError(err error) error {
	if err == nil {
		return nil
	}
	switch block.KindOf(err) {
	case block.ErrorKindRead:
		return &Error{Kind: ErrorKindRead, Err: err}
	case block.ErrorKindWrite:
		return &Error{Kind: ErrorKindWrite, Err: err}
	default:
		return &Error{Kind: ErrorKindUnknown, Err: err}
	}
}
