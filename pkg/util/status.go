package util

import (
	"fmt"

	"google.golang.org/grpc/status"
)

// StatusWrap prepends a string to the message of an existing error.
func StatusWrap(err error, msg string) error {
	p := status.Convert(err).Proto()
	p.Message = fmt.Sprintf("%s: %s", msg, p.Message)
	return status.ErrorProto(p)
}

// StatusWrapf prepends a formatted string to the message of an existing error.
func StatusWrapf(err error, format string, args ...interface{}) error {
	return StatusWrap(err, fmt.Sprintf(format, args...))
}

// StatusFromMultiple creates a single error object based on multiple
// errors. The status code and message of the first error are retained,
// with the messages of successive errors appended to it.
func StatusFromMultiple(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	p := status.Convert(errs[0]).Proto()
	for _, err := range errs[1:] {
		p.Message += ", " + status.Convert(err).Message()
	}
	return status.ErrorProto(p)
}
