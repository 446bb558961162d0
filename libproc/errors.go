package libproc

import (
	"errors"
	"fmt"
)

// ErrTooManyElements is returned by list queries before any syscall is
// issued when the requested element count exceeds PathInfoMaxSize.
var ErrTooManyElements = errors.New("requested element count exceeds maximum buffer size")

// QueryError reports a failed libproc call along with the errno
// captured at the call site. Every failure from the kernel surfaces as
// one of these; callers may retry, skip or report as they see fit.
type QueryError struct {
	Op  string // the libproc entry point, e.g. "proc_pidinfo"
	Err error  // captured errno, may be nil if none was reported
}

func (e *QueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s failed", e.Op)
}

func (e *QueryError) Unwrap() error { return e.Err }

// DecodeError reports that a text query returned bytes that are not
// valid UTF-8. It is distinct from QueryError: the kernel answered,
// the answer just isn't text.
type DecodeError struct {
	Op  string
	Raw []byte // the bytes as returned, untouched
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s returned invalid UTF-8 (%d bytes)", e.Op, len(e.Raw))
}
