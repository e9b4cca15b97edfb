package tl50

import (
	"errors"
	"fmt"
)

// Result classifies the outcome of one command exchange with the
// device. Exactly one Result applies per call; results are never
// combined or nested.
type Result int

const (
	// Success means the device acknowledged the command.
	Success Result = iota

	// PortNotFound means no candidate serial port exists.
	PortNotFound

	// PortOpenFailed means the port exists but could not be claimed,
	// possibly because it is already in use.
	PortOpenFailed

	// WriteFailed means writing the command to the device failed.
	WriteFailed

	// ReadFailed means reading the device response failed or timed out.
	ReadFailed

	// ChecksumMismatch means the response arrived but its checksum did
	// not match, indicating the data may be corrupt.
	ChecksumMismatch

	// Nacked means the device declined the command, typically a value
	// out of range or a segment index beyond the installed segment
	// count.
	Nacked

	// NotInitialized means the session is not in the Active state; open
	// a session before sending.
	NotInitialized
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case PortNotFound:
		return "port not found"
	case PortOpenFailed:
		return "port open failed"
	case WriteFailed:
		return "write failed"
	case ReadFailed:
		return "read failed"
	case ChecksumMismatch:
		return "checksum mismatch"
	case Nacked:
		return "device declined command"
	case NotInitialized:
		return "session not initialized"
	}
	return fmt.Sprintf("result(%d)", int(r))
}

// CommError is the error type returned by all session operations.
// It carries exactly one Result and, for transport-level failures, the
// underlying cause.
type CommError struct {
	// Result classifies the failure
	Result Result

	// Cause is the underlying transport or framing error, if any
	Cause error
}

func (e *CommError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Result, e.Cause)
	}
	return e.Result.String()
}

func (e *CommError) Unwrap() error {
	return e.Cause
}

// ResultOf classifies an error returned by a session operation.
// A nil error is Success. Every session operation returns either nil or
// a *CommError, so the classification is total for session errors.
func ResultOf(err error) Result {
	if err == nil {
		return Success
	}
	var ce *CommError
	if errors.As(err, &ce) {
		return ce.Result
	}
	return ReadFailed
}

func commErr(result Result, cause error) *CommError {
	return &CommError{Result: result, Cause: cause}
}
