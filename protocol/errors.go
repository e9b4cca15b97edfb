package protocol

import (
	"errors"
	"fmt"
)

// ErrBadChecksum reports that a response frame's CRC did not match its
// contents. Wrapped by the FrameError returned from ParseResponse so the
// session layer can tell checksum corruption apart from other framing
// damage.
var ErrBadChecksum = errors.New("checksum mismatch")

// FrameError reports a structurally invalid response frame.
type FrameError struct {
	// Reason describes what was wrong with the frame
	Reason string

	// Cause is ErrBadChecksum for CRC failures, nil otherwise
	Cause error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("invalid response frame: %s", e.Reason)
}

func (e *FrameError) Unwrap() error {
	return e.Cause
}
