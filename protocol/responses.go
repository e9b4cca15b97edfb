package protocol

import (
	"encoding/binary"
	"fmt"
)

// ParseResponse validates a device response frame and extracts its
// status byte. Responses are a fixed ResponseFrameSize bytes:
//
//	[SOF][STATUS][CRC_L][CRC_H][EOF]
//
// The CRC covers the status byte. A CRC failure returns a FrameError
// wrapping ErrBadChecksum; any other structural problem returns a
// FrameError with a nil cause.
func ParseResponse(frame []byte) (status byte, err error) {
	if len(frame) != ResponseFrameSize {
		return 0, &FrameError{
			Reason: fmt.Sprintf("got %d bytes, expected %d", len(frame), ResponseFrameSize),
		}
	}

	if frame[0] != StartOfFrame {
		return 0, &FrameError{
			Reason: fmt.Sprintf("start marker 0x%02X, expected 0x%02X", frame[0], StartOfFrame),
		}
	}

	if frame[ResponseFrameSize-1] != EndOfFrame {
		return 0, &FrameError{
			Reason: fmt.Sprintf("end marker 0x%02X, expected 0x%02X",
				frame[ResponseFrameSize-1], EndOfFrame),
		}
	}

	expected := binary.LittleEndian.Uint16(frame[2:4])
	actual := Checksum(frame[1:2])
	if expected != actual {
		return 0, &FrameError{
			Reason: fmt.Sprintf("checksum 0x%04X, expected 0x%04X", actual, expected),
			Cause:  ErrBadChecksum,
		}
	}

	status = frame[1]
	if status != StatusAck && status != StatusNack {
		return 0, &FrameError{
			Reason: fmt.Sprintf("unknown status 0x%02X", status),
		}
	}

	return status, nil
}

// BuildResponse assembles a response frame for the given status byte.
// The device side of the protocol; exported for mock devices and tests.
func BuildResponse(status byte) []byte {
	frame := make([]byte, 0, ResponseFrameSize)
	frame = append(frame, StartOfFrame)
	frame = append(frame, status)

	crcBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(crcBytes, Checksum(frame[1:2]))
	frame = append(frame, crcBytes...)

	frame = append(frame, EndOfFrame)
	return frame
}
