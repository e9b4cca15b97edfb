// Package protocol implements the command codec for a TL50-style
// multi-segment tower light.
//
// The package is pure: it builds command frames, packs and unpacks the
// 3-byte segment descriptor, and validates response frames. It never
// touches a transport.
//
// # Frame structure
//
// Commands and responses are framed as:
//
//	Command:  [SOF][CMD][LEN][PAYLOAD...][CRC_L][CRC_H][EOF]
//	Response: [SOF][STATUS][CRC_L][CRC_H][EOF]
//
// Where:
//   - SOF = Start of Frame (0x01)
//   - EOF = End of Frame (0x17)
//   - LEN = payload length in bytes (no payload exceeds 4 bytes)
//   - CRC = CRC-16/MODBUS over CMD/STATUS through the last payload
//     byte, little-endian
//   - STATUS = ACK (0x06) or NACK (0x15)
//
// The vendor documents that the device uses checksummed frames with
// ACK/NACK responses but does not publish the concrete framing, opcodes
// or checksum algorithm. The scheme above is this library's own choice
// and is not claimed to be wire compatible with the physical device.
//
// # Command builders
//
// Use the Build* functions to create command frames:
//
//	frame, err := protocol.BuildSetSegmentCmd(0, desc)
//	frame, err := protocol.BuildSetAudibleCmd(protocol.AudiblePulsed)
//	// ... etc
//
// Every builder validates its inputs against the declared field ranges
// and refuses to produce bytes for an out-of-range value.
//
// # Segment descriptor
//
// SegmentCommand is the structured form of the 24-bit per-segment
// bitfield; SegmentCommand.Bytes and DecodeSegment convert between the
// two. The enum integer values (Color 0-15, SegmentAnimation 0-7,
// Intensity 0-4, Speed 0-3, FlashPattern 0-4, RotationalDirection 0-1,
// Audible 0-3) are the device's wire encoding and must not be changed.
//
// # Response parsing
//
// Use ParseResponse to validate a response frame and extract its status:
//
//	status, err := protocol.ParseResponse(frame)
//	if status == protocol.StatusNack {
//	    // device declined the command
//	}
//
// CRC failures are reported as a FrameError wrapping ErrBadChecksum.
package protocol
