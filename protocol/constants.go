package protocol

// Version is the driver library version in major.minor form.
// The most-significant byte is the major version, the least-significant
// byte is the minor version.
const Version uint16 = 0x0100

// Frame structure constants.
const (
	// StartOfFrame is the frame start marker (0x01)
	StartOfFrame = 0x01

	// EndOfFrame is the frame end marker (0x17)
	EndOfFrame = 0x17

	// MinFrameSize is the minimum command frame size in bytes:
	// SOF(1) + CMD(1) + LEN(1) + CRC(2) + EOF(1)
	MinFrameSize = 6

	// ResponseFrameSize is the fixed response frame size in bytes:
	// SOF(1) + STATUS(1) + CRC(2) + EOF(1)
	ResponseFrameSize = 5
)

// Command codes.
const (
	// CmdHandshake probes the device ACK pathway; issued once on session
	// open. The device persists its session context in response.
	CmdHandshake = 0x40

	// CmdSetSegment changes the indication of a single segment.
	// Not retained across power cycles.
	CmdSetSegment = 0x41

	// CmdSetAudible changes the audible segment pattern.
	// Not retained across power cycles.
	CmdSetAudible = 0x42

	// CmdSetCustomColor changes a custom color slot (RGB ratio).
	// Retained across power cycles.
	CmdSetCustomColor = 0x43

	// CmdSetCustomIntensity changes the custom intensity duty cycle.
	// Retained across power cycles.
	CmdSetCustomIntensity = 0x44

	// CmdSetCustomSpeed changes the custom animation speed.
	// Retained across power cycles.
	CmdSetCustomSpeed = 0x45
)

// Response status codes.
const (
	// StatusAck indicates the device accepted the command (ASCII ACK)
	StatusAck = 0x06

	// StatusNack indicates the device declined the command, typically a
	// value out of range or a segment index beyond the installed segment
	// count (ASCII NAK)
	StatusNack = 0x15
)

// Payload sizes per command, excluding framing and checksum.
const (
	// SegmentPayloadSize is segment index (1) + descriptor bytes (3)
	SegmentPayloadSize = 4

	// SegmentDescriptorSize is the bit-packed segment descriptor (3 bytes)
	SegmentDescriptorSize = 3

	// AudiblePayloadSize is the audible pattern code (1 byte)
	AudiblePayloadSize = 1

	// CustomColorPayloadSize is slot (1) + R, G, B (3)
	CustomColorPayloadSize = 4

	// CustomIntensityPayloadSize is the duty cycle percent (1 byte)
	CustomIntensityPayloadSize = 1

	// CustomSpeedPayloadSize is the speed in dHz (1 byte)
	CustomSpeedPayloadSize = 1
)

// Device limits.
const (
	// MaxSegmentIndex is the highest addressable segment (indices 0-9)
	MaxSegmentIndex = 9

	// MinCustomSpeed is the lowest custom speed in dHz
	MinCustomSpeed = 5

	// MaxCustomSpeed is the highest custom speed in dHz
	MaxCustomSpeed = 200

	// MaxCustomIntensity is the highest custom intensity duty cycle percent
	MaxCustomIntensity = 100
)
