package protocol

import (
	"encoding/binary"
	"fmt"
)

// buildFrame assembles a complete command frame around cmd and payload:
//
//	[SOF][CMD][LEN][PAYLOAD...][CRC_L][CRC_H][EOF]
//
// The CRC covers CMD through the last payload byte.
func buildFrame(cmd byte, payload []byte) []byte {
	frame := make([]byte, 0, MinFrameSize+len(payload))

	frame = append(frame, StartOfFrame)
	frame = append(frame, cmd)
	frame = append(frame, byte(len(payload)))
	frame = append(frame, payload...)

	crc := Checksum(frame[1:])
	crcBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(crcBytes, crc)
	frame = append(frame, crcBytes...)

	frame = append(frame, EndOfFrame)

	return frame
}

// BuildHandshakeCmd constructs the capability-probe frame sent once
// after opening a session. It carries no payload; the device answers
// with ACK and persists its session context.
//
// Frame structure:
//
//	[SOF][CMD][LEN=0][CRC_L][CRC_H][EOF]
func BuildHandshakeCmd() []byte {
	return buildFrame(CmdHandshake, nil)
}

// BuildSetSegmentCmd constructs a Set Segment command frame for the
// given 0-based segment index and descriptor. Validation happens before
// any bytes are produced; an out-of-range field never reaches the wire.
//
// Frame structure:
//
//	[SOF][CMD][LEN][SEGMENT][DESC0][DESC1][DESC2][CRC_L][CRC_H][EOF]
func BuildSetSegmentCmd(segment int, desc SegmentCommand) ([]byte, error) {
	if segment < 0 || segment > MaxSegmentIndex {
		return nil, fmt.Errorf("segment index %d out of range 0-%d", segment, MaxSegmentIndex)
	}

	data, err := desc.Bytes()
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 0, SegmentPayloadSize)
	payload = append(payload, byte(segment))
	payload = append(payload, data[:]...)

	return buildFrame(CmdSetSegment, payload), nil
}

// BuildSetAudibleCmd constructs a Set Audible command frame.
//
// Frame structure:
//
//	[SOF][CMD][LEN][PATTERN][CRC_L][CRC_H][EOF]
func BuildSetAudibleCmd(pattern Audible) ([]byte, error) {
	if !pattern.Valid() {
		return nil, fmt.Errorf("audible value %d out of range 0-%d", pattern, AudibleSOS)
	}

	return buildFrame(CmdSetAudible, []byte{byte(pattern)}), nil
}

// BuildSetCustomColorCmd constructs a Set Custom Color command frame.
// The RGB triplet controls only the ratio of the colors; brightness is
// controlled separately by intensity. The device persists the value
// across power cycles.
//
// Frame structure:
//
//	[SOF][CMD][LEN][SLOT][R][G][B][CRC_L][CRC_H][EOF]
func BuildSetCustomColorCmd(slot CustomSlot, r, g, b byte) ([]byte, error) {
	if !slot.Valid() {
		return nil, fmt.Errorf("custom color slot %d out of range: must be %d or %d",
			slot, CustomSlot1, CustomSlot2)
	}

	return buildFrame(CmdSetCustomColor, []byte{byte(slot), r, g, b}), nil
}

// BuildSetCustomIntensityCmd constructs a Set Custom Intensity command
// frame. The percent is a duty cycle, 0-100; perceived brightness is
// approximately logarithmic with respect to it. Persisted by the device.
//
// Frame structure:
//
//	[SOF][CMD][LEN][PERCENT][CRC_L][CRC_H][EOF]
func BuildSetCustomIntensityCmd(percent int) ([]byte, error) {
	if percent < 0 || percent > MaxCustomIntensity {
		return nil, fmt.Errorf("intensity percent %d out of range 0-%d", percent, MaxCustomIntensity)
	}

	return buildFrame(CmdSetCustomIntensity, []byte{byte(percent)}), nil
}

// BuildSetCustomSpeedCmd constructs a Set Custom Speed command frame.
// The speed is in dHz, 5-200. Persisted by the device.
//
// Frame structure:
//
//	[SOF][CMD][LEN][DHZ][CRC_L][CRC_H][EOF]
func BuildSetCustomSpeedCmd(dHz int) ([]byte, error) {
	if dHz < MinCustomSpeed || dHz > MaxCustomSpeed {
		return nil, fmt.Errorf("speed %d dHz out of range %d-%d", dHz, MinCustomSpeed, MaxCustomSpeed)
	}

	return buildFrame(CmdSetCustomSpeed, []byte{byte(dHz)}), nil
}
