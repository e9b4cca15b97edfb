package protocol

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	t.Run("ack", func(t *testing.T) {
		status, err := ParseResponse(BuildResponse(StatusAck))
		require.NoError(t, err)
		assert.EqualValues(t, StatusAck, status)
	})

	t.Run("nack", func(t *testing.T) {
		status, err := ParseResponse(BuildResponse(StatusNack))
		require.NoError(t, err)
		assert.EqualValues(t, StatusNack, status)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := ParseResponse([]byte{StartOfFrame, StatusAck, EndOfFrame})
		var fe *FrameError
		require.ErrorAs(t, err, &fe)
		assert.NotErrorIs(t, err, ErrBadChecksum)
	})

	t.Run("bad start marker", func(t *testing.T) {
		frame := BuildResponse(StatusAck)
		frame[0] = 0x02
		_, err := ParseResponse(frame)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "start marker")
	})

	t.Run("bad end marker", func(t *testing.T) {
		frame := BuildResponse(StatusAck)
		frame[len(frame)-1] = 0x00
		_, err := ParseResponse(frame)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "end marker")
	})

	t.Run("corrupted checksum", func(t *testing.T) {
		frame := BuildResponse(StatusAck)
		frame[2] ^= 0xFF
		_, err := ParseResponse(frame)
		require.ErrorIs(t, err, ErrBadChecksum)
	})

	t.Run("unknown status with valid checksum", func(t *testing.T) {
		frame := make([]byte, 0, ResponseFrameSize)
		frame = append(frame, StartOfFrame, 0x7F)
		crc := make([]byte, 2)
		binary.LittleEndian.PutUint16(crc, Checksum([]byte{0x7F}))
		frame = append(frame, crc...)
		frame = append(frame, EndOfFrame)

		_, err := ParseResponse(frame)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown status")
		assert.NotErrorIs(t, err, ErrBadChecksum)
	})
}

func TestSingleBitFlipDetection(t *testing.T) {
	// CRC-16/MODBUS catches all single-bit errors; combined with the
	// fixed start/end markers, no one-bit corruption of a response
	// frame may parse successfully.
	for _, status := range []byte{StatusAck, StatusNack} {
		frame := BuildResponse(status)
		for i := range frame {
			for bit := 0; bit < 8; bit++ {
				corrupted := make([]byte, len(frame))
				copy(corrupted, frame)
				corrupted[i] ^= 1 << bit

				_, err := ParseResponse(corrupted)
				require.Error(t, err,
					"flip of byte %d bit %d in status 0x%02X frame went undetected", i, bit, status)
			}
		}
	}
}

func TestCommandFrameBitFlipDetection(t *testing.T) {
	// Same property on the outgoing path: any single-bit corruption of
	// a command frame breaks either a marker or the CRC.
	frame, err := BuildSetSegmentCmd(3, SegmentCommand{
		Animation:  AnimationFlash,
		Color1:     ColorRed,
		Intensity1: IntensityHigh,
		Speed:      SpeedFast,
	})
	require.NoError(t, err)

	verify := func(f []byte) bool {
		if len(f) < MinFrameSize || f[0] != StartOfFrame || f[len(f)-1] != EndOfFrame {
			return false
		}
		if int(f[2]) != len(f)-MinFrameSize {
			return false
		}
		crc := binary.LittleEndian.Uint16(f[len(f)-3 : len(f)-1])
		return crc == Checksum(f[1:len(f)-3])
	}

	require.True(t, verify(frame))

	for i := range frame {
		for bit := 0; bit < 8; bit++ {
			corrupted := make([]byte, len(frame))
			copy(corrupted, frame)
			corrupted[i] ^= 1 << bit
			assert.False(t, verify(corrupted),
				"flip of byte %d bit %d went undetected", i, bit)
		}
	}
}

func TestChecksumDeterministic(t *testing.T) {
	data := []byte{CmdSetSegment, 0x04, 0x00, 0x23, 0x6B, 0x98}
	assert.Equal(t, Checksum(data), Checksum(data))
	assert.NotEqual(t, Checksum(data), Checksum(data[:len(data)-1]))
}
