package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentRoundTrip(t *testing.T) {
	// Every valid command must survive encode -> decode unchanged: the
	// wire descriptor is the device's only view of the command.
	for c1 := ColorGreen; c1 <= ColorCustom2; c1++ {
		for i1 := IntensityHigh; i1 <= IntensityCustom; i1++ {
			for a := AnimationOff; a <= AnimationIntensitySweep; a++ {
				for sp := SpeedStandard; sp <= SpeedCustom; sp++ {
					for fp := FlashNormal; fp <= FlashRandom; fp++ {
						for d := DirectionCounterClockwise; d <= DirectionClockwise; d++ {
							cmd := SegmentCommand{
								Animation:    a,
								Color1:       c1,
								Intensity1:   i1,
								Speed:        sp,
								FlashPattern: fp,
								Color2:       ColorBlue,
								Intensity2:   IntensityLow,
								Direction:    d,
							}
							data, err := cmd.Bytes()
							require.NoError(t, err)
							require.Equal(t, cmd, DecodeSegment(data))
						}
					}
				}
			}
		}
	}

	// Sweep the secondary color/intensity pair separately to cover the
	// third byte's full range.
	for c2 := ColorGreen; c2 <= ColorCustom2; c2++ {
		for i2 := IntensityHigh; i2 <= IntensityCustom; i2++ {
			cmd := SegmentCommand{
				Animation:  AnimationHalfHalf,
				Color1:     ColorRed,
				Color2:     c2,
				Intensity2: i2,
			}
			data, err := cmd.Bytes()
			require.NoError(t, err)
			require.Equal(t, cmd, DecodeSegment(data))
		}
	}
}

func TestSegmentBitLayout(t *testing.T) {
	tests := []struct {
		name string
		cmd  SegmentCommand
		want [3]byte
	}{
		{
			name: "zero value is green high steady-off",
			cmd:  SegmentCommand{},
			want: [3]byte{0x00, 0x00, 0x00},
		},
		{
			name: "color fills low nibble of first byte",
			cmd:  SegmentCommand{Color1: ColorCustom2},
			want: [3]byte{0x0F, 0x00, 0x00},
		},
		{
			name: "intensity sits at offset 4",
			cmd:  SegmentCommand{Intensity1: IntensityCustom},
			want: [3]byte{0x40, 0x00, 0x00},
		},
		{
			name: "animation speed and pattern share the second byte",
			cmd: SegmentCommand{
				Animation:    AnimationIntensitySweep,
				Speed:        SpeedCustom,
				FlashPattern: FlashRandom,
			},
			want: [3]byte{0x00, 0x9F, 0x00},
		},
		{
			name: "direction is the top bit of the third byte",
			cmd:  SegmentCommand{Direction: DirectionClockwise},
			want: [3]byte{0x00, 0x00, 0x80},
		},
		{
			name: "secondary color pair fills the third byte",
			cmd: SegmentCommand{
				Color2:     ColorWhite,
				Intensity2: IntensityOff,
			},
			want: [3]byte{0x00, 0x00, 0x3D},
		},
		{
			name: "all fields together",
			cmd: SegmentCommand{
				Animation:    AnimationTwoColorFlash,
				Color1:       ColorAmber,
				Intensity1:   IntensityMedium,
				Speed:        SpeedFast,
				FlashPattern: FlashSOS,
				Color2:       ColorSkyBlue,
				Intensity2:   IntensityLow,
				Direction:    DirectionClockwise,
			},
			want: [3]byte{0x23, 0x6B, 0x98},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.cmd.Bytes()
			require.NoError(t, err)
			assert.Equal(t, tt.want, data)
		})
	}
}

func TestReservedBitIgnoredOnDecode(t *testing.T) {
	// Flipping the reserved bit (offset 7) must not change the decoded
	// command.
	for b0 := 0; b0 < 256; b0++ {
		for b1 := 0; b1 < 256; b1 += 7 {
			for b2 := 0; b2 < 256; b2 += 11 {
				plain := [3]byte{byte(b0) &^ 0x80, byte(b1), byte(b2)}
				flipped := [3]byte{byte(b0) | 0x80, byte(b1), byte(b2)}
				require.Equal(t, DecodeSegment(plain), DecodeSegment(flipped))
			}
		}
	}
}

func TestReservedBitEncodesZero(t *testing.T) {
	cmd := SegmentCommand{
		Animation:  AnimationSteady,
		Color1:     ColorCustom2,
		Intensity1: IntensityCustom,
	}
	data, err := cmd.Bytes()
	require.NoError(t, err)
	assert.Zero(t, data[0]&0x80, "reserved bit must encode as 0")
}

func TestSegmentValidation(t *testing.T) {
	valid := SegmentCommand{
		Animation:    AnimationChase,
		Color1:       ColorGreen,
		Intensity1:   IntensityHigh,
		Speed:        SpeedStandard,
		FlashPattern: FlashNormal,
		Color2:       ColorRed,
		Intensity2:   IntensityHigh,
		Direction:    DirectionClockwise,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*SegmentCommand)
		errMsg string
	}{
		{"color 1 out of 4-bit range", func(c *SegmentCommand) { c.Color1 = 16 }, "color 1"},
		{"intensity 1 out of range", func(c *SegmentCommand) { c.Intensity1 = 5 }, "intensity 1"},
		{"animation out of range", func(c *SegmentCommand) { c.Animation = 8 }, "animation"},
		{"speed out of range", func(c *SegmentCommand) { c.Speed = 4 }, "speed"},
		{"flash pattern out of range", func(c *SegmentCommand) { c.FlashPattern = 5 }, "flash pattern"},
		{"color 2 out of range", func(c *SegmentCommand) { c.Color2 = 255 }, "color 2"},
		{"intensity 2 out of range", func(c *SegmentCommand) { c.Intensity2 = 7 }, "intensity 2"},
		{"direction out of range", func(c *SegmentCommand) { c.Direction = 2 }, "direction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := valid
			tt.mutate(&cmd)

			err := cmd.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)

			// Bytes must refuse the same command.
			_, err = cmd.Bytes()
			require.Error(t, err)
		})
	}
}
