package protocol

import "fmt"

// SegmentCommand describes the full indication state of one segment.
// It is the structured form of the 3-byte descriptor sent on the wire;
// Bytes and DecodeSegment convert between the two without loss.
//
// Fields that the chosen Animation ignores (e.g. Speed for
// AnimationSteady) are still encoded and must hold defined enum values,
// because the device NACKs out-of-range field values regardless of
// applicability.
type SegmentCommand struct {
	// Animation is the indication style.
	Animation SegmentAnimation

	// Color1 is the main indication color.
	Color1 Color

	// Intensity1 is the brightness of Color1.
	Intensity1 Intensity

	// Speed is the animation pace. Ignored by off, steady and half-half.
	Speed Speed

	// FlashPattern is the flashing manner. Only flash and two-color
	// flash use it.
	FlashPattern FlashPattern

	// Color2 is the secondary color for two-color animations.
	Color2 Color

	// Intensity2 is the brightness of Color2.
	Intensity2 Intensity

	// Direction is the rotation direction for rotating animations.
	Direction RotationalDirection
}

// Descriptor bit layout, bit 0 = LSB of the first byte:
//
//	offset  0, width 4: Color 1
//	offset  4, width 3: Intensity 1
//	offset  7, width 1: reserved, encodes 0
//	offset  8, width 3: Animation
//	offset 11, width 2: Speed
//	offset 13, width 3: Flash pattern
//	offset 16, width 4: Color 2
//	offset 20, width 3: Intensity 2
//	offset 23, width 1: Rotation direction

// Validate checks that every field holds a defined enum value.
// A failure here is a caller error; nothing is ever transmitted for an
// invalid command.
func (c SegmentCommand) Validate() error {
	if !c.Color1.Valid() {
		return fmt.Errorf("color 1 value %d out of range 0-%d", c.Color1, ColorCustom2)
	}
	if !c.Intensity1.Valid() {
		return fmt.Errorf("intensity 1 value %d out of range 0-%d", c.Intensity1, IntensityCustom)
	}
	if !c.Animation.Valid() {
		return fmt.Errorf("animation value %d out of range 0-%d", c.Animation, AnimationIntensitySweep)
	}
	if !c.Speed.Valid() {
		return fmt.Errorf("speed value %d out of range 0-%d", c.Speed, SpeedCustom)
	}
	if !c.FlashPattern.Valid() {
		return fmt.Errorf("flash pattern value %d out of range 0-%d", c.FlashPattern, FlashRandom)
	}
	if !c.Color2.Valid() {
		return fmt.Errorf("color 2 value %d out of range 0-%d", c.Color2, ColorCustom2)
	}
	if !c.Intensity2.Valid() {
		return fmt.Errorf("intensity 2 value %d out of range 0-%d", c.Intensity2, IntensityCustom)
	}
	if !c.Direction.Valid() {
		return fmt.Errorf("direction value %d out of range 0-%d", c.Direction, DirectionClockwise)
	}
	return nil
}

// Bytes packs the command into its 3-byte wire descriptor.
// Returns an error if any field is outside its declared bit width.
func (c SegmentCommand) Bytes() ([SegmentDescriptorSize]byte, error) {
	var buf [SegmentDescriptorSize]byte
	if err := c.Validate(); err != nil {
		return buf, err
	}

	// Reserved bit 7 of byte 0 stays zero: Intensity tops out at 4 (3 bits).
	buf[0] = byte(c.Color1) | byte(c.Intensity1)<<4
	buf[1] = byte(c.Animation) | byte(c.Speed)<<3 | byte(c.FlashPattern)<<5
	buf[2] = byte(c.Color2) | byte(c.Intensity2)<<4 | byte(c.Direction)<<7
	return buf, nil
}

// DecodeSegment unpacks a 3-byte wire descriptor into its structured
// form. The reserved bit at offset 7 is read and discarded.
func DecodeSegment(data [SegmentDescriptorSize]byte) SegmentCommand {
	return SegmentCommand{
		Color1:       Color(data[0] & 0x0F),
		Intensity1:   Intensity(data[0] >> 4 & 0x07),
		Animation:    SegmentAnimation(data[1] & 0x07),
		Speed:        Speed(data[1] >> 3 & 0x03),
		FlashPattern: FlashPattern(data[1] >> 5 & 0x07),
		Color2:       Color(data[2] & 0x0F),
		Intensity2:   Intensity(data[2] >> 4 & 0x07),
		Direction:    RotationalDirection(data[2] >> 7 & 0x01),
	}
}
