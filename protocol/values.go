package protocol

import "fmt"

// Color identifies an indication color. The integer values are the
// device's wire encoding and must not be reordered.
type Color byte

const (
	ColorGreen       Color = 0
	ColorRed         Color = 1
	ColorOrange      Color = 2
	ColorAmber       Color = 3
	ColorYellow      Color = 4
	ColorLimeGreen   Color = 5
	ColorSpringGreen Color = 6
	ColorCyan        Color = 7
	ColorSkyBlue     Color = 8
	ColorBlue        Color = 9
	ColorViolet      Color = 10
	ColorMagenta     Color = 11
	ColorRose        Color = 12
	ColorWhite       Color = 13

	// ColorCustom1 indicates with the RGB value stored via SetCustomColor
	// for slot CustomSlot1.
	ColorCustom1 Color = 14

	// ColorCustom2 indicates with the RGB value stored via SetCustomColor
	// for slot CustomSlot2.
	ColorCustom2 Color = 15
)

// Valid reports whether c fits the 4-bit color field.
func (c Color) Valid() bool { return c <= ColorCustom2 }

func (c Color) String() string {
	names := [...]string{
		"green", "red", "orange", "amber", "yellow", "lime green",
		"spring green", "cyan", "sky blue", "blue", "violet", "magenta",
		"rose", "white", "custom 1", "custom 2",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return fmt.Sprintf("color(%d)", byte(c))
}

// SegmentAnimation selects the indication style of a segment.
type SegmentAnimation byte

const (
	// AnimationOff shows no indication.
	AnimationOff SegmentAnimation = 0

	// AnimationSteady shows a single solid color.
	AnimationSteady SegmentAnimation = 1

	// AnimationFlash blinks a single color off and on.
	AnimationFlash SegmentAnimation = 2

	// AnimationTwoColorFlash switches between two different colors.
	AnimationTwoColorFlash SegmentAnimation = 3

	// AnimationHalfHalf splits the indication between two colors.
	AnimationHalfHalf SegmentAnimation = 4

	// AnimationHalfHalfRotate spins the indication, showing two colors.
	AnimationHalfHalfRotate SegmentAnimation = 5

	// AnimationChase travels a colored spot around the segment over a
	// background color.
	AnimationChase SegmentAnimation = 6

	// AnimationIntensitySweep fades from off to bright and back,
	// repeatedly.
	AnimationIntensitySweep SegmentAnimation = 7
)

// Valid reports whether a fits the 3-bit animation field.
func (a SegmentAnimation) Valid() bool { return a <= AnimationIntensitySweep }

func (a SegmentAnimation) String() string {
	names := [...]string{
		"off", "steady", "flash", "two color flash", "half half",
		"half half rotate", "chase", "intensity sweep",
	}
	if int(a) < len(names) {
		return names[a]
	}
	return fmt.Sprintf("animation(%d)", byte(a))
}

// Intensity selects the brightness of indication.
type Intensity byte

const (
	IntensityHigh   Intensity = 0
	IntensityLow    Intensity = 1
	IntensityMedium Intensity = 2
	IntensityOff    Intensity = 3

	// IntensityCustom uses the duty cycle stored via SetCustomIntensity.
	IntensityCustom Intensity = 4
)

// Valid reports whether i fits the 3-bit intensity field.
func (i Intensity) Valid() bool { return i <= IntensityCustom }

func (i Intensity) String() string {
	names := [...]string{"high", "low", "medium", "off", "custom"}
	if int(i) < len(names) {
		return names[i]
	}
	return fmt.Sprintf("intensity(%d)", byte(i))
}

// Speed selects the pace of dynamic animations. Applicable to flash,
// two-color flash, half-half rotate, chase and intensity sweep.
type Speed byte

const (
	SpeedStandard Speed = 0
	SpeedFast     Speed = 1
	SpeedSlow     Speed = 2

	// SpeedCustom uses the dHz value stored via SetCustomSpeed.
	SpeedCustom Speed = 3
)

// Valid reports whether s fits the 2-bit speed field.
func (s Speed) Valid() bool { return s <= SpeedCustom }

func (s Speed) String() string {
	names := [...]string{"standard", "fast", "slow", "custom"}
	if int(s) < len(names) {
		return names[s]
	}
	return fmt.Sprintf("speed(%d)", byte(s))
}

// FlashPattern selects the manner of flashing. Applicable to the flash
// and two-color flash animations.
type FlashPattern byte

const (
	FlashNormal     FlashPattern = 0
	FlashStrobe     FlashPattern = 1
	FlashThreePulse FlashPattern = 2
	FlashSOS        FlashPattern = 3
	FlashRandom     FlashPattern = 4
)

// Valid reports whether p fits the 3-bit pattern field.
func (p FlashPattern) Valid() bool { return p <= FlashRandom }

func (p FlashPattern) String() string {
	names := [...]string{"normal", "strobe", "three pulse", "sos", "random"}
	if int(p) < len(names) {
		return names[p]
	}
	return fmt.Sprintf("flash pattern(%d)", byte(p))
}

// RotationalDirection selects which way dynamic animations progress.
// Mostly for half-half rotate and chase.
type RotationalDirection byte

const (
	DirectionCounterClockwise RotationalDirection = 0
	DirectionClockwise        RotationalDirection = 1
)

// Valid reports whether d fits the 1-bit direction field.
func (d RotationalDirection) Valid() bool { return d <= DirectionClockwise }

func (d RotationalDirection) String() string {
	if d == DirectionCounterClockwise {
		return "counter clockwise"
	}
	if d == DirectionClockwise {
		return "clockwise"
	}
	return fmt.Sprintf("direction(%d)", byte(d))
}

// Audible selects the sound pattern of the audible segment, if present.
type Audible byte

const (
	AudibleOff    Audible = 0
	AudibleSteady Audible = 1
	AudiblePulsed Audible = 2
	AudibleSOS    Audible = 3
)

// Valid reports whether a is a defined audible pattern.
func (a Audible) Valid() bool { return a <= AudibleSOS }

func (a Audible) String() string {
	names := [...]string{"off", "steady", "pulsed", "sos"}
	if int(a) < len(names) {
		return names[a]
	}
	return fmt.Sprintf("audible(%d)", byte(a))
}

// CustomSlot identifies one of the two persisted custom color slots.
type CustomSlot byte

const (
	// CustomSlot1 is the slot used when a segment indicates ColorCustom1.
	CustomSlot1 CustomSlot = 1

	// CustomSlot2 is the slot used when a segment indicates ColorCustom2.
	CustomSlot2 CustomSlot = 2
)

// Valid reports whether s names an existing slot.
func (s CustomSlot) Valid() bool { return s == CustomSlot1 || s == CustomSlot2 }

func (s CustomSlot) String() string {
	switch s {
	case CustomSlot1:
		return "custom 1"
	case CustomSlot2:
		return "custom 2"
	}
	return fmt.Sprintf("slot(%d)", byte(s))
}
