package hanging

// Rotation is the rotation of the item inside an item frame, in steps of 45 degrees.
type Rotation uint8

const (
	RotationNone Rotation = iota
	RotationClockwise45
	RotationClockwise
	RotationClockwise135
	RotationFlipped
	RotationFlipped45
	RotationCounterClockwise
	RotationCounterClockwise45
)

const rotationCount = 8

// RotationFromCode maps the ItemRotation byte of an item frame. Codes outside of the
// enumeration return RotationNone.
func RotationFromCode(code uint8) Rotation {
	if code < rotationCount {
		return Rotation(code)
	}
	return RotationNone
}

// Degrees ...
func (r Rotation) Degrees() float64 {
	return float64(r) * 45
}

// String ...
func (r Rotation) String() string {
	switch r {
	case RotationNone:
		return "none"
	case RotationClockwise45:
		return "clockwise_45"
	case RotationClockwise:
		return "clockwise"
	case RotationClockwise135:
		return "clockwise_135"
	case RotationFlipped:
		return "flipped"
	case RotationFlipped45:
		return "flipped_45"
	case RotationCounterClockwise:
		return "counter_clockwise"
	case RotationCounterClockwise45:
		return "counter_clockwise_45"
	}
	return "unknown"
}
