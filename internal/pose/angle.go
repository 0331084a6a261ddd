package pose

import (
	"fmt"
	"math"
)

// mod360 reduces degrees into [0, 360). Go's % keeps the sign of the dividend, so the
// result is shifted back up for negative input.
func mod360(degrees int) int {
	d := degrees % 360
	if d < 0 {
		d += 360
	}
	return d
}

// Normalize360 maps any integer angle into [0, 360), the range of cache keys and
// Result.Rotation.
func Normalize360(degrees int) int {
	return mod360(degrees)
}

// Normalize maps any integer angle into the canonical range [-180, 180).
func Normalize(degrees int) int {
	d := mod360(degrees)
	if d >= 180 {
		d -= 360
	}
	return d
}

// IntegerAngle converts a floating-point angle, typically decoded from JSON, into the
// integer degrees the caches accept.
//
// Returns ErrInvalidAngle for NaN, infinities and any value with a fractional part.
func IntegerAngle(degrees float64) (int, error) {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) || degrees != math.Trunc(degrees) {
		return 0, fmt.Errorf("%w: got %v degrees", ErrInvalidAngle, degrees)
	}
	if math.Abs(degrees) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v degrees is out of range", ErrInvalidAngle, degrees)
	}
	return int(degrees), nil
}

// AxisDistance returns the distance in degrees between two axis angles, ignoring
// direction, so the result lies in [0, 90].
func AxisDistance(a, b int) int {
	d := mod360(a-b) % 180
	if d > 90 {
		d = 180 - d
	}
	return d
}

// AngleDistance returns the shortest distance in degrees between two directed angles,
// in [0, 180].
func AngleDistance(a, b int) int {
	d := mod360(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}
