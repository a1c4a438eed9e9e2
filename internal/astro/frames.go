package astro

import (
	"fmt"
	"math"
)

// LightYearsPerKpc converts kiloparsecs to light-years.
const LightYearsPerKpc = 3261.56

// Vec3 represents a 3D vector. Positions derived from catalog
// coordinates are expressed in light-years.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit vector in the same direction.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Midpoint returns the point halfway between two vectors.
func Midpoint(a, b Vec3) Vec3 {
	return Vec3{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2, Z: (a.Z + b.Z) / 2}
}

// Distance returns the Euclidean separation between two positions,
// in the same units as the inputs.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Norm()
}

// InvalidCoordinateError reports an input outside the physical range
// accepted by the coordinate transform.
type InvalidCoordinateError struct {
	Field string
	Value float64
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid %s: %g", e.Field, e.Value)
}

// ToCartesian converts equatorial sky coordinates and a distance into
// an Earth-centered Cartesian position.
//
// The frame is the standard equatorial one: X toward the vernal
// equinox, Z toward the north celestial pole, Y completing the
// right-handed set. The result is the unit direction for (RA, Dec)
// scaled by distance, so for fixed angles the direction is invariant
// under distance changes.
func ToCartesian(raDeg, decDeg, distanceLy float64) (Vec3, error) {
	if decDeg < -90 || decDeg > 90 {
		return Vec3{}, &InvalidCoordinateError{Field: "declination", Value: decDeg}
	}
	if distanceLy <= 0 {
		return Vec3{}, &InvalidCoordinateError{Field: "distance", Value: distanceLy}
	}

	ra := degToRad(raDeg)
	dec := degToRad(decDeg)

	return Vec3{
		X: distanceLy * math.Cos(dec) * math.Cos(ra),
		Y: distanceLy * math.Cos(dec) * math.Sin(ra),
		Z: distanceLy * math.Sin(dec),
	}, nil
}

// TangentFrame is a rotation from the equatorial frame into a
// sky-oriented view frame anchored at a boresight direction:
//
//	+X = East on the sky
//	+Y = North on the sky
//	+Z = away from Earth along the boresight
//
// An observer on the -Z axis looking toward +Z sees the sky the way
// reference imagery shows it. The rotation fixes the origin (Earth),
// so Euclidean separations are unchanged.
type TangentFrame struct {
	east, north, out Vec3
}

// NewTangentFrame builds the view frame for a boresight at the given
// equatorial coordinates.
func NewTangentFrame(raDeg, decDeg float64) TangentFrame {
	ra := degToRad(raDeg)
	dec := degToRad(decDeg)

	return TangentFrame{
		east:  Vec3{X: -math.Sin(ra), Y: math.Cos(ra), Z: 0},
		north: Vec3{X: -math.Sin(dec) * math.Cos(ra), Y: -math.Sin(dec) * math.Sin(ra), Z: math.Cos(dec)},
		out:   Vec3{X: math.Cos(dec) * math.Cos(ra), Y: math.Cos(dec) * math.Sin(ra), Z: math.Sin(dec)},
	}
}

// ToView rotates an equatorial-frame vector into the view frame.
func (f TangentFrame) ToView(v Vec3) Vec3 {
	return Vec3{
		X: v.Dot(f.east),
		Y: v.Dot(f.north),
		Z: v.Dot(f.out),
	}
}

// FormatLightYears renders a distance in light-years at a scale
// appropriate for the magnitude, e.g. "205 kly" or "35.0 Mly".
func FormatLightYears(ly float64) string {
	abs := math.Abs(ly)
	switch {
	case abs >= 1e6:
		return fmt.Sprintf("%.1f Mly", ly/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.0f kly", ly/1e3)
	default:
		return fmt.Sprintf("%.0f ly", ly)
	}
}
