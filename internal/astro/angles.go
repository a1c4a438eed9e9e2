// Package astro provides the coordinate math for placing celestial
// objects in a 3D Cartesian frame centered on Earth.
package astro

import (
	"fmt"
	"math"
)

// RA is a right ascension stored in sexagesimal time units (J2000).
type RA struct {
	H int     // Hours (0-23)
	M int     // Minutes
	S float64 // Seconds
}

// Degrees converts the right ascension to decimal degrees (0-360).
// One hour of RA is 15 degrees.
func (ra RA) Degrees() float64 {
	return (float64(ra.H) + float64(ra.M)/60 + ra.S/3600) * 15
}

// Hours converts the right ascension to decimal hours (0-24).
func (ra RA) Hours() float64 {
	return float64(ra.H) + float64(ra.M)/60 + ra.S/3600
}

// String formats the RA the way catalogs print it, e.g. "11h20m15.0s".
func (ra RA) String() string {
	return fmt.Sprintf("%02dh%02dm%04.1fs", ra.H, ra.M, ra.S)
}

// Dec is a declination stored in sexagesimal arc units (J2000).
// Neg applies to the whole angle, so -0°30′00″ is representable.
type Dec struct {
	Neg bool
	D   int     // Degrees (0-90)
	M   int     // Arcminutes
	S   float64 // Arcseconds
}

// Degrees converts the declination to signed decimal degrees (-90 to +90).
func (d Dec) Degrees() float64 {
	deg := float64(d.D) + float64(d.M)/60 + d.S/3600
	if d.Neg {
		return -deg
	}
	return deg
}

// String formats the declination with a leading sign, e.g. "+12°59′30″".
func (d Dec) String() string {
	sign := "+"
	if d.Neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%02d°%02d′%02.0f″", sign, d.D, d.M, d.S)
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
