// Package catalog holds the fixed astronomical dataset for the Leo
// Triplet (Arp 317 / LGG 231) and its display attributes.
package catalog

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/justinom/leo-triplet/internal/astro"
)

// Object is one cataloged galaxy. Positions are never stored here;
// they are always derived from RA/Dec and the assumed distance through
// the coordinate transform, so there is no stale derived state.
type Object struct {
	Name        string
	RA          astro.RA
	Dec         astro.Dec
	VelocityKms float64 // heliocentric recession velocity
	Magnitude   float64 // apparent visual magnitude, display only
	Color       lipgloss.Color
}

// Names of the three members, used as stable identifiers.
const (
	NameNGC3628 = "NGC 3628"
	NameM66     = "M66"
	NameM65     = "M65"
)

// DistanceLy is the assumed distance to the group, ~10.7 Mpc per ESO
// VST observations. All three members are pinned to this single shell;
// individual recession velocities are deliberately not converted to
// per-object Hubble-law distances.
const DistanceLy = 35e6

// Tidal tail constants for NGC 3628. The direction is expressed in
// the sky-oriented view frame (+X east, +Y north, +Z away from Earth)
// and matches the plume in the NOIRLab imagery: east and north, tilted
// slightly toward Earth. Length ~86 kpc.
var (
	TailDirection = astro.Vec3{X: 1.0, Y: 0.15, Z: -0.1}
	TailLengthLy  = 86 * astro.LightYearsPerKpc
	TailColor     = lipgloss.Color("#888888")
)

// Display colors for non-galaxy scene elements.
var (
	ColorCenter   = lipgloss.Color("#FFD700")
	ColorEarth    = lipgloss.Color("#FF8C00")
	ColorTriangle = lipgloss.Color("#9370DB")
)

// LeoTriplet returns the three member galaxies. RA/Dec and velocities
// are J2000 values from the NASA/IPAC Extragalactic Database.
func LeoTriplet() []Object {
	return []Object{
		{
			Name:        NameNGC3628,
			RA:          astro.RA{H: 11, M: 20, S: 17.0},
			Dec:         astro.Dec{D: 13, M: 35, S: 23},
			VelocityKms: 843,
			Magnitude:   10.2,
			Color:       lipgloss.Color("#2E8B57"),
		},
		{
			Name:        NameM66,
			RA:          astro.RA{H: 11, M: 20, S: 15.0},
			Dec:         astro.Dec{D: 12, M: 59, S: 30},
			VelocityKms: 727,
			Magnitude:   8.9,
			Color:       lipgloss.Color("#DC143C"),
		},
		{
			Name:        NameM65,
			RA:          astro.RA{H: 11, M: 18, S: 56.0},
			Dec:         astro.Dec{D: 13, M: 5, S: 32},
			VelocityKms: 807,
			Magnitude:   9.3,
			Color:       lipgloss.Color("#1E90FF"),
		},
	}
}

// ByName returns the object with the given name, if present.
func ByName(objects []Object, name string) (Object, bool) {
	for _, obj := range objects {
		if obj.Name == name {
			return obj, true
		}
	}
	return Object{}, false
}
