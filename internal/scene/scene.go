// Package scene assembles the render-ready description of the Leo
// Triplet view: positioned markers, the tidal tail polyline, and
// pairwise distance annotations. The assembly is a single stateless
// pass; nothing here draws.
package scene

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/justinom/leo-triplet/internal/astro"
	"github.com/justinom/leo-triplet/internal/catalog"
)

// Marker is one point object handed to the rendering surface.
type Marker struct {
	Name        string
	Pos         astro.Vec3 // view frame, light-years from Earth
	Color       lipgloss.Color
	Magnitude   float64
	VelocityKms float64

	// ScreenSpace requests a constant on-screen marker size
	// independent of camera zoom.
	ScreenSpace bool
}

// Polyline is an ordered sequence of 3D points drawn as a line.
type Polyline struct {
	Points []astro.Vec3
	Color  lipgloss.Color
}

// Annotation labels the separation between two markers, anchored at
// the midpoint of the pair.
type Annotation struct {
	From, To   string
	P1, P2     astro.Vec3
	Mid        astro.Vec3
	DistanceLy float64
	Text       string
}

// Scene is the complete render-ready aggregate. All positions are in
// the sky-oriented view frame: +X east, +Y north, +Z away from Earth,
// Earth at the configured origin.
type Scene struct {
	Earth       Marker
	Galaxies    []Marker
	Center      astro.Vec3 // centroid of the galaxy positions
	Annotations []Annotation
	Tail        Polyline
}

// Config controls scene assembly.
type Config struct {
	EarthPosition astro.Vec3 // origin by convention
	DistanceLy    float64
	TailAnchor    string
	TailDirection astro.Vec3
	TailLengthLy  float64
	TailPoints    int
}

// DefaultConfig returns the assembly configuration for the catalog
// dataset.
func DefaultConfig() Config {
	return Config{
		DistanceLy:    catalog.DistanceLy,
		TailAnchor:    catalog.NameNGC3628,
		TailDirection: catalog.TailDirection,
		TailLengthLy:  catalog.TailLengthLy,
		TailPoints:    12,
	}
}

// Build assembles the scene from catalog objects. Each position is
// derived fresh from the object's angular coordinates and the shared
// distance, rotated into the view frame anchored at the group
// centroid. Transform errors fail the build immediately.
func Build(objects []catalog.Object, cfg Config) (*Scene, error) {
	if len(objects) == 0 {
		return nil, fmt.Errorf("build scene: no objects")
	}

	// Boresight at the mean sky position. The members span well under
	// a degree, so a flat mean of the angles is adequate.
	var sumRA, sumDec float64
	for _, obj := range objects {
		sumRA += obj.RA.Degrees()
		sumDec += obj.Dec.Degrees()
	}
	frame := astro.NewTangentFrame(sumRA/float64(len(objects)), sumDec/float64(len(objects)))

	s := &Scene{
		Earth: Marker{
			Name:        "Earth",
			Pos:         cfg.EarthPosition,
			Color:       catalog.ColorEarth,
			ScreenSpace: true,
		},
	}

	var center astro.Vec3
	for _, obj := range objects {
		eq, err := astro.ToCartesian(obj.RA.Degrees(), obj.Dec.Degrees(), cfg.DistanceLy)
		if err != nil {
			return nil, fmt.Errorf("build scene: %s: %w", obj.Name, err)
		}
		pos := frame.ToView(eq)
		center = center.Add(pos)

		s.Galaxies = append(s.Galaxies, Marker{
			Name:        obj.Name,
			Pos:         pos,
			Color:       obj.Color,
			Magnitude:   obj.Magnitude,
			VelocityKms: obj.VelocityKms,
			ScreenSpace: true,
		})
	}
	s.Center = center.Scale(1 / float64(len(s.Galaxies)))

	// One annotation per unordered pair.
	for i := 0; i < len(s.Galaxies); i++ {
		for j := i + 1; j < len(s.Galaxies); j++ {
			a, b := s.Galaxies[i], s.Galaxies[j]
			d := astro.Distance(a.Pos, b.Pos)
			s.Annotations = append(s.Annotations, Annotation{
				From:       a.Name,
				To:         b.Name,
				P1:         a.Pos,
				P2:         b.Pos,
				Mid:        astro.Midpoint(a.Pos, b.Pos),
				DistanceLy: d,
				Text:       astro.FormatLightYears(d),
			})
		}
	}

	// Tidal tail anchored at its host galaxy.
	anchor, ok := s.galaxy(cfg.TailAnchor)
	if !ok {
		return nil, fmt.Errorf("build scene: tail anchor %q not in dataset", cfg.TailAnchor)
	}
	s.Tail = Polyline{
		Points: astro.TidalTailPoints(anchor.Pos, cfg.TailDirection, cfg.TailLengthLy, cfg.TailPoints),
		Color:  catalog.TailColor,
	}

	return s, nil
}

// galaxy returns the galaxy marker with the given name.
func (s *Scene) galaxy(name string) (Marker, bool) {
	for _, g := range s.Galaxies {
		if g.Name == name {
			return g, true
		}
	}
	return Marker{}, false
}

// Galaxy is the exported lookup used by views.
func (s *Scene) Galaxy(name string) (Marker, bool) {
	return s.galaxy(name)
}
