package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/justinom/leo-triplet/internal/astro"
	"github.com/justinom/leo-triplet/internal/catalog"
)

// SceneExport is the JSON-serializable representation of the scene.
type SceneExport struct {
	DistanceLy  float64            `json:"distance_ly"`
	Earth       PositionExport     `json:"earth"`
	Objects     []ObjectExport     `json:"objects"`
	Separations []SeparationExport `json:"separations"`
	TailAnchor  string             `json:"tail_anchor"`
	Tail        []PositionExport   `json:"tail"`
}

// ObjectExport is a JSON-friendly galaxy with both the raw catalog
// values and the derived position.
type ObjectExport struct {
	Name        string         `json:"name"`
	RA          string         `json:"ra"`
	Dec         string         `json:"dec"`
	RADeg       float64        `json:"ra_deg"`
	DecDeg      float64        `json:"dec_deg"`
	VelocityKms float64        `json:"velocity_kms"`
	Magnitude   float64        `json:"magnitude"`
	Position    PositionExport `json:"position_ly"`
}

// PositionExport is a JSON-friendly 3D position.
type PositionExport struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// SeparationExport is one pairwise distance annotation.
type SeparationExport struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceLy float64 `json:"distance_ly"`
	Display    string  `json:"display"`
}

func positionExport(v astro.Vec3) PositionExport {
	return PositionExport{X: v.X, Y: v.Y, Z: v.Z}
}

// Export converts a built scene plus its source catalog into the
// exportable format.
func Export(s *Scene, objects []catalog.Object, distanceLy float64) *SceneExport {
	out := &SceneExport{
		DistanceLy: distanceLy,
		Earth:      positionExport(s.Earth.Pos),
		TailAnchor: catalog.NameNGC3628,
	}

	for _, g := range s.Galaxies {
		obj, _ := catalog.ByName(objects, g.Name)
		out.Objects = append(out.Objects, ObjectExport{
			Name:        g.Name,
			RA:          obj.RA.String(),
			Dec:         obj.Dec.String(),
			RADeg:       obj.RA.Degrees(),
			DecDeg:      obj.Dec.Degrees(),
			VelocityKms: g.VelocityKms,
			Magnitude:   g.Magnitude,
			Position:    positionExport(g.Pos),
		})
	}

	for _, ann := range s.Annotations {
		out.Separations = append(out.Separations, SeparationExport{
			From:       ann.From,
			To:         ann.To,
			DistanceLy: ann.DistanceLy,
			Display:    ann.Text,
		})
	}

	for _, p := range s.Tail.Points {
		out.Tail = append(out.Tail, positionExport(p))
	}

	return out
}

// WriteJSON writes the export as indented JSON to the given writer.
func (e *SceneExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteSummary writes a plain-text table of the scene to the given
// writer, for headless use.
func WriteSummary(w io.Writer, s *Scene, objects []catalog.Object) {
	fmt.Fprintln(w, "Leo Triplet (Arp 317 / LGG 231) @ 35 Mly")
	fmt.Fprintln(w, strings.Repeat("─", 78))

	fmt.Fprintf(w, "%-10s %-13s %-12s %8s %6s %22s\n",
		"Name", "RA", "Dec", "v km/s", "mag", "position kly (E,N,out)")
	fmt.Fprintln(w, strings.Repeat("─", 78))

	for _, g := range s.Galaxies {
		obj, _ := catalog.ByName(objects, g.Name)
		rel := g.Pos.Sub(s.Center)
		fmt.Fprintf(w, "%-10s %-13s %-12s %8.0f %6.1f %7.0f %6.0f %7.0f\n",
			g.Name, obj.RA.String(), obj.Dec.String(),
			g.VelocityKms, g.Magnitude,
			rel.X/1e3, rel.Y/1e3, rel.Z/1e3)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Separations:")
	for _, ann := range s.Annotations {
		fmt.Fprintf(w, "  %-10s – %-10s %s\n", ann.From, ann.To, ann.Text)
	}

	fmt.Fprintf(w, "\nTidal tail: %d points from %s, %s long\n",
		len(s.Tail.Points), catalog.NameNGC3628,
		astro.FormatLightYears(astro.Distance(s.Tail.Points[0], s.Tail.Points[len(s.Tail.Points)-1])))
	fmt.Fprintln(w, "Positions above are relative to the group centroid; Earth sits at the origin.")
}
