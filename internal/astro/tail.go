package astro

// Tidal tail curvature as fractions of the tail length. The bend pulls
// the far end further east and north with a slight flare toward Earth,
// matching the NOIRLab imagery of NGC 3628's plume.
const (
	tailBendEast  = 0.06
	tailBendNorth = 0.09
	tailBendDepth = -0.04
)

// TidalTailPoints returns an ordered polyline approximating the tidal
// tail pulled out of a galaxy. The curve starts exactly at anchor and
// extends along the normalized direction for lengthLy, bending
// quadratically away from the straight line.
//
// The construction is purely decorative and fully deterministic: the
// same inputs always produce the same points.
func TidalTailPoints(anchor, direction Vec3, lengthLy float64, n int) []Vec3 {
	if n < 2 {
		n = 2
	}
	dir := direction.Normalized()

	points := make([]Vec3, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		base := anchor.Add(dir.Scale(lengthLy * t))
		bend := Vec3{
			X: tailBendEast * lengthLy * t * t,
			Y: tailBendNorth * lengthLy * t * t,
			Z: tailBendDepth * lengthLy * t * t,
		}
		points[i] = base.Add(bend)
	}
	return points
}
