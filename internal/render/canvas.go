// Package render defines the rendering surface capability and its
// terminal implementation: a rune canvas with an orbiting camera.
// Scene assembly never draws; views hand the assembled geometry to a
// Surface and the surface decides pixels (cells).
package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/justinom/leo-triplet/internal/astro"
)

// Camera describes the view orientation and zoom for the projection.
// Yaw orbits around the vertical (north) axis, pitch tilts toward or
// away from the viewer. At identity the viewer sits on -Z looking
// toward +Z, with east on the left and north up, matching sky
// orientation.
type Camera struct {
	YawDeg   float64
	PitchDeg float64
	Zoom     float64
}

// Point is one marker handed to the surface.
type Point struct {
	Pos   astro.Vec3
	Glyph rune
	Color lipgloss.Color
	Label string

	// ScreenSpace keeps the marker at constant on-screen size
	// regardless of zoom. Non-screen-space markers grow with zoom
	// using SizeWorld as their radius in world units.
	ScreenSpace bool
	SizeWorld   float64
}

// LineStyle controls polyline drawing.
type LineStyle struct {
	Glyph  rune
	Color  lipgloss.Color
	Dashed bool
}

// Surface is the drawing capability consumed by views. Implementations
// own projection and styling; callers supply world-space geometry.
type Surface interface {
	DrawPoint3D(p Point)
	DrawPolyline3D(points []astro.Vec3, style LineStyle)
	DrawText3D(pos astro.Vec3, text string, color lipgloss.Color)
}

// Canvas is the terminal Surface: a rune grid with per-cell colors.
type Canvas struct {
	width, height int
	cam           Camera
	limit         float64 // world units mapped to the viewport edge

	cells  [][]rune
	colors [][]lipgloss.Color
}

// NewCanvas creates an empty canvas. limit is the world-space radius
// that fills the viewport at zoom 1.0.
func NewCanvas(width, height int, cam Camera, limit float64) *Canvas {
	if cam.Zoom <= 0 {
		cam.Zoom = 1
	}
	if limit <= 0 {
		limit = 1
	}

	c := &Canvas{width: width, height: height, cam: cam, limit: limit}
	c.cells = make([][]rune, height)
	c.colors = make([][]lipgloss.Color, height)
	for y := range c.cells {
		c.cells[y] = make([]rune, width)
		c.colors[y] = make([]lipgloss.Color, width)
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
		}
	}
	return c
}

// scale returns world-to-cell scaling for the current zoom.
func (c *Canvas) scale() float64 {
	half := math.Min(float64(c.width)/2, float64(c.height))
	return half * 0.9 / c.limit * c.cam.Zoom
}

// rotate applies the camera orbit to a world vector.
func (c *Canvas) rotate(v astro.Vec3) astro.Vec3 {
	yaw := c.cam.YawDeg * math.Pi / 180
	pitch := c.cam.PitchDeg * math.Pi / 180

	// Orbit about the vertical axis, then tilt.
	x := v.X*math.Cos(yaw) + v.Z*math.Sin(yaw)
	z := -v.X*math.Sin(yaw) + v.Z*math.Cos(yaw)
	y := v.Y*math.Cos(pitch) - z*math.Sin(pitch)
	z = v.Y*math.Sin(pitch) + z*math.Cos(pitch)

	return astro.Vec3{X: x, Y: y, Z: z}
}

// Project maps a world position to cell coordinates. The second
// return is false when the point falls outside the viewport.
// Terminal cells are roughly twice as tall as wide, so vertical
// placement is compressed by half.
func (c *Canvas) Project(v astro.Vec3) (int, int, bool) {
	r := c.rotate(v)
	s := c.scale()

	// East appears on the left, as on the sky.
	x := c.width/2 - int(math.Round(r.X*s))
	y := c.height/2 - int(math.Round(r.Y*s*0.5))

	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return x, y, false
	}
	return x, y, true
}

// DrawPoint3D implements Surface.
func (c *Canvas) DrawPoint3D(p Point) {
	x, y, ok := c.Project(p.Pos)
	if !ok {
		return
	}

	if !p.ScreenSpace && p.SizeWorld > 0 {
		// World-sized marker: fill a small disc when zoomed in far
		// enough for it to span more than one cell.
		r := p.SizeWorld * c.scale()
		for dy := -int(r / 2); dy <= int(r/2); dy++ {
			for dx := -int(r); dx <= int(r); dx++ {
				c.set(x+dx, y+dy, p.Glyph, p.Color)
			}
		}
	}
	c.set(x, y, p.Glyph, p.Color)

	if p.Label != "" {
		c.writeText(x+2, y, p.Label, p.Color)
	}
}

// DrawPolyline3D implements Surface. Segments are sampled densely
// enough that no cell gap appears at the current zoom.
func (c *Canvas) DrawPolyline3D(points []astro.Vec3, style LineStyle) {
	glyph := style.Glyph
	if glyph == 0 {
		glyph = '·'
	}

	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		steps := c.segmentSteps(a, b)
		for s := 0; s <= steps; s++ {
			if style.Dashed && s%4 >= 2 {
				continue
			}
			t := float64(s) / float64(steps)
			p := a.Add(b.Sub(a).Scale(t))
			if x, y, ok := c.Project(p); ok && c.cells[y][x] == ' ' {
				c.set(x, y, glyph, style.Color)
			}
		}
	}
}

func (c *Canvas) segmentSteps(a, b astro.Vec3) int {
	steps := int(astro.Distance(a, b) * c.scale() * 2)
	if steps < 1 {
		return 1
	}
	if steps > 4*c.width {
		return 4 * c.width
	}
	return steps
}

// DrawText3D implements Surface.
func (c *Canvas) DrawText3D(pos astro.Vec3, text string, color lipgloss.Color) {
	x, y, ok := c.Project(pos)
	if !ok {
		return
	}
	c.writeText(x-len([]rune(text))/2, y, text, color)
}

func (c *Canvas) writeText(x, y int, text string, color lipgloss.Color) {
	if y < 0 || y >= c.height {
		return
	}
	for i, r := range []rune(text) {
		cx := x + i
		if cx < 0 || cx >= c.width {
			continue
		}
		c.cells[y][cx] = r
		c.colors[y][cx] = color
	}
}

func (c *Canvas) set(x, y int, glyph rune, color lipgloss.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = glyph
	c.colors[y][x] = color
}

// CellAt returns the rune at a cell, for tests.
func (c *Canvas) CellAt(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0
	}
	return c.cells[y][x]
}

// Frame renders the canvas to a styled string.
func (c *Canvas) Frame() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			ch := c.cells[y][x]
			if ch == ' ' {
				b.WriteRune(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(c.colors[y][x])
			b.WriteString(style.Render(string(ch)))
		}
		if y < c.height-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
