package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justinom/leo-triplet/internal/astro"
	"github.com/justinom/leo-triplet/internal/catalog"
	"github.com/justinom/leo-triplet/internal/config"
	"github.com/justinom/leo-triplet/internal/render"
	"github.com/justinom/leo-triplet/internal/scene"
)

// LabelMode controls which markers carry name labels.
type LabelMode int

const (
	LabelNone LabelMode = iota
	LabelFocused
	LabelAll
)

func (m LabelMode) String() string {
	switch m {
	case LabelNone:
		return "OFF"
	case LabelFocused:
		return "FOCUS"
	default:
		return "ALL"
	}
}

// Display-frame constants, in kly. The view re-centers on the group
// centroid so the triplet fills the frame instead of sitting 35 Mly
// down the depth axis.
const (
	// axisLimitKly is the world radius mapped to the viewport edge at
	// zoom 1.0 (roughly 150 kpc).
	axisLimitKly = 490.0

	// earthMarkerDepthKly places the Earth direction marker at the
	// near edge of the display cube. Earth's true position is 35 Mly
	// behind it; the marker shows the line of sight, not the distance.
	earthMarkerDepthKly = -axisLimitKly

	// velocityDepthKlyPerKms exaggerates line-of-sight depth from the
	// recession velocity spread, applied to markers only.
	velocityDepthKlyPerKms = 0.326
)

var zoomLevels = []float64{0.25, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0, 5.0, 10.0}

const defaultZoomIdx = 3 // 1.0

// SpaceViewModel is the interactive 3D view of the triplet.
type SpaceViewModel struct {
	width  int
	height int

	scene   *scene.Scene
	objects []catalog.Object

	yawDeg   float64
	pitchDeg float64
	zoomIdx  int

	dragging bool
	dragX    int
	dragY    int

	labelMode    LabelMode
	showTail     bool
	showTriangle bool
	showEarth    bool
	focusIdx     int // index into scene.Galaxies, -1 when unfocused

	rotateStep float64
	mouseSens  float64

	meanVelocity float64
}

// NewSpaceViewModel creates the space view for an assembled scene.
func NewSpaceViewModel(s *scene.Scene, objects []catalog.Object, disp config.Display) SpaceViewModel {
	var sumV float64
	for _, g := range s.Galaxies {
		sumV += g.VelocityKms
	}
	meanV := 0.0
	if len(s.Galaxies) > 0 {
		meanV = sumV / float64(len(s.Galaxies))
	}

	labelMode := LabelAll
	switch disp.Labels {
	case "off":
		labelMode = LabelNone
	case "focus":
		labelMode = LabelFocused
	}

	return SpaceViewModel{
		scene:        s,
		objects:      objects,
		zoomIdx:      defaultZoomIdx,
		labelMode:    labelMode,
		showTail:     disp.ShowTail,
		showTriangle: disp.ShowTriangle,
		showEarth:    disp.ShowEarth,
		focusIdx:     -1,
		rotateStep:   disp.RotateStepDeg,
		mouseSens:    disp.MouseSensitivity,
		meanVelocity: meanV,
	}
}

// SetSize updates the viewport dimensions.
func (m SpaceViewModel) SetSize(width, height int) SpaceViewModel {
	m.width = width
	m.height = height
	return m
}

// Update handles input for the space view.
func (m SpaceViewModel) Update(msg tea.Msg) (SpaceViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg), nil
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}
	return m, nil
}

func (m SpaceViewModel) handleKey(msg tea.KeyMsg) SpaceViewModel {
	switch msg.String() {
	case "left":
		m.yawDeg -= m.rotateStep
	case "right":
		m.yawDeg += m.rotateStep
	case "up":
		m.pitchDeg = clamp(m.pitchDeg+m.rotateStep, -89, 89)
	case "down":
		m.pitchDeg = clamp(m.pitchDeg-m.rotateStep, -89, 89)

	case "+", "=":
		m = m.zoomIn()
	case "-", "_":
		m = m.zoomOut()
	case "0":
		m.zoomIdx = defaultZoomIdx

	case "r":
		m.yawDeg, m.pitchDeg = 0, 0
		m.zoomIdx = defaultZoomIdx

	case "l":
		m.labelMode = (m.labelMode + 1) % 3

	case "t":
		m.showTail = !m.showTail
	case "g":
		m.showTriangle = !m.showTriangle
	case "e":
		m.showEarth = !m.showEarth

	case "j":
		m.focusIdx = m.cycleFocus(1)
	case "k":
		m.focusIdx = m.cycleFocus(-1)
	case "esc":
		m.focusIdx = -1
	}
	return m
}

func (m SpaceViewModel) handleMouse(msg tea.MouseMsg) SpaceViewModel {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.zoomIn()
	case tea.MouseButtonWheelDown:
		return m.zoomOut()
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.dragging = true
			m.dragX, m.dragY = msg.X, msg.Y
		}

	case tea.MouseActionMotion:
		if m.dragging {
			dx := msg.X - m.dragX
			dy := msg.Y - m.dragY
			m.dragX, m.dragY = msg.X, msg.Y

			// Dragging right orbits east toward the viewer; terminal
			// cells are tall, so vertical motion counts double.
			m.yawDeg += float64(dx) * m.mouseSens
			m.pitchDeg = clamp(m.pitchDeg-float64(dy)*m.mouseSens*2, -89, 89)
		}

	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m
}

func (m SpaceViewModel) zoomIn() SpaceViewModel {
	if m.zoomIdx < len(zoomLevels)-1 {
		m.zoomIdx++
	}
	return m
}

func (m SpaceViewModel) zoomOut() SpaceViewModel {
	if m.zoomIdx > 0 {
		m.zoomIdx--
	}
	return m
}

func (m SpaceViewModel) cycleFocus(step int) int {
	n := len(m.scene.Galaxies)
	if n == 0 {
		return -1
	}
	// Unfocused cycles in at either end.
	if m.focusIdx < 0 {
		if step > 0 {
			return 0
		}
		return n - 1
	}
	next := m.focusIdx + step
	if next < 0 || next >= n {
		return -1
	}
	return next
}

// Zoom returns the current zoom factor.
func (m SpaceViewModel) Zoom() float64 {
	return zoomLevels[m.zoomIdx]
}

// displayPos maps a scene position (ly from Earth) into the display
// frame: kly relative to the group centroid, with the velocity depth
// cue added for named galaxies.
func (m SpaceViewModel) displayPos(name string, pos astro.Vec3) astro.Vec3 {
	rel := pos.Sub(m.scene.Center).Scale(1.0 / 1000.0)
	if g, ok := m.scene.Galaxy(name); ok {
		rel.Z += (g.VelocityKms - m.meanVelocity) * velocityDepthKlyPerKms
	}
	return rel
}

// View renders the space view.
func (m SpaceViewModel) View() string {
	if m.width < 20 || m.height < 8 {
		return "Terminal too small."
	}

	hud := m.renderHUD()
	hudLines := strings.Count(hud, "\n") + 1
	canvasHeight := m.height - hudLines
	if canvasHeight < 4 {
		canvasHeight = 4
	}

	cam := render.Camera{YawDeg: m.yawDeg, PitchDeg: m.pitchDeg, Zoom: m.Zoom()}
	canvas := render.NewCanvas(m.width, canvasHeight, cam, axisLimitKly)
	m.draw(canvas)

	return canvas.Frame() + "\n" + hud
}

// draw paints the scene back to front: lines first, then text, then
// markers so markers always win their cell.
func (m SpaceViewModel) draw(surface render.Surface) {
	if m.showTail {
		pts := make([]astro.Vec3, len(m.scene.Tail.Points))
		for i, p := range m.scene.Tail.Points {
			pts[i] = m.displayPos(catalog.NameNGC3628, p)
		}
		surface.DrawPolyline3D(pts, render.LineStyle{Glyph: '·', Color: m.scene.Tail.Color})
	}

	if m.showEarth {
		earthPos := astro.Vec3{Z: earthMarkerDepthKly}
		// Sight lines from the Earth direction to each member.
		for _, g := range m.scene.Galaxies {
			surface.DrawPolyline3D(
				[]astro.Vec3{earthPos, m.displayPos(g.Name, g.Pos)},
				render.LineStyle{Glyph: '.', Color: catalog.ColorEarth, Dashed: true},
			)
		}
		surface.DrawPoint3D(render.Point{
			Pos:         earthPos,
			Glyph:       '◉',
			Color:       catalog.ColorEarth,
			Label:       m.labelFor("Earth"),
			ScreenSpace: true,
		})
	}

	if m.showTriangle {
		for _, ann := range m.scene.Annotations {
			p1 := m.displayPos(ann.From, ann.P1)
			p2 := m.displayPos(ann.To, ann.P2)
			surface.DrawPolyline3D(
				[]astro.Vec3{p1, p2},
				render.LineStyle{Glyph: '·', Color: catalog.ColorTriangle, Dashed: true},
			)
			surface.DrawText3D(astro.Midpoint(p1, p2), ann.Text, catalog.ColorTriangle)
		}
	}

	surface.DrawPoint3D(render.Point{
		Pos:         m.displayPos("", m.scene.Center),
		Glyph:       '+',
		Color:       catalog.ColorCenter,
		Label:       m.labelFor("center"),
		ScreenSpace: true,
	})

	for i, g := range m.scene.Galaxies {
		glyph := '●'
		if i == m.focusIdx {
			glyph = '◎'
		}
		surface.DrawPoint3D(render.Point{
			Pos:         m.displayPos(g.Name, g.Pos),
			Glyph:       glyph,
			Color:       g.Color,
			Label:       m.labelForGalaxy(i, g.Name),
			ScreenSpace: g.ScreenSpace,
		})
	}
}

func (m SpaceViewModel) labelFor(name string) string {
	if m.labelMode == LabelAll {
		return name
	}
	return ""
}

func (m SpaceViewModel) labelForGalaxy(idx int, name string) string {
	switch m.labelMode {
	case LabelAll:
		return name
	case LabelFocused:
		if idx == m.focusIdx {
			return name
		}
	}
	return ""
}

func (m SpaceViewModel) renderHUD() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	cam := fmt.Sprintf("yaw %+.0f° pitch %+.0f° zoom %.2gx", m.yawDeg, m.pitchDeg, m.Zoom())
	layers := fmt.Sprintf("tail:%s triangle:%s earth:%s labels:%s",
		onOff(m.showTail), onOff(m.showTriangle), onOff(m.showEarth), m.labelMode)

	line1 := "  " + labelStyle.Render("view ") + valueStyle.Render(cam) +
		labelStyle.Render("  ") + valueStyle.Render(layers)

	line2 := "  " + labelStyle.Render("focus ") + valueStyle.Render(m.focusLine())
	return line1 + "\n" + line2
}

// focusLine describes the focused galaxy, or the group when nothing is
// focused.
func (m SpaceViewModel) focusLine() string {
	if m.focusIdx < 0 || m.focusIdx >= len(m.scene.Galaxies) {
		return fmt.Sprintf("Leo Triplet · %d members @ %s",
			len(m.scene.Galaxies), astro.FormatLightYears(catalog.DistanceLy))
	}

	g := m.scene.Galaxies[m.focusIdx]
	line := fmt.Sprintf("%s · v=%.0f km/s · mag %.1f", g.Name, g.VelocityKms, g.Magnitude)

	if obj, ok := catalog.ByName(m.objects, g.Name); ok {
		line = fmt.Sprintf("%s · RA %s Dec %s · v=%.0f km/s · mag %.1f",
			g.Name, obj.RA, obj.Dec, g.VelocityKms, g.Magnitude)
	}

	for _, ann := range m.scene.Annotations {
		if ann.From == g.Name || ann.To == g.Name {
			other := ann.From
			if other == g.Name {
				other = ann.To
			}
			line += fmt.Sprintf(" · %s→ %s", other, ann.Text)
		}
	}
	return line
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
