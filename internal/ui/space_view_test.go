package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/justinom/leo-triplet/internal/catalog"
	"github.com/justinom/leo-triplet/internal/config"
	"github.com/justinom/leo-triplet/internal/scene"
)

func newTestSpaceView(t *testing.T) SpaceViewModel {
	t.Helper()
	objects := catalog.LeoTriplet()
	s, err := scene.Build(objects, scene.DefaultConfig())
	if err != nil {
		t.Fatalf("build scene: %v", err)
	}
	m := NewSpaceViewModel(s, objects, config.Default().Display)
	return m.SetSize(80, 24)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestSpaceViewDefaults(t *testing.T) {
	m := newTestSpaceView(t)

	if m.Zoom() != 1.0 {
		t.Errorf("initial zoom = %v, want 1.0", m.Zoom())
	}
	if m.yawDeg != 0 || m.pitchDeg != 0 {
		t.Errorf("initial rotation = %v/%v, want 0/0", m.yawDeg, m.pitchDeg)
	}
	if m.labelMode != LabelAll {
		t.Errorf("initial label mode = %v, want ALL", m.labelMode)
	}
	if !m.showTail || !m.showTriangle || !m.showEarth {
		t.Error("all layers should start visible")
	}
	if m.focusIdx != -1 {
		t.Errorf("initial focus = %d, want -1", m.focusIdx)
	}
}

func TestSpaceViewArrowRotation(t *testing.T) {
	m := newTestSpaceView(t)

	m, _ = m.Update(keyMsg("right"))
	m, _ = m.Update(keyMsg("right"))
	if m.yawDeg != 10 {
		t.Errorf("yaw after two right presses = %v, want 10", m.yawDeg)
	}

	m, _ = m.Update(keyMsg("up"))
	if m.pitchDeg != 5 {
		t.Errorf("pitch after up = %v, want 5", m.pitchDeg)
	}
}

func TestSpaceViewPitchClamped(t *testing.T) {
	m := newTestSpaceView(t)
	for i := 0; i < 40; i++ {
		m, _ = m.Update(keyMsg("up"))
	}
	if m.pitchDeg > 89 {
		t.Errorf("pitch = %v, want clamped at 89", m.pitchDeg)
	}
}

func TestSpaceViewZoomSteps(t *testing.T) {
	m := newTestSpaceView(t)

	m, _ = m.Update(keyMsg("+"))
	if m.Zoom() != 1.5 {
		t.Errorf("zoom after + = %v, want 1.5", m.Zoom())
	}

	m, _ = m.Update(keyMsg("0"))
	if m.Zoom() != 1.0 {
		t.Errorf("zoom after 0 = %v, want 1.0", m.Zoom())
	}

	// Zooming out past the smallest level saturates.
	for i := 0; i < 20; i++ {
		m, _ = m.Update(keyMsg("-"))
	}
	if m.Zoom() != zoomLevels[0] {
		t.Errorf("zoom floor = %v, want %v", m.Zoom(), zoomLevels[0])
	}

	for i := 0; i < 20; i++ {
		m, _ = m.Update(keyMsg("+"))
	}
	if m.Zoom() != zoomLevels[len(zoomLevels)-1] {
		t.Errorf("zoom ceiling = %v, want %v", m.Zoom(), zoomLevels[len(zoomLevels)-1])
	}
}

func TestSpaceViewReset(t *testing.T) {
	m := newTestSpaceView(t)
	m, _ = m.Update(keyMsg("right"))
	m, _ = m.Update(keyMsg("up"))
	m, _ = m.Update(keyMsg("+"))

	m, _ = m.Update(keyMsg("r"))
	if m.yawDeg != 0 || m.pitchDeg != 0 || m.Zoom() != 1.0 {
		t.Errorf("after reset: yaw=%v pitch=%v zoom=%v", m.yawDeg, m.pitchDeg, m.Zoom())
	}
}

func TestSpaceViewLayerToggles(t *testing.T) {
	m := newTestSpaceView(t)

	m, _ = m.Update(keyMsg("t"))
	if m.showTail {
		t.Error("t should hide the tail")
	}
	m, _ = m.Update(keyMsg("g"))
	if m.showTriangle {
		t.Error("g should hide the triangle")
	}
	m, _ = m.Update(keyMsg("e"))
	if m.showEarth {
		t.Error("e should hide the Earth marker")
	}

	m, _ = m.Update(keyMsg("t"))
	if !m.showTail {
		t.Error("t should bring the tail back")
	}
}

func TestSpaceViewLabelCycle(t *testing.T) {
	m := newTestSpaceView(t)

	want := []LabelMode{LabelNone, LabelFocused, LabelAll}
	for _, mode := range want {
		m, _ = m.Update(keyMsg("l"))
		if m.labelMode != mode {
			t.Fatalf("label mode = %v, want %v", m.labelMode, mode)
		}
	}
}

func TestSpaceViewFocusCycle(t *testing.T) {
	m := newTestSpaceView(t)

	// j walks through all members then back to unfocused.
	for i := 0; i < len(m.scene.Galaxies); i++ {
		m, _ = m.Update(keyMsg("j"))
		if m.focusIdx != i {
			t.Fatalf("focus after %d j presses = %d", i+1, m.focusIdx)
		}
	}
	m, _ = m.Update(keyMsg("j"))
	if m.focusIdx != -1 {
		t.Errorf("focus should wrap to -1, got %d", m.focusIdx)
	}

	// k enters from the far end.
	m, _ = m.Update(keyMsg("k"))
	if m.focusIdx != len(m.scene.Galaxies)-1 {
		t.Errorf("k from unfocused = %d, want last index", m.focusIdx)
	}

	m, _ = m.Update(keyMsg("esc"))
	if m.focusIdx != -1 {
		t.Errorf("esc should clear focus, got %d", m.focusIdx)
	}
}

func TestSpaceViewMouseWheelZoom(t *testing.T) {
	m := newTestSpaceView(t)

	m, _ = m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp})
	if m.Zoom() != 1.5 {
		t.Errorf("zoom after wheel up = %v, want 1.5", m.Zoom())
	}

	m, _ = m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	if m.Zoom() != 1.0 {
		t.Errorf("zoom after wheel down = %v, want 1.0", m.Zoom())
	}
}

func TestSpaceViewMouseDragRotates(t *testing.T) {
	m := newTestSpaceView(t)

	m, _ = m.Update(tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.dragging {
		t.Fatal("left press should start a drag")
	}

	m, _ = m.Update(tea.MouseMsg{X: 14, Y: 9, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	wantYaw := 4 * m.mouseSens
	wantPitch := 1 * m.mouseSens * 2
	if m.yawDeg != wantYaw {
		t.Errorf("yaw after drag = %v, want %v", m.yawDeg, wantYaw)
	}
	if m.pitchDeg != wantPitch {
		t.Errorf("pitch after drag = %v, want %v", m.pitchDeg, wantPitch)
	}

	m, _ = m.Update(tea.MouseMsg{X: 14, Y: 9, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.dragging {
		t.Error("release should end the drag")
	}

	// Motion without a held button must not rotate.
	before := m.yawDeg
	m, _ = m.Update(tea.MouseMsg{X: 30, Y: 15, Action: tea.MouseActionMotion})
	if m.yawDeg != before {
		t.Error("motion without drag should not rotate")
	}
}

func TestSpaceViewDisplayFrame(t *testing.T) {
	m := newTestSpaceView(t)

	// The centroid maps to the display origin in X and Y; Z carries
	// only the velocity depth cue for galaxies.
	for _, g := range m.scene.Galaxies {
		d := m.displayPos(g.Name, g.Pos)
		if abs(d.X) > axisLimitKly || abs(d.Y) > axisLimitKly {
			t.Errorf("%s display pos %+v outside axis limit", g.Name, d)
		}
	}

	// NGC 3628 recedes fastest, so its depth cue pushes it away.
	ngc := m.displayPos(catalog.NameNGC3628, mustGalaxy(t, m.scene, catalog.NameNGC3628).Pos)
	m66 := m.displayPos(catalog.NameM66, mustGalaxy(t, m.scene, catalog.NameM66).Pos)
	if ngc.Z <= m66.Z {
		t.Errorf("depth cue: NGC 3628 z=%v should exceed M66 z=%v", ngc.Z, m66.Z)
	}
}

func mustGalaxy(t *testing.T, s *scene.Scene, name string) scene.Marker {
	t.Helper()
	g, ok := s.Galaxy(name)
	if !ok {
		t.Fatalf("galaxy %q missing", name)
	}
	return g
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestSpaceViewRender(t *testing.T) {
	m := newTestSpaceView(t)
	out := m.View()

	if out == "" {
		t.Fatal("empty view")
	}
	if !strings.Contains(out, "yaw") {
		t.Error("HUD should report the camera orientation")
	}
	if !strings.Contains(out, "labels:ALL") {
		t.Error("HUD should report the label mode")
	}
	if !strings.Contains(out, "Leo Triplet") {
		t.Error("unfocused HUD should describe the group")
	}
}

func TestSpaceViewRenderFocused(t *testing.T) {
	m := newTestSpaceView(t)
	m, _ = m.Update(keyMsg("j"))

	out := m.View()
	name := m.scene.Galaxies[0].Name
	if !strings.Contains(out, name) {
		t.Errorf("focused HUD should name %s", name)
	}
	if !strings.Contains(out, "km/s") {
		t.Error("focused HUD should show the recession velocity")
	}
}

func TestSpaceViewRenderTinyTerminal(t *testing.T) {
	m := newTestSpaceView(t)
	m = m.SetSize(10, 3)
	if out := m.View(); !strings.Contains(out, "small") {
		t.Errorf("tiny terminal should degrade gracefully, got %q", out)
	}
}
