package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justinom/leo-triplet/internal/astro"
	"github.com/justinom/leo-triplet/internal/catalog"
	"github.com/justinom/leo-triplet/internal/scene"
)

// DataViewModel is the tabular view of the catalog and the derived
// separations.
type DataViewModel struct {
	width  int
	height int

	scene    *scene.Scene
	objects  []catalog.Object
	selected int
}

// NewDataViewModel creates the data view.
func NewDataViewModel(s *scene.Scene, objects []catalog.Object) DataViewModel {
	return DataViewModel{scene: s, objects: objects}
}

// SetSize updates the viewport dimensions.
func (m DataViewModel) SetSize(width, height int) DataViewModel {
	m.width = width
	m.height = height
	return m
}

// Update handles input for the data view.
func (m DataViewModel) Update(msg tea.Msg) (DataViewModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "j", "down":
			if m.selected < len(m.objects)-1 {
				m.selected++
			}
		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}
		}
	}
	return m, nil
}

// View renders the catalog table, the separations, and a detail panel
// for the selected galaxy.
func (m DataViewModel) View() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	var b strings.Builder

	b.WriteString("  " + headerStyle.Render("CATALOG") +
		dimStyle.Render(fmt.Sprintf("  distance %s (assumed, all members)", astro.FormatLightYears(catalog.DistanceLy))))
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %-12s %-13s %-12s %10s %6s", "NAME", "RA (J2000)", "DEC (J2000)", "V (km/s)", "MAG")
	b.WriteString(dimStyle.Render(header) + "\n")
	b.WriteString(dimStyle.Render("  "+strings.Repeat("─", len(header)-2)) + "\n")

	for i, obj := range m.objects {
		row := fmt.Sprintf("  %-12s %-13s %-12s %10.0f %6.1f",
			obj.Name, obj.RA, obj.Dec, obj.VelocityKms, obj.Magnitude)

		if i == m.selected {
			b.WriteString(selectedStyle.Render(row))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(obj.Color).Render(row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n  " + headerStyle.Render("SEPARATIONS") + "\n\n")
	for _, ann := range m.scene.Annotations {
		b.WriteString(fmt.Sprintf("  %-12s ↔ %-12s  %s\n", ann.From, ann.To, ann.Text))
	}

	b.WriteString("\n" + m.renderDetail())
	return b.String()
}

func (m DataViewModel) renderDetail() string {
	if m.selected < 0 || m.selected >= len(m.objects) {
		return ""
	}
	obj := m.objects[m.selected]

	headerStyle := lipgloss.NewStyle().Foreground(obj.Color).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var b strings.Builder
	b.WriteString("  " + headerStyle.Render(obj.Name) + "\n")

	if g, ok := m.scene.Galaxy(obj.Name); ok {
		rel := g.Pos.Sub(m.scene.Center)
		b.WriteString(dimStyle.Render(fmt.Sprintf(
			"  position (vs centroid): east %+.1f kly  north %+.1f kly  depth %+.1f kly",
			rel.X/1000, rel.Y/1000, rel.Z/1000)) + "\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"  RA %.4f°  Dec %.4f°  ·  receding at %.0f km/s",
		obj.RA.Degrees(), obj.Dec.Degrees(), obj.VelocityKms)))

	if obj.Name == catalog.NameNGC3628 {
		b.WriteString("\n" + dimStyle.Render(fmt.Sprintf(
			"  tidal tail: %s plume toward the east",
			astro.FormatLightYears(catalog.TailLengthLy))))
	}

	return b.String()
}
