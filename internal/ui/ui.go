// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/justinom/leo-triplet/internal/catalog"
	"github.com/justinom/leo-triplet/internal/config"
	"github.com/justinom/leo-triplet/internal/scene"
	"github.com/justinom/leo-triplet/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewSpace ViewMode = iota
	ViewData
)

const headerHeight = 11 // logo + tagline + tabs
const footerHeight = 2

// Model is the root Bubble Tea model.
type Model struct {
	viewMode ViewMode
	width    int
	height   int
	ready    bool

	space SpaceViewModel
	data  DataViewModel
}

// New creates the root UI model for an assembled scene.
func New(s *scene.Scene, objects []catalog.Object, disp config.Display) Model {
	return Model{
		viewMode: ViewSpace,
		space:    NewSpaceViewModel(s, objects, disp),
		data:     NewDataViewModel(s, objects),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "s":
			m.viewMode = ViewSpace
		case "2", "d":
			m.viewMode = ViewData

		case "tab":
			m.viewMode = (m.viewMode + 1) % 2

		default:
			return m.updateActiveView(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentHeight := msg.Height - headerHeight - footerHeight
		m.space = m.space.SetSize(msg.Width, contentHeight)
		m.data = m.data.SetSize(msg.Width, contentHeight)

	default:
		return m.updateActiveView(msg)
	}

	return m, nil
}

func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewSpace:
		m.space, cmd = m.space.Update(msg)
	case ViewData:
		m.data, cmd = m.data.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewSpace:
		content = m.space.View()
	case ViewData:
		content = m.data.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs()
}

var logoLines = []string{
	`  ██╗     ███████╗ ██████╗       ██████╗ ██████╗ `,
	`  ██║     ██╔════╝██╔═══██╗      ╚════██╗██╔══██╗`,
	`  ██║     █████╗  ██║   ██║█████╗ █████╔╝██║  ██║`,
	`  ██║     ██╔══╝  ██║   ██║╚════╝ ╚═══██╗██║  ██║`,
	`  ███████╗███████╗╚██████╔╝      ██████╔╝██████╔╝`,
	`  ╚══════╝╚══════╝ ╚═════╝       ╚═════╝ ╚═════╝ `,
}

// Gradient endpoints for the logo, a blue to magenta to pink sweep.
var (
	logoColorA, _ = colorful.Hex("#3B82F6")
	logoColorB, _ = colorful.Hex("#D946EF")
	logoColorC, _ = colorful.Hex("#EC4899")
)

func (m Model) renderLogo() string {
	var b strings.Builder
	b.WriteString("\n")

	for row, line := range logoLines {
		runes := []rune(line)
		for col, r := range runes {
			color := logoGradient(col, row, len(runes), len(logoLines))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render("  Leo Triplet · Sky-Oriented 3D View"))
	b.WriteString("\n")
	b.WriteString(muted.Render(fmt.Sprintf("  M65 · M66 · NGC 3628 @ 35 Mly | v%s", version.Version)))
	b.WriteString("\n\n")

	return b.String()
}

// logoGradient blends the logo palette across columns and dims toward
// the bottom rows.
func logoGradient(col, row, width, height int) string {
	t := float64(col) / float64(width)

	var c colorful.Color
	if t < 0.5 {
		c = logoColorA.BlendLuv(logoColorB, t*2)
	} else {
		c = logoColorB.BlendLuv(logoColorC, (t-0.5)*2)
	}

	// Fade lower rows.
	fade := 1.0 - float64(row)/float64(height)*0.5
	c = colorful.Color{R: c.R * fade, G: c.G * fade, B: c.B * fade}

	return c.Clamped().Hex()
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Space", "[2] Data"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ") + "\n"
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var help string
	switch m.viewMode {
	case ViewSpace:
		help = "drag: rotate | wheel: zoom | j/k: focus | l: labels | t/g/e: layers | r: reset"
	case ViewData:
		help = "j/k: select galaxy | tab: switch view"
	}

	return "  " + dimStyle.Render(help+" | q: quit")
}
