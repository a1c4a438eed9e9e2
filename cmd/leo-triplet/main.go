// Command leo-triplet is a terminal UI for exploring the Leo Triplet
// galaxy group in 3D: M65, M66 and NGC 3628 placed from their J2000
// coordinates, with the NGC 3628 tidal tail and pairwise separations.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/justinom/leo-triplet/internal/catalog"
	"github.com/justinom/leo-triplet/internal/config"
	"github.com/justinom/leo-triplet/internal/logging"
	"github.com/justinom/leo-triplet/internal/scene"
	"github.com/justinom/leo-triplet/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode  bool
	snapshotPath string
)

func main() {
	configPath := flag.String("config", "", "Path to YAML settings file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error), overrides config")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export scene JSON to file (use - for stdout)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	// Assemble the scene once; the dataset is fixed, so any failure
	// here is a programming error and fails fast.
	objects := catalog.LeoTriplet()
	s, err := scene.Build(objects, scene.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("Scene assembled: %d galaxies, %d separations, %d tail points",
		len(s.Galaxies), len(s.Annotations), len(s.Tail.Points))

	// Headless mode: no TUI
	if summaryMode || snapshotPath != "" {
		if err := runHeadless(s, objects); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal (use -summary for headless output)")
		os.Exit(1)
	}

	model := ui.New(s, objects, cfg.Display)

	// Mouse cell motion enables drag-to-rotate and wheel zoom.
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless handles the non-interactive outputs.
func runHeadless(s *scene.Scene, objects []catalog.Object) error {
	if snapshotPath != "" {
		export := scene.Export(s, objects, catalog.DistanceLy)
		if snapshotPath == "-" {
			if err := export.WriteJSON(os.Stdout); err != nil {
				return fmt.Errorf("write JSON to stdout: %w", err)
			}
		} else {
			f, err := os.Create(snapshotPath)
			if err != nil {
				return fmt.Errorf("create snapshot file: %w", err)
			}
			defer f.Close()
			if err := export.WriteJSON(f); err != nil {
				return fmt.Errorf("write JSON to file: %w", err)
			}
		}
	}

	if summaryMode {
		scene.WriteSummary(os.Stdout, s, objects)
	}
	return nil
}
