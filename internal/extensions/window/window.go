// Package window contributes window-management commands. The actual
// window manipulation is owned by a Manager implementation; commands
// here are thin, side-effecting wrappers around it.
package window

import (
	"log"

	"palette/internal/extension"
)

const identifier = "com.palette.window"

// Manager moves and resizes the focused window of whatever application
// was active before the panel appeared.
type Manager interface {
	MoveLeftHalf() error
	MoveRightHalf() error
	NextDisplay() error
	Maximize() error
	// AlmostMaximize resizes to the given fraction of the screen,
	// centered.
	AlmostMaximize(pct float64) error
}

// Extension is the window-management provider.
type Extension struct {
	mgr Manager
}

// New creates the extension over the given manager.
func New(mgr Manager) *Extension {
	return &Extension{mgr: mgr}
}

func (e *Extension) Identifier() string { return identifier }
func (e *Extension) Name() string       { return "Window" }

func (e *Extension) Commands() []extension.Command {
	specs := []struct {
		title    string
		subtitle string
		icon     string
		run      func() error
	}{
		{"Window: Left Half", "Move window to left half of screen", "◧", e.mgr.MoveLeftHalf},
		{"Window: Right Half", "Move window to right half of screen", "◨", e.mgr.MoveRightHalf},
		{"Window: Next Display", "Move window to next display", "⇥", e.mgr.NextDisplay},
		{"Window: Maximize", "Maximize window", "⬜", e.mgr.Maximize},
		{"Window: Almost Maximize", "Almost maximize window (80% of screen)", "▣", func() error {
			return e.mgr.AlmostMaximize(0.8)
		}},
	}

	commands := make([]extension.Command, 0, len(specs))
	for _, spec := range specs {
		run := spec.run
		commands = append(commands, extension.Command{
			ID:       extension.CommandID(identifier, spec.title),
			Title:    spec.title,
			Subtitle: spec.subtitle,
			Icon:     spec.icon,
			Action: func() extension.ActionResult {
				if err := run(); err != nil {
					log.Printf("window: %v", err)
				}
				return extension.Done()
			},
		})
	}
	return commands
}

func (e *Extension) SettingsView() extension.ViewBuilder { return nil }
