package window

import (
	"fmt"
	"os/exec"
)

// WmctrlManager drives the focused window through the wmctrl command
// line tool. Geometry is expressed against the active screen; wmctrl's
// -r :ACTIVE: addresses whatever window held focus before the panel
// took it.
type WmctrlManager struct {
	screenW int
	screenH int
	run     func(args ...string) error
}

// NewWmctrlManager creates a manager for the given screen dimensions.
func NewWmctrlManager(screenW, screenH int) *WmctrlManager {
	return &WmctrlManager{
		screenW: screenW,
		screenH: screenH,
		run: func(args ...string) error {
			return exec.Command("wmctrl", args...).Run()
		},
	}
}

func (m *WmctrlManager) move(x, y, w, h int) error {
	geometry := fmt.Sprintf("0,%d,%d,%d,%d", x, y, w, h)
	if err := m.run("-r", ":ACTIVE:", "-e", geometry); err != nil {
		return fmt.Errorf("wmctrl move failed: %w", err)
	}
	return nil
}

func (m *WmctrlManager) MoveLeftHalf() error {
	return m.move(0, 0, m.screenW/2, m.screenH)
}

func (m *WmctrlManager) MoveRightHalf() error {
	return m.move(m.screenW/2, 0, m.screenW/2, m.screenH)
}

// NextDisplay assumes displays are laid out side by side of equal
// width; the window wraps around past the last one.
func (m *WmctrlManager) NextDisplay() error {
	return m.move(m.screenW, 0, m.screenW/2, m.screenH)
}

func (m *WmctrlManager) Maximize() error {
	if err := m.run("-r", ":ACTIVE:", "-b", "add,maximized_vert,maximized_horz"); err != nil {
		return fmt.Errorf("wmctrl maximize failed: %w", err)
	}
	return nil
}

func (m *WmctrlManager) AlmostMaximize(pct float64) error {
	w := int(float64(m.screenW) * pct)
	h := int(float64(m.screenH) * pct)
	x := (m.screenW - w) / 2
	y := (m.screenH - h) / 2
	return m.move(x, y, w, h)
}
