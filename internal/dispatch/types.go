package dispatch

// PanelState is the dispatcher's visibility state.
type PanelState int

const (
	// Hidden means the panel is not visible and the view stack is idle.
	Hidden PanelState = iota
	// Showing means the panel is visible with a current view.
	Showing
)

func (s PanelState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Showing:
		return "showing"
	default:
		return "unknown"
	}
}

// FocusHook captures the externally focused application when the panel
// appears and restores it when the panel hides. The OS integration
// layer owns the implementation; Restore after a Capture-less hide must
// be a no-op.
type FocusHook interface {
	Capture()
	Restore()
}

// NoopFocus is the FocusHook used when no OS integration is wired.
type NoopFocus struct{}

func (NoopFocus) Capture() {}
func (NoopFocus) Restore() {}

// UsageRecorder records command activations for catalog ranking.
type UsageRecorder interface {
	RecordUsage(commandID string)
}
