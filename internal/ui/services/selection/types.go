package selection

import "time"

// DoubleClickThreshold is how close together two clicks must land to
// count as a double click. Fixed design constant.
const DoubleClickThreshold = 300 * time.Millisecond

// State holds selection input state.
type State struct {
	LastClickTime time.Time
	LastClickRow  int
	// HoveredRow is purely visual highlight state (-1 when nothing is
	// hovered). It never moves the cursor and never affects activation.
	HoveredRow int
}

// ActivatedEvent fires when a row is activated (enter or double click).
type ActivatedEvent struct {
	Row int
}

// ClickedEvent fires on every single click, before any double-click
// activation for the same click.
type ClickedEvent struct {
	Row int
}
