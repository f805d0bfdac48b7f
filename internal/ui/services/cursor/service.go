package cursor

import (
	"palette/internal/ui/services/events"
)

// Service owns the currently highlighted result index. All operations
// are total: the index is clamped against the current result count, so
// callers never see an out-of-range cursor.
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new cursor service.
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{
			ViewportHeight: 20, // Default, will be updated
		},
		bus: bus,
	}
}

// Index returns the current cursor position.
func (s *Service) Index() int {
	return s.state.Index
}

// ViewportOffset returns the current scroll offset.
func (s *Service) ViewportOffset() int {
	return s.state.ViewportOffset
}

// ViewportHeight returns the number of visible rows.
func (s *Service) ViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates how many rows are visible.
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.ensureVisible()
}

// MoveUp moves the cursor one row up, stopping at the top.
func (s *Service) MoveUp() {
	s.moveTo(s.state.Index-1, true)
}

// MoveDown moves the cursor one row down, stopping at the last row.
func (s *Service) MoveDown() {
	s.moveTo(s.state.Index+1, true)
}

// SetIndex moves the cursor to a specific row, typically because the
// mouse clicked it. The viewport does not chase mouse-driven moves.
func (s *Service) SetIndex(index int) {
	s.moveTo(index, false)
}

// OnResultCountChanged clamps the cursor to the new result count. The
// cursor is clamped, not reset: typing more characters that narrow the
// list keeps the cursor anchored near its position instead of jumping
// back to the top on every keystroke.
func (s *Service) OnResultCountChanged(newCount int) {
	s.state.Count = newCount
	if newCount == 0 {
		s.state.Index = 0
		s.state.ViewportOffset = 0
		return
	}
	if s.state.Index > newCount-1 {
		s.state.Index = newCount - 1
	}
	s.ensureVisible()
}

// Reset puts the cursor back on the first row, used on view mount and
// unmount so a fresh view always highlights its first item.
func (s *Service) Reset(count int) {
	s.state.Index = 0
	s.state.Count = count
	s.state.ViewportOffset = 0
	s.state.KeyboardMove = true
}

func (s *Service) moveTo(index int, keyboard bool) {
	old := s.state.Index
	s.state.Index = s.clamp(index)
	s.state.KeyboardMove = keyboard
	if keyboard {
		s.ensureVisible()
	}

	if old != s.state.Index {
		s.bus.Publish(MovedEvent{
			OldIndex: old,
			NewIndex: s.state.Index,
			Keyboard: keyboard,
		})
	}
}

func (s *Service) clamp(index int) int {
	if index < 0 {
		return 0
	}
	if s.state.Count == 0 {
		return 0
	}
	if index > s.state.Count-1 {
		return s.state.Count - 1
	}
	return index
}

// ensureVisible scrolls the viewport just enough to keep the cursor on
// screen.
func (s *Service) ensureVisible() {
	if s.state.Index < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Index
		s.bus.Publish(ViewportChangedEvent{
			Offset: s.state.ViewportOffset,
			Height: s.state.ViewportHeight,
		})
	} else if s.state.Index >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Index - s.state.ViewportHeight + 1
		s.bus.Publish(ViewportChangedEvent{
			Offset: s.state.ViewportOffset,
			Height: s.state.ViewportHeight,
		})
	}
}
