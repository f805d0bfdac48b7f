package selection

import (
	"time"

	"palette/internal/ui/services/cursor"
	"palette/internal/ui/services/events"
)

// Service is the single entry surface binding raw input events (typed
// text, arrows, enter, clicks, hover) to the cursor and the activation
// callbacks. All operations are total; the cursor clamps indices before
// they are used.
type Service struct {
	state  *State
	bus    events.EventBus
	cursor *cursor.Service

	refilterFn func(query string) int // applies the query, returns new result count
	countFn    func() int             // current result count
	selectFn   func(row int)          // item activated (enter / double click)
	clickFn    func(row int)          // single-click side channel (e.g. live preview)
	now        func() time.Time
}

// NewService creates a new selection service over the given cursor.
func NewService(bus events.EventBus, cur *cursor.Service) *Service {
	return &Service{
		state:  &State{HoveredRow: -1},
		bus:    bus,
		cursor: cur,
		now:    time.Now,
	}
}

// SetRefilterFunction sets the function that applies a query change and
// returns the new result count.
func (s *Service) SetRefilterFunction(fn func(query string) int) {
	s.refilterFn = fn
}

// SetCountFunction sets the function to query the current result count.
func (s *Service) SetCountFunction(fn func() int) {
	s.countFn = fn
}

// SetOnSelected sets the activation callback.
func (s *Service) SetOnSelected(fn func(row int)) {
	s.selectFn = fn
}

// SetOnClicked sets the single-click callback.
func (s *Service) SetOnClicked(fn func(row int)) {
	s.clickFn = fn
}

// QueryChanged re-filters with the new query and clamps the cursor to
// the resulting count.
func (s *Service) QueryChanged(query string) {
	if s.refilterFn == nil {
		return
	}
	count := s.refilterFn(query)
	s.cursor.OnResultCountChanged(count)
}

// MoveUp moves the highlight one row up.
func (s *Service) MoveUp() {
	s.cursor.MoveUp()
}

// MoveDown moves the highlight one row down.
func (s *Service) MoveDown() {
	s.cursor.MoveDown()
}

// Enter activates the currently highlighted row, if any.
func (s *Service) Enter() {
	if s.countFn == nil || s.selectFn == nil {
		return
	}
	row := s.cursor.Index()
	if row >= s.countFn() {
		return // empty result list
	}
	s.activate(row)
}

// Click handles a single mouse click on a row: the cursor moves there
// and the click side channel fires, but the item is not activated. A
// second click within DoubleClickThreshold activates the row under the
// second click, even when it differs from the first click's row.
func (s *Service) Click(row int) {
	if s.countFn != nil && row >= s.countFn() {
		return // click landed below the last row
	}
	s.cursor.SetIndex(row)
	if s.clickFn != nil {
		s.clickFn(row)
	}
	s.bus.Publish(ClickedEvent{Row: row})

	now := s.now()
	if !s.state.LastClickTime.IsZero() && now.Sub(s.state.LastClickTime) < DoubleClickThreshold {
		s.activate(row)
	}
	s.state.LastClickTime = now
	s.state.LastClickRow = row
}

// Hover updates the visual hover highlight. It does not move the
// cursor, and because it never goes through the cursor service it can
// never cause a keyboard-follow scroll.
func (s *Service) Hover(row int) {
	s.state.HoveredRow = row
}

// ClearHover removes the hover highlight.
func (s *Service) ClearHover() {
	s.state.HoveredRow = -1
}

// HoveredRow returns the hovered row, or -1.
func (s *Service) HoveredRow() int {
	return s.state.HoveredRow
}

// Reset clears click and hover state, used on view mount.
func (s *Service) Reset() {
	s.state.LastClickTime = time.Time{}
	s.state.LastClickRow = 0
	s.state.HoveredRow = -1
}

func (s *Service) activate(row int) {
	if s.selectFn != nil {
		s.selectFn(row)
	}
	s.bus.Publish(ActivatedEvent{Row: row})
}
