package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"palette/internal/ui/services/events"
)

func newTestCursor() *Service {
	return NewService(&events.NullBus{})
}

func TestMoveClampsAtEdges(t *testing.T) {
	s := newTestCursor()
	s.Reset(3)

	s.MoveUp()
	assert.Equal(t, 0, s.Index(), "MoveUp at top stays at 0")

	s.MoveDown()
	s.MoveDown()
	assert.Equal(t, 2, s.Index())

	s.MoveDown()
	assert.Equal(t, 2, s.Index(), "MoveDown at bottom stays on last row")
}

func TestResultCountShrinkClampsNotResets(t *testing.T) {
	s := newTestCursor()
	s.Reset(10)
	s.SetIndex(5)

	s.OnResultCountChanged(3)
	assert.Equal(t, 2, s.Index(), "index=5, count 10->3 clamps to 2")
}

func TestResultCountZero(t *testing.T) {
	s := newTestCursor()
	s.Reset(5)
	s.SetIndex(1)

	s.OnResultCountChanged(0)
	assert.Equal(t, 0, s.Index())
}

func TestResultCountGrowKeepsIndex(t *testing.T) {
	s := newTestCursor()
	s.Reset(3)
	s.SetIndex(2)

	s.OnResultCountChanged(10)
	assert.Equal(t, 2, s.Index(), "growing the list must not move the cursor")
}

func TestResetReturnsToTop(t *testing.T) {
	s := newTestCursor()
	s.Reset(10)
	s.SetIndex(7)

	s.Reset(10)
	assert.Equal(t, 0, s.Index())
}

func TestViewportFollowsKeyboardOnly(t *testing.T) {
	s := newTestCursor()
	s.Reset(50)
	s.SetViewportHeight(10)

	// Mouse move below the viewport does not scroll
	s.SetIndex(30)
	assert.Equal(t, 0, s.ViewportOffset(), "mouse-driven move must not scroll the viewport")

	// The next keyboard move snaps the viewport to the cursor
	s.MoveDown()
	assert.Equal(t, 31-10+1, s.ViewportOffset())

	// Keyboard move back above the viewport scrolls up
	s.Reset(50)
	s.SetViewportHeight(10)
	for i := 0; i < 15; i++ {
		s.MoveDown()
	}
	assert.Equal(t, 6, s.ViewportOffset())
}

func TestMovedEventPublished(t *testing.T) {
	bus := events.NewBus()
	var got []MovedEvent
	bus.Subscribe("cursor.MovedEvent", func(e interface{}) {
		got = append(got, e.(MovedEvent))
	})

	s := NewService(bus)
	s.Reset(5)
	s.MoveDown()
	s.MoveDown()
	s.MoveUp()

	assert.Len(t, got, 3)
	assert.Equal(t, MovedEvent{OldIndex: 1, NewIndex: 2, Keyboard: true}, got[1])
}
