package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"palette/internal/ui/services/cursor"
	"palette/internal/ui/services/events"
)

type harness struct {
	svc      *Service
	cur      *cursor.Service
	clock    time.Time
	items    []string
	selected []int
	clicked  []int
}

func newHarness(items []string) *harness {
	h := &harness{
		items: items,
		clock: time.Unix(1000, 0),
	}
	h.cur = cursor.NewService(&events.NullBus{})
	h.cur.Reset(len(items))
	h.svc = NewService(&events.NullBus{}, h.cur)
	h.svc.SetCountFunction(func() int { return len(h.items) })
	h.svc.SetRefilterFunction(func(query string) int {
		// Narrow by prefix for test purposes
		var kept []string
		for _, it := range h.items {
			if query == "" || len(it) >= len(query) && it[:len(query)] == query {
				kept = append(kept, it)
			}
		}
		h.items = kept
		return len(kept)
	})
	h.svc.SetOnSelected(func(row int) { h.selected = append(h.selected, row) })
	h.svc.SetOnClicked(func(row int) { h.clicked = append(h.clicked, row) })
	h.svc.now = func() time.Time { return h.clock }
	return h
}

func (h *harness) advance(d time.Duration) {
	h.clock = h.clock.Add(d)
}

func TestEnterActivatesHighlightedRow(t *testing.T) {
	h := newHarness([]string{"a", "b", "c"})

	h.svc.MoveDown()
	h.svc.Enter()

	assert.Equal(t, []int{1}, h.selected)
	assert.Empty(t, h.clicked)
}

func TestEnterOnEmptyListDoesNothing(t *testing.T) {
	h := newHarness(nil)

	h.svc.Enter()
	assert.Empty(t, h.selected)
}

func TestSingleClickMovesCursorWithoutActivating(t *testing.T) {
	h := newHarness([]string{"a", "b", "c"})

	h.svc.Click(2)

	assert.Equal(t, 2, h.cur.Index())
	assert.Equal(t, []int{2}, h.clicked)
	assert.Empty(t, h.selected, "single click must not activate")
}

func TestDoubleClickSameRowActivatesOnce(t *testing.T) {
	h := newHarness([]string{"a", "b", "c"})

	h.svc.Click(1)
	h.advance(100 * time.Millisecond)
	h.svc.Click(1)

	assert.Equal(t, []int{1, 1}, h.clicked)
	assert.Equal(t, []int{1}, h.selected, "exactly one activation, on the second click")
}

func TestTwoSlowClicksDoNotActivate(t *testing.T) {
	h := newHarness([]string{"a", "b", "c"})

	h.svc.Click(1)
	h.advance(400 * time.Millisecond)
	h.svc.Click(1)

	assert.Empty(t, h.selected, "clicks beyond the threshold are two single clicks")
}

func TestDoubleClickDifferentRowsActivatesSecond(t *testing.T) {
	h := newHarness([]string{"a", "b", "c"})

	h.svc.Click(0)
	h.advance(100 * time.Millisecond)
	h.svc.Click(2)

	assert.Equal(t, []int{2}, h.selected, "the row under the second click activates")
	assert.Equal(t, 2, h.cur.Index())
}

func TestQueryChangedClampsCursor(t *testing.T) {
	h := newHarness([]string{"aa", "ab", "b", "c", "d"})
	h.cur.SetIndex(4)

	h.svc.QueryChanged("a")

	assert.Equal(t, 1, h.cur.Index(), "cursor clamps to the narrowed count, not reset to 0")
}

func TestHoverIsVisualOnly(t *testing.T) {
	h := newHarness([]string{"a", "b", "c"})
	h.cur.SetIndex(1)

	h.svc.Hover(2)
	assert.Equal(t, 2, h.svc.HoveredRow())
	assert.Equal(t, 1, h.cur.Index(), "hover never moves the cursor")

	h.svc.ClearHover()
	assert.Equal(t, -1, h.svc.HoveredRow())
}

func TestClickBelowListIgnored(t *testing.T) {
	h := newHarness([]string{"a", "b"})

	h.svc.Click(5)
	assert.Empty(t, h.clicked)
	assert.Equal(t, 0, h.cur.Index())
}
