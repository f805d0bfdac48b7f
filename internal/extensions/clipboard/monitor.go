package clipboard

import (
	"context"
	"log"
	"time"

	"github.com/atotto/clipboard"
)

// Monitor polls the system clipboard and records new content into the
// history. Polling is the only portable option; there is no clipboard
// change notification available everywhere.
type Monitor struct {
	history  History
	interval time.Duration
	maxItems int
	read     func() (string, error)
	last     string
}

// NewMonitor creates a monitor that captures into history at the given
// interval, trimming the table to maxItems after each capture.
func NewMonitor(history History, interval time.Duration, maxItems int) *Monitor {
	return &Monitor{
		history:  history,
		interval: interval,
		maxItems: maxItems,
		read:     clipboard.ReadAll,
	}
}

// Run polls until the context is cancelled. It is meant to be started
// on its own goroutine.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.poll()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.poll()
		}
	}
}

// poll captures the current clipboard content if it changed since the
// last observation. Empty content and read failures are skipped;
// clipboard access can fail transiently when another application holds
// the selection.
func (m *Monitor) poll() {
	content, err := m.read()
	if err != nil {
		log.Printf("clipboard: read failed: %v", err)
		return
	}
	if content == "" || content == m.last {
		return
	}
	m.last = content

	if err := m.history.AddClip(content, time.Now()); err != nil {
		log.Printf("clipboard: failed to record clip: %v", err)
		return
	}
	if err := m.history.TrimClips(m.maxItems); err != nil {
		log.Printf("clipboard: failed to trim history: %v", err)
	}
}
