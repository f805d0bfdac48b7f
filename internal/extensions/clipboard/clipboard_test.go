package clipboard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palette/internal/extension"
	"palette/internal/store"
)

type fakeHistory struct {
	clips   []store.Clip
	added   []string
	trimmed []int
	loadErr error
	nextID  int64
}

func (f *fakeHistory) AddClip(content string, at time.Time) error {
	f.added = append(f.added, content)
	f.nextID++
	f.clips = append([]store.Clip{{ID: f.nextID, Content: content, CopiedAt: at}}, f.clips...)
	return nil
}

func (f *fakeHistory) RecentClips(limit int) ([]store.Clip, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if len(f.clips) > limit {
		return f.clips[:limit], nil
	}
	return f.clips, nil
}

func (f *fakeHistory) TrimClips(max int) error {
	f.trimmed = append(f.trimmed, max)
	return nil
}

func historyItems(e *Extension) []extension.Item {
	cmds := e.Commands()
	res := cmds[0].Action()
	builder, ok := res.View()
	if !ok {
		return nil
	}
	return builder().Items
}

func TestHistoryViewListsNewestFirst(t *testing.T) {
	h := &fakeHistory{}
	require.NoError(t, h.AddClip("first", time.Now()))
	require.NoError(t, h.AddClip("second", time.Now()))

	e := New(h, 100)
	items := historyItems(e)

	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Title)
	assert.Equal(t, "first", items[1].Title)
}

func TestPreviewIsFirstNonEmptyLine(t *testing.T) {
	h := &fakeHistory{}
	require.NoError(t, h.AddClip("\n\n  went to the store  \nand back", time.Now()))

	e := New(h, 100)
	items := historyItems(e)

	require.Len(t, items, 1)
	assert.Equal(t, "went to the store", items[0].Title)
}

func TestActivateCopiesFullContent(t *testing.T) {
	h := &fakeHistory{}
	require.NoError(t, h.AddClip("line one\nline two", time.Now()))

	e := New(h, 100)
	var written string
	e.write = func(s string) error { written = s; return nil }

	items := historyItems(e)
	require.Len(t, items, 1)

	res := items[0].OnActivate()
	_, hasView := res.View()
	assert.False(t, hasView)
	assert.Equal(t, "line one\nline two", written, "activation copies the full clip, not the preview")
}

func TestHistoryLoadFailureShowsErrorRow(t *testing.T) {
	h := &fakeHistory{loadErr: errors.New("db locked")}
	e := New(h, 100)

	items := historyItems(e)
	require.Len(t, items, 1)
	assert.True(t, items[0].Invalid)
}

func TestMonitorSkipsUnchangedAndEmpty(t *testing.T) {
	h := &fakeHistory{}
	m := NewMonitor(h, time.Minute, 5)

	reads := []string{"", "hello", "hello", "world"}
	i := 0
	m.read = func() (string, error) {
		s := reads[i]
		if i < len(reads)-1 {
			i++
		}
		return s, nil
	}

	for range reads {
		m.poll()
	}

	assert.Equal(t, []string{"hello", "world"}, h.added)
	assert.Equal(t, []int{5, 5}, h.trimmed)
}

func TestMonitorSurvivesReadErrors(t *testing.T) {
	h := &fakeHistory{}
	m := NewMonitor(h, time.Minute, 5)

	failed := false
	m.read = func() (string, error) {
		if !failed {
			failed = true
			return "", errors.New("no display")
		}
		return "recovered", nil
	}

	m.poll()
	m.poll()

	assert.Equal(t, []string{"recovered"}, h.added)
}

var _ extension.Extension = (*Extension)(nil)
