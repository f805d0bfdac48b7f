package usage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"palette/internal/extension"
	"palette/internal/store"
)

// fakeRecords is an in-memory Records used to pin exact timestamps.
type fakeRecords struct {
	records map[string]store.UsageRecord
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{records: make(map[string]store.UsageRecord)}
}

func (f *fakeRecords) RecordUsage(id string, at time.Time) error {
	rec := f.records[id]
	rec.CommandID = id
	rec.AccessCount++
	rec.LastAccess = float64(at.UnixNano()) / 1e9
	f.records[id] = rec
	return nil
}

func (f *fakeRecords) UsageRecordFor(id string) (store.UsageRecord, error) {
	return f.records[id], nil
}

func (f *fakeRecords) AllUsage() (map[string]store.UsageRecord, error) {
	return f.records, nil
}

func (f *fakeRecords) set(id string, count int, lastAccess float64) {
	f.records[id] = store.UsageRecord{CommandID: id, AccessCount: count, LastAccess: lastAccess}
}

func TestScoreFormula(t *testing.T) {
	records := newFakeRecords()
	tracker := NewTracker(records)

	assert.Equal(t, 0.0, tracker.Score("never.used"))

	records.set("cmd", 3, 12345)
	assert.Equal(t, 12345+3*1000.0, tracker.Score("cmd"))
}

func TestRecordUsageBumpsBothFields(t *testing.T) {
	records := newFakeRecords()
	tracker := NewTracker(records)
	tracker.now = func() time.Time { return time.Unix(777, 0) }

	tracker.RecordUsage("ext.cmd")
	tracker.RecordUsage("ext.cmd")

	rec := records.records["ext.cmd"]
	assert.Equal(t, 2, rec.AccessCount)
	assert.Equal(t, 777.0, rec.LastAccess)
}

func TestUsedOutranksNeverUsed(t *testing.T) {
	records := newFakeRecords()
	tracker := NewTracker(records)

	// Used once a minute ago beats never used
	records.set("used", 1, 60)

	ranked := tracker.Rank([]extension.Command{
		{ID: "fresh"},
		{ID: "used"},
	})
	assert.Equal(t, "used", ranked[0].ID)
}

func TestFrequencyRecencyCrossover(t *testing.T) {
	records := newFakeRecords()
	tracker := NewTracker(records)

	// 50 uses are worth 50000 score points on top of recency, so a
	// heavily used command beats one used once 10000 seconds later...
	records.set("heavy", 50, 1000)  // score 51000
	records.set("recent", 1, 11000) // score 12000

	ranked := tracker.Rank([]extension.Command{{ID: "recent"}, {ID: "heavy"}})
	assert.Equal(t, "heavy", ranked[0].ID)

	// ...until the single use is recent enough to cross the boundary.
	records.set("recent", 1, 50001) // score 51001 > 51000
	ranked = tracker.Rank([]extension.Command{{ID: "recent"}, {ID: "heavy"}})
	assert.Equal(t, "recent", ranked[0].ID)
}

func TestRankTiesKeepRegistrationOrder(t *testing.T) {
	records := newFakeRecords()
	tracker := NewTracker(records)

	ranked := tracker.Rank([]extension.Command{
		{ID: "first"},
		{ID: "second"},
		{ID: "third"},
	})
	assert.Equal(t, "first", ranked[0].ID)
	assert.Equal(t, "second", ranked[1].ID)
	assert.Equal(t, "third", ranked[2].ID)
}
