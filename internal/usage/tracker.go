package usage

import (
	"log"
	"sort"
	"time"

	"palette/internal/extension"
	"palette/internal/store"
)

// Records is the slice of the store the tracker needs.
type Records interface {
	RecordUsage(commandID string, at time.Time) error
	UsageRecordFor(commandID string) (store.UsageRecord, error)
	AllUsage() (map[string]store.UsageRecord, error)
}

// Tracker records command activations and ranks the default catalog by
// a combined recency and frequency score.
type Tracker struct {
	records Records
	now     func() time.Time
}

// NewTracker creates a tracker over the given records store.
func NewTracker(records Records) *Tracker {
	return &Tracker{
		records: records,
		now:     time.Now,
	}
}

// RecordUsage stores an activation of the command: last access moves to
// now and the access count increments, together.
func (t *Tracker) RecordUsage(commandID string) {
	if err := t.records.RecordUsage(commandID, t.now()); err != nil {
		// Losing one ranking update is not worth surfacing to the user
		log.Printf("usage: failed to record %q: %v", commandID, err)
	}
}

// Score returns the ranking score for a command id:
//
//	lastAccessEpochSeconds + accessCount*1000
//
// Recency is the primary signal; frequency dominates only once a
// command has been used far more often than its rivals (each use is
// worth ~17 minutes of recency). The constant is observable behavior
// (it decides default catalog order) and must not change silently.
func (t *Tracker) Score(commandID string) float64 {
	rec, err := t.records.UsageRecordFor(commandID)
	if err != nil {
		log.Printf("usage: failed to read %q: %v", commandID, err)
		return 0
	}
	return score(rec)
}

func score(rec store.UsageRecord) float64 {
	return rec.LastAccess + float64(rec.AccessCount)*1000
}

// Rank orders commands by descending usage score. The sort is stable,
// so commands with equal scores (typically never-used ones at score 0)
// keep their registration order.
func (t *Tracker) Rank(commands []extension.Command) []extension.Command {
	records, err := t.records.AllUsage()
	if err != nil {
		log.Printf("usage: failed to load records for ranking: %v", err)
		return commands
	}

	ranked := make([]extension.Command, len(commands))
	copy(ranked, commands)
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(records[ranked[i].ID]) > score(records[ranked[j].ID])
	})
	return ranked
}
