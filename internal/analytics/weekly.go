package analytics

import (
	"time"

	"extras/internal/core"
)

// WeekWindow is a closed Monday-to-Sunday calendar interval.
type WeekWindow struct {
	Start time.Time `json:"start"` // Monday 00:00:00
	End   time.Time `json:"end"`   // Sunday 23:59:59.999999999
}

// Contains reports whether t falls inside the closed interval.
func (w WeekWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// WeekOf returns the ISO week (Monday start) containing t.
func WeekOf(t time.Time) WeekWindow {
	// Shift so Monday is day 0.
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return WeekWindow{
		Start: start,
		End:   start.AddDate(0, 0, 7).Add(-time.Nanosecond),
	}
}

// PartitionWeeks splits records into the week containing ref minus 7 days
// ("current", i.e. last full week) and the week before it ("previous").
// The reference instant is always injected by the caller; the engine never
// reads a clock. Records whose date does not parse belong to neither
// bucket. The two windows are disjoint by construction, so every record
// lands in at most one.
func PartitionWeeks(records []core.Record, ref time.Time) (current, previous []core.Record, currentWeek, previousWeek WeekWindow) {
	// Record dates parse as UTC midnights; anchor the windows there too.
	ref = ref.UTC()
	currentWeek = WeekOf(ref.AddDate(0, 0, -7))
	previousWeek = WeekOf(ref.AddDate(0, 0, -14))
	current = []core.Record{}
	previous = []core.Record{}
	for _, r := range records {
		d, ok := core.ParseDate(r.Date)
		if !ok {
			continue
		}
		switch {
		case currentWeek.Contains(d):
			current = append(current, r)
		case previousWeek.Contains(d):
			previous = append(previous, r)
		}
	}
	return current, previous, currentWeek, previousWeek
}
