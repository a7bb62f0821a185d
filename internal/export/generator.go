package export

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// Daily target total, in minutes (4 to 9 hours).
	minTargetMinutes = 240
	maxTargetMinutes = 540

	// Per-entry duration bounds, in minutes. Capping at 2 hours keeps days
	// from collapsing into one or two entries.
	minEntryMinutes = 10
	maxEntryMinutes = 120

	// A day must hold at least this many entries before trimming.
	minEntries = 5

	// Guard against a pathological random sequence never reaching the target.
	entryLimit = 100
)

// Generator produces randomized day records. All randomness flows through a
// single seeded source, so two generators built from the same seed yield
// identical records.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator constructs a Generator seeded with the given value.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Day generates the entries for a single date: sample weighted task names and
// random durations until the daily target and minimum count are both met,
// then trim the overshoot back down to the target.
//
// Trimming removes whole entries when needed and does not re-check the
// minimum count, so a finished day can hold fewer than minEntries entries.
func (g *Generator) Day(date time.Time) (DayRecord, error) {
	target := g.intInRange(minTargetMinutes, maxTargetMinutes)

	var entries []Entry
	total := 0
	for total < target || len(entries) < minEntries {
		entries = append(entries, Entry{
			Name:    taskCatalog[g.rng.Intn(len(taskCatalog))],
			Minutes: g.intInRange(minEntryMinutes, maxEntryMinutes),
		})
		total += entries[len(entries)-1].Minutes

		if len(entries) > entryLimit {
			return DayRecord{}, fmt.Errorf("%w: %s", ErrEntryLimit, date.Format("2006-01-02"))
		}
	}

	entries = g.trim(entries, total-target)

	for i := range entries {
		entries[i].Seconds = entries[i].Minutes*60 + g.rng.Intn(60)
	}

	return DayRecord{
		Date:          time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
		TargetMinutes: target,
		Entries:       entries,
	}, nil
}

// trim eliminates the overtime by repeatedly picking a random entry and
// either shrinking it or removing it outright. Afterwards the minute total
// equals the day's target.
func (g *Generator) trim(entries []Entry, overtime int) []Entry {
	for overtime > 0 {
		i := g.rng.Intn(len(entries))
		if entries[i].Minutes > overtime {
			entries[i].Minutes -= overtime
			overtime = 0
			continue
		}
		overtime -= entries[i].Minutes
		entries = append(entries[:i], entries[i+1:]...)
	}
	return entries
}

// intInRange returns a uniform value in [lo, hi], both ends inclusive.
func (g *Generator) intInRange(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
