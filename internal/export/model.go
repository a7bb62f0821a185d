package export

import "time"

// Entry is a single generated task line within a day.
type Entry struct {
	Name    string
	Minutes int
	Seconds int
}

// DayRecord groups the entries generated for one calendar date. TargetMinutes
// is the daily total the trimming step steered the entries toward.
type DayRecord struct {
	Date          time.Time
	TargetMinutes int
	Entries       []Entry
}

// Stats summarizes a completed run for display.
type Stats struct {
	Days int
	Rows int
}
