package analyzer

import (
	"strings"
	"time"
)

// Event is a single timestamped entry within one day
type Event struct {
	Time        string // wall-clock text as written, e.g. "5:48 AM"
	Description string // free-text description, trimmed
}

// DailyLog holds parsed events grouped by date. Both the order in which
// dates first appear and the order of events within each date are
// preserved; canonical-label selection depends on it.
type DailyLog struct {
	Dates  []string           // date strings in first-seen order
	Events map[string][]Event // date -> events in source order
}

// Len returns the total number of events across all dates
func (l *DailyLog) Len() int {
	n := 0
	for _, events := range l.Events {
		n += len(events)
	}
	return n
}

// OtherEvent is one infrequent event destined for the Other column
type OtherEvent struct {
	Time        string // normalized time, leading zero stripped
	Description string
}

// DayStats holds one day's classified events
type DayStats struct {
	Regular map[string]int // canonical label -> count that day
	Other   []OtherEvent   // infrequent events, sorted by time of day
}

// HiddenEvent records a regular event removed by the staleness filter
type HiddenEvent struct {
	Label string // canonical label
	Count int    // lifetime occurrences across the whole log
}

// Row is one output table row for a single date
type Row struct {
	Date   string    // full date string, e.g. "Mar 2, 2025"
	Day    time.Time // parsed date for chronological consumers
	Counts []int     // one count per Report.Columns entry
	Other  string    // newline-joined aligned other-event lines
}

// ShortDate returns the date with the year stripped, e.g. "Mar 2"
func (r Row) ShortDate() string {
	return strings.SplitN(r.Date, ",", 2)[0]
}

// Report is the final analysis output: one row per date, one column per
// surviving regular event, plus the stale events hidden from the table
type Report struct {
	Columns []string      // regular-event labels, lexicographic
	Rows    []Row         // ascending by date
	Hidden  []HiddenEvent // removed by the staleness filter
}
