package analyzer

import "strings"

// Frequency holds dataset-wide occurrence counts per event key along
// with the first-seen original spelling of each key.
type Frequency struct {
	Counts map[string]int    // event key -> total occurrences
	Labels map[string]string // event key -> canonical display label
}

// Key returns the aggregation identity for an event description.
// Two descriptions differing only in case or surrounding whitespace
// are the same logical event.
func Key(desc string) string {
	return strings.ToLower(strings.TrimSpace(desc))
}

// CountEvents folds over every event in date-insertion order, then
// within-date source order. The iteration order is load-bearing: the
// canonical label for a key is frozen at its first occurrence and
// never updated, so column headers stay reproducible.
func CountEvents(log *DailyLog) *Frequency {
	f := &Frequency{
		Counts: make(map[string]int),
		Labels: make(map[string]string),
	}

	for _, date := range log.Dates {
		for _, ev := range log.Events[date] {
			k := Key(ev.Description)
			f.Counts[k]++
			if _, ok := f.Labels[k]; !ok {
				f.Labels[k] = strings.TrimSpace(ev.Description)
			}
		}
	}

	return f
}

// Regular reports whether the key's lifetime count meets the threshold
func (f *Frequency) Regular(key string, threshold int) bool {
	return f.Counts[key] >= threshold
}
