package analyzer

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// clockLayout is the 12-hour wall-clock format used throughout.
// Parsing accepts a zero-padded hour; formatting strips it.
const clockLayout = "3:04 PM"

// MalformedTimeError reports a time literal that matched the row grammar
// but is not a valid wall-clock value (e.g. "13:61 AM"). Unlike rows
// that fail the grammar, this aborts the analysis.
type MalformedTimeError struct {
	Line string // the offending row content
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time value in %q", e.Line)
}

// classifyDay partitions one day's events: occurrences of globally
// regular events are counted under their canonical label, everything
// else is collected time-sorted for the Other column. The sort is
// stable so equal times keep their source order.
func classifyDay(date string, events []Event, freq *Frequency, threshold int) (DayStats, error) {
	stats := DayStats{Regular: make(map[string]int)}

	type timedOther struct {
		at time.Time
		ev OtherEvent
	}
	var others []timedOther

	for _, ev := range events {
		at, err := time.Parse(clockLayout, ev.Time)
		if err != nil || hourIsZero(ev.Time) {
			return DayStats{}, &MalformedTimeError{
				Line: fmt.Sprintf("%s - %s: %s", date, ev.Time, ev.Description),
			}
		}

		k := Key(ev.Description)
		if freq.Regular(k, threshold) {
			stats.Regular[freq.Labels[k]]++
		} else {
			others = append(others, timedOther{
				at: at,
				ev: OtherEvent{
					Time:        at.Format(clockLayout),
					Description: ev.Description,
				},
			})
		}
	}

	sort.SliceStable(others, func(i, j int) bool {
		return others[i].at.Before(others[j].at)
	})
	for _, o := range others {
		stats.Other = append(stats.Other, o.ev)
	}

	return stats, nil
}

// hourIsZero reports whether the literal hour field is 0 (or 00).
// time.Parse accepts it and maps it to 12, but a 12-hour clock has no
// hour zero, so such a value must be treated as malformed.
func hourIsZero(clock string) bool {
	hh, _, ok := strings.Cut(clock, ":")
	return ok && hh != "" && strings.TrimLeft(hh, "0") == ""
}
