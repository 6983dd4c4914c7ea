package analyzer

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// dateLayout parses the date portion of a row, e.g. "Mar 2, 2025"
const dateLayout = "Jan 2, 2006"

// Options control a single analysis pass
type Options struct {
	// HideStaleEvents removes regular events absent across the trailing
	// window of days, reporting them separately with lifetime counts
	HideStaleEvents bool

	// RegularThreshold is the lifetime count at which an event gets its
	// own column instead of landing in Other
	RegularThreshold int

	// StaleWindow is the number of trailing days an event must be
	// absent from before it is hidden
	StaleWindow int
}

// DefaultOptions returns the documented defaults: hiding enabled,
// threshold 3, trailing window of 3 days
func DefaultOptions() Options {
	return Options{
		HideStaleEvents:  true,
		RegularThreshold: 3,
		StaleWindow:      3,
	}
}

// Analyze runs the full pipeline over one log blob: parse, count,
// classify per day, and build the report. The pass is pure; repeated
// calls with the same input produce identical reports.
func Analyze(data string, opts Options) (*Report, error) {
	return BuildReport(Parse(data), opts)
}

// BuildReport turns a parsed log into the final report. The only error
// source is a MalformedTimeError from the classifier stage; an empty
// log yields an empty report, not an error.
func BuildReport(log *DailyLog, opts Options) (*Report, error) {
	freq := CountEvents(log)

	stats := make(map[string]DayStats, len(log.Dates))
	for _, date := range log.Dates {
		s, err := classifyDay(date, log.Events[date], freq, opts.RegularThreshold)
		if err != nil {
			return nil, err
		}
		stats[date] = s
	}

	days, err := sortDays(log.Dates)
	if err != nil {
		return nil, err
	}

	columns := regularColumns(freq, opts.RegularThreshold)

	var hidden []HiddenEvent
	if opts.HideStaleEvents && opts.StaleWindow > 0 && len(days) >= opts.StaleWindow {
		columns, hidden = filterStale(columns, days[len(days)-opts.StaleWindow:], stats, freq)
	}

	width := timeColumnWidth(stats)

	rows := make([]Row, 0, len(days))
	for _, d := range days {
		s := stats[d.label]
		counts := make([]int, len(columns))
		for i, label := range columns {
			counts[i] = s.Regular[label]
		}
		rows = append(rows, Row{
			Date:   d.label,
			Day:    d.at,
			Counts: counts,
			Other:  formatOther(s.Other, width),
		})
	}

	return &Report{Columns: columns, Rows: rows, Hidden: hidden}, nil
}

// day pairs a date string with its parsed value for sorting
type day struct {
	label string
	at    time.Time
}

// sortDays parses every date string and orders them ascending
func sortDays(dates []string) ([]day, error) {
	days := make([]day, 0, len(dates))
	for _, date := range dates {
		at, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", date, err)
		}
		days = append(days, day{label: date, at: at})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].at.Before(days[j].at)
	})
	return days, nil
}

// regularColumns returns the canonical labels of all regular events,
// sorted lexicographically
func regularColumns(freq *Frequency, threshold int) []string {
	var columns []string
	for k, label := range freq.Labels {
		if freq.Counts[k] >= threshold {
			columns = append(columns, label)
		}
	}
	sort.Strings(columns)
	return columns
}

// filterStale splits the column set into kept and hidden. A column is
// hidden only when its count is zero on every one of the trailing days;
// presence on any of them keeps it, regardless of older history.
func filterStale(columns []string, recent []day, stats map[string]DayStats, freq *Frequency) (kept []string, hidden []HiddenEvent) {
	for _, label := range columns {
		stale := true
		for _, d := range recent {
			if stats[d.label].Regular[label] > 0 {
				stale = false
				break
			}
		}
		if stale {
			hidden = append(hidden, HiddenEvent{
				Label: label,
				Count: freq.Counts[Key(label)],
			})
		} else {
			kept = append(kept, label)
		}
	}
	return kept, hidden
}

// timeColumnWidth returns the length of the longest normalized time
// string across every day's Other list. All Other columns right-align
// to this single dataset-wide width.
func timeColumnWidth(stats map[string]DayStats) int {
	width := 0
	for _, s := range stats {
		for _, o := range s.Other {
			if len(o.Time) > width {
				width = len(o.Time)
			}
		}
	}
	return width
}

// formatOther renders a day's other-event list as newline-joined
// "<time> - <description>" lines with the time right-justified
func formatOther(others []OtherEvent, width int) string {
	lines := make([]string, len(others))
	for i, o := range others {
		lines[i] = fmt.Sprintf("%*s - %s", width, o.Time, o.Description)
	}
	return strings.Join(lines, "\n")
}
