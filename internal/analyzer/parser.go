package analyzer

import (
	"regexp"
	"strings"
)

// lineRe matches the one supported row format:
//
//	"Mar 11, 2025 - 5:48 AM: Breastfeeding"
//
// The whole line must conform. AM/PM must follow the minutes after a
// single space; spacing inside the date and around the dash is flexible.
var lineRe = regexp.MustCompile(
	`^([A-Za-z]{3}\s+\d{1,2},\s+\d{4})\s*-\s*(\d{1,2}:\d{2} (?:AM|PM)):\s*(.+)$`)

// Parse scans raw multi-line text and groups matching rows by date.
// Blank lines and lines that do not match the row format are skipped
// silently; they contribute nothing to the result.
func Parse(data string) *DailyLog {
	log := &DailyLog{Events: make(map[string][]Event)}

	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		// Collapse interior whitespace so "Mar  2,  2025" and
		// "Mar 2, 2025" land in the same bucket.
		date := strings.Join(strings.Fields(m[1]), " ")

		if _, seen := log.Events[date]; !seen {
			log.Dates = append(log.Dates, date)
		}
		log.Events[date] = append(log.Events[date], Event{
			Time:        m[2],
			Description: strings.TrimSpace(m[3]),
		})
	}

	return log
}
