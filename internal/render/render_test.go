package render

import (
	"strings"
	"testing"

	"babysched/internal/analyzer"
)

func TestReportEmpty(t *testing.T) {
	out := Report(&analyzer.Report{})
	if !strings.Contains(out, "No events found") {
		t.Errorf("empty report output = %q", out)
	}
}

func TestReportContainsHeadersAndCells(t *testing.T) {
	data := "Mar 1, 2025 - 1:00 AM: Feed\n" +
		"Mar 1, 2025 - 2:00 AM: Feed\n" +
		"Mar 1, 2025 - 3:00 AM: Feed\n" +
		"Mar 2, 2025 - 1:00 AM: Burp\n"

	rep, err := analyzer.Analyze(data, analyzer.Options{RegularThreshold: 3, StaleWindow: 3})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	out := Report(rep)

	for _, want := range []string{"Date", "Feed", "Other", "Mar 1", "Mar 2", "1:00 AM - Burp"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "2025") {
		t.Error("print table should strip the year from dates")
	}
	if strings.Contains(out, "Hidden Events") {
		t.Error("no hidden summary expected without stale events")
	}
}

func TestReportIncludesHiddenSummary(t *testing.T) {
	rep := &analyzer.Report{
		Columns: []string{"Nap"},
		Rows: []analyzer.Row{
			{Date: "Mar 2, 2025", Counts: []int{1}},
		},
		Hidden: []analyzer.HiddenEvent{{Label: "Feed", Count: 5}},
	}

	out := Report(rep)

	for _, want := range []string{"Hidden Events", "Event", "Total Count", "Feed", "5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
