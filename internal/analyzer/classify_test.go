package analyzer

import (
	"errors"
	"strings"
	"testing"
)

func TestTimeNormalizationStripsLeadingZero(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"padded afternoon", "04:15 PM", "4:15 PM"},
		{"padded morning", "05:48 AM", "5:48 AM"},
		{"midnight stays padded minutes", "12:00 AM", "12:00 AM"},
		{"noon", "12:00 PM", "12:00 PM"},
		{"already bare", "4:15 PM", "4:15 PM"},
	}

	freq := &Frequency{Counts: map[string]int{}, Labels: map[string]string{}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := classifyDay("Mar 1, 2025",
				[]Event{{Time: tt.input, Description: "one-off"}}, freq, 3)
			if err != nil {
				t.Fatalf("classifyDay() error = %v", err)
			}
			if len(stats.Other) != 1 {
				t.Fatalf("expected 1 other event, got %d", len(stats.Other))
			}
			if stats.Other[0].Time != tt.expected {
				t.Errorf("normalized %q = %q, want %q", tt.input, stats.Other[0].Time, tt.expected)
			}
		})
	}
}

func TestClassifyPartition(t *testing.T) {
	events := []Event{
		{Time: "1:00 AM", Description: "Feed"},
		{Time: "2:00 AM", Description: "feed"},
		{Time: "3:00 AM", Description: "Burp"},
	}
	freq := &Frequency{
		Counts: map[string]int{"feed": 3, "burp": 1},
		Labels: map[string]string{"feed": "Feed", "burp": "Burp"},
	}

	stats, err := classifyDay("Mar 1, 2025", events, freq, 3)
	if err != nil {
		t.Fatalf("classifyDay() error = %v", err)
	}

	if stats.Regular["Feed"] != 2 {
		t.Errorf("expected 2 Feed occurrences under the canonical header, got %d", stats.Regular["Feed"])
	}
	if len(stats.Other) != 1 || stats.Other[0].Description != "Burp" {
		t.Errorf("expected Burp in the other list, got %+v", stats.Other)
	}
}

func TestOtherSortedByTimeOfDay(t *testing.T) {
	events := []Event{
		{Time: "10:30 PM", Description: "late"},
		{Time: "12:05 AM", Description: "first"},
		{Time: "1:00 PM", Description: "midday"},
	}
	freq := &Frequency{Counts: map[string]int{}, Labels: map[string]string{}}

	stats, err := classifyDay("Mar 1, 2025", events, freq, 3)
	if err != nil {
		t.Fatalf("classifyDay() error = %v", err)
	}

	var got []string
	for _, o := range stats.Other {
		got = append(got, o.Description)
	}
	want := []string{"first", "midday", "late"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("other order = %v, want %v", got, want)
		}
	}
}

func TestEqualTimesKeepSourceOrder(t *testing.T) {
	events := []Event{
		{Time: "9:00 AM", Description: "first written"},
		{Time: "9:00 AM", Description: "second written"},
		{Time: "8:00 AM", Description: "earlier"},
	}
	freq := &Frequency{Counts: map[string]int{}, Labels: map[string]string{}}

	stats, err := classifyDay("Mar 1, 2025", events, freq, 3)
	if err != nil {
		t.Fatalf("classifyDay() error = %v", err)
	}

	if stats.Other[0].Description != "earlier" {
		t.Fatalf("expected the earlier time first, got %+v", stats.Other)
	}
	if stats.Other[1].Description != "first written" || stats.Other[2].Description != "second written" {
		t.Errorf("equal times must preserve source order, got %+v", stats.Other)
	}
}

func TestMalformedTimeIsFatal(t *testing.T) {
	tests := []struct {
		name string
		time string
	}{
		{"hour out of range", "13:61 AM"},
		{"minute out of range", "9:61 AM"},
		{"hour zero", "0:30 AM"},
		{"padded hour zero", "00:30 AM"},
	}

	freq := &Frequency{Counts: map[string]int{}, Labels: map[string]string{}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := classifyDay("Mar 1, 2025",
				[]Event{{Time: tt.time, Description: "nap"}}, freq, 3)
			if err == nil {
				t.Fatalf("expected error for time %q", tt.time)
			}

			var malformed *MalformedTimeError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedTimeError, got %T: %v", err, err)
			}
			if !strings.Contains(malformed.Line, tt.time) {
				t.Errorf("error should identify the offending line, got %q", malformed.Line)
			}
		})
	}
}
