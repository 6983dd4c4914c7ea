package analyzer

import "testing"

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		desc     string
		expected string
	}{
		{"lowercases", "Breastfeeding", "breastfeeding"},
		{"trims", "  Wet diaper  ", "wet diaper"},
		{"mixed case", "WeT DiApEr", "wet diaper"},
		{"already normalized", "synthroid", "synthroid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.desc); got != tt.expected {
				t.Errorf("Key(%q) = %q, want %q", tt.desc, got, tt.expected)
			}
		})
	}
}

func TestCountEventsCaseInsensitive(t *testing.T) {
	log := Parse("Mar 1, 2025 - 1:00 AM: Feed\n" +
		"Mar 1, 2025 - 2:00 AM: feed\n" +
		"Mar 2, 2025 - 3:00 AM: FEED\n")

	freq := CountEvents(log)

	if freq.Counts["feed"] != 3 {
		t.Errorf("expected count 3 for key %q, got %d", "feed", freq.Counts["feed"])
	}
	if len(freq.Counts) != 1 {
		t.Errorf("expected a single key, got %v", freq.Counts)
	}
}

func TestCanonicalLabelIsFirstSeen(t *testing.T) {
	log := Parse("Mar 1, 2025 - 1:00 AM: Wet Diaper\n" +
		"Mar 1, 2025 - 2:00 AM: wet diaper\n" +
		"Mar 2, 2025 - 3:00 AM: WET DIAPER\n")

	freq := CountEvents(log)

	if got := freq.Labels["wet diaper"]; got != "Wet Diaper" {
		t.Errorf("canonical label = %q, want first-seen spelling %q", got, "Wet Diaper")
	}
}

func TestCanonicalLabelFollowsDateInsertionOrder(t *testing.T) {
	// Mar 2 appears first in the source even though Mar 1 sorts earlier,
	// so Mar 2's spelling wins.
	log := Parse("Mar 2, 2025 - 1:00 AM: NAP TIME\n" +
		"Mar 1, 2025 - 1:00 AM: Nap Time\n")

	freq := CountEvents(log)

	if got := freq.Labels["nap time"]; got != "NAP TIME" {
		t.Errorf("canonical label = %q, want %q from the first-encountered date", got, "NAP TIME")
	}
}

func TestGlobalCountMatchesPerDateSum(t *testing.T) {
	log := Parse("Mar 1, 2025 - 1:00 AM: Feed\n" +
		"Mar 1, 2025 - 2:00 AM: Feed\n" +
		"Mar 2, 2025 - 3:00 AM: Feed\n" +
		"Mar 2, 2025 - 4:00 AM: Burp\n")

	freq := CountEvents(log)

	for key, total := range freq.Counts {
		sum := 0
		for _, date := range log.Dates {
			for _, ev := range log.Events[date] {
				if Key(ev.Description) == key {
					sum++
				}
			}
		}
		if sum != total {
			t.Errorf("key %q: global count %d != per-date sum %d", key, total, sum)
		}
	}
}

func TestRegularThreshold(t *testing.T) {
	freq := &Frequency{Counts: map[string]int{"feed": 3, "burp": 2}}

	if !freq.Regular("feed", 3) {
		t.Error("count 3 should be regular at threshold 3")
	}
	if freq.Regular("burp", 3) {
		t.Error("count 2 should not be regular at threshold 3")
	}
	if freq.Regular("missing", 3) {
		t.Error("unknown key should not be regular")
	}
}
