package label

import "testing"

func TestClassifyZone(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"STOWAGE-A12-B3", ZoneAmbient},
		{"CHILLER-C5-D1", ZoneChilled},
		{"FROZEN-E2-F4", ZoneFreezer},
		{"BULK-G1-H2", ZoneAmbient}, // no marker → default
		{"", ZoneAmbient},           // empty → default
		{"stowage-a1", ZoneAmbient}, // matching is case-sensitive; falls to default
		{"XXSTOWAGEXX", ZoneAmbient},
		{"AFROZENB", ZoneFreezer},
	}

	for _, tt := range tests {
		if got := ClassifyZone(tt.code); got != tt.want {
			t.Errorf("ClassifyZone(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

// A code containing two markers classifies by priority order, not by
// position in the string.
func TestClassifyZonePriority(t *testing.T) {
	if got := ClassifyZone("CHILLER-STOWAGE-X1"); got != ZoneAmbient {
		t.Errorf("STOWAGE should outrank CHILLER, got %q", got)
	}
	if got := ClassifyZone("FROZEN-CHILLER-X1"); got != ZoneChilled {
		t.Errorf("CHILLER should outrank FROZEN, got %q", got)
	}
}

func TestClassifyZoneDeterministic(t *testing.T) {
	const code = "CHILLER-C5-D1"
	first := ClassifyZone(code)
	for i := 0; i < 100; i++ {
		if got := ClassifyZone(code); got != first {
			t.Fatalf("classification changed between calls: %q vs %q", first, got)
		}
	}
}
