package render

import "testing"

func TestFillColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
	}{
		{"red", Color{255, 0, 0}},
		{"blue", Color{0, 0, 255}},
		{"white", Color{255, 255, 255}},
		{"RED", Color{255, 0, 0}},  // case-insensitive
		{"Blue", Color{0, 0, 255}}, // case-insensitive
	}

	for _, tt := range tests {
		if got := FillColor(tt.name); got != tt.want {
			t.Errorf("FillColor(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// Unrecognized names fall back to white, same as an explicit "white".
func TestFillColorUnknownIsWhite(t *testing.T) {
	for _, name := range []string{"turquoise", "chartreuse", "", "  "} {
		if got := FillColor(name); got != FillColor("white") {
			t.Errorf("FillColor(%q) = %v, want the white fallback", name, got)
		}
	}
}
