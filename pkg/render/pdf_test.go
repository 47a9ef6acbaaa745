package render

import (
	"bytes"
	"testing"

	"github.com/shelfmark/shelfmark/pkg/label"
	"github.com/shelfmark/shelfmark/pkg/layout"
)

func TestSplitFontName(t *testing.T) {
	tests := []struct {
		name   string
		family string
		style  string
	}{
		{"Helvetica-Bold", "Helvetica", "B"},
		{"Helvetica", "Helvetica", ""},
		{"Helvetica-Oblique", "Helvetica", "I"},
		{"Helvetica-BoldOblique", "Helvetica", "BI"},
		{"Courier-Bold", "Courier", "B"},
		{"Times-Roman", "Times", ""},
	}

	for _, tt := range tests {
		family, style := splitFontName(tt.name)
		if family != tt.family || style != tt.style {
			t.Errorf("splitFontName(%q) = (%q, %q), want (%q, %q)",
				tt.name, family, style, tt.family, tt.style)
		}
	}
}

func TestPDFSurfaceStartsEmpty(t *testing.T) {
	s := NewPDFSurface(layout.Default())
	if s.PageCount() != 0 {
		t.Errorf("new surface has %d pages, want 0", s.PageCount())
	}

	s.AddPage()
	s.AddPage()
	if s.PageCount() != 2 {
		t.Errorf("PageCount = %d, want 2", s.PageCount())
	}
}

func TestPDFSurfaceOutput(t *testing.T) {
	cfg := layout.Default()
	s := NewPDFSurface(cfg)
	s.AddPage()

	rec := label.Record{Aisle: "A12", Ambient: "B3", BGColor: "blue", CodeValue: "STOWAGE-A12-B3"}
	p := cfg.Placement(0)
	if err := DrawLabel(s, p.X, p.Y, rec, cfg, QREncoder{}); err != nil {
		t.Fatalf("DrawLabel: %v", err)
	}

	var buf bytes.Buffer
	if err := s.Output(&buf); err != nil {
		t.Fatalf("Output: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}
