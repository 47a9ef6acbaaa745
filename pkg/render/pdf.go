package render

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/shelfmark/shelfmark/pkg/errors"
	"github.com/shelfmark/shelfmark/pkg/layout"
)

// PDFSurface implements Surface on a PDF document. It owns the coordinate
// conversion from the bottom-left page space used by the layout package to
// the top-left space fpdf works in.
//
// The surface starts with zero pages; callers add pages explicitly, so an
// empty render produces an empty document.
type PDFSurface struct {
	pdf        *fpdf.Fpdf
	pageHeight float64
	pages      int
	registered map[string]bool
}

// NewPDFSurface creates a PDF surface sized to the configured page.
func NewPDFSurface(cfg layout.Config) *PDFSurface {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
	})
	pdf.SetTitle("Generated Labels", true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)

	return &PDFSurface{
		pdf:        pdf,
		pageHeight: cfg.PageHeight,
		registered: make(map[string]bool),
	}
}

// AddPage starts a new page.
func (s *PDFSurface) AddPage() {
	s.pdf.AddPage()
	s.pages++
}

// PageCount reports the number of pages added.
func (s *PDFSurface) PageCount() int {
	return s.pages
}

// SetLineWidth sets the stroke width in points.
func (s *PDFSurface) SetLineWidth(w float64) {
	s.pdf.SetLineWidth(w)
}

// SetStrokeColor sets the outline color.
func (s *PDFSurface) SetStrokeColor(c Color) {
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

// SetFillColor sets the fill color for rectangles and polygons.
func (s *PDFSurface) SetFillColor(c Color) {
	s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

// SetTextColor sets the color for subsequent text.
func (s *PDFSurface) SetTextColor(c Color) {
	s.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
}

// StrokeRoundedRect outlines a rounded rectangle; (x, y) is the bottom-left
// corner in page space.
func (s *PDFSurface) StrokeRoundedRect(x, y, w, h, radius float64) {
	s.pdf.RoundedRect(x, s.pageHeight-y-h, w, h, radius, "1234", "D")
}

// FillRect fills a rectangle with the current fill color.
func (s *PDFSurface) FillRect(x, y, w, h float64) {
	s.pdf.Rect(x, s.pageHeight-y-h, w, h, "F")
}

// TextCentered draws text centered on cx with its baseline at the given y.
func (s *PDFSurface) TextCentered(cx, baseline float64, font layout.Font, text string) {
	family, style := splitFontName(font.Name)
	s.pdf.SetFont(family, style, font.Size)
	width := s.pdf.GetStringWidth(text)
	s.pdf.Text(cx-width/2, s.pageHeight-baseline, text)
}

// FillPolygon fills the polygon described by pts.
func (s *PDFSurface) FillPolygon(pts []Point) {
	converted := make([]fpdf.PointType, len(pts))
	for i, p := range pts {
		converted[i] = fpdf.PointType{X: p.X, Y: s.pageHeight - p.Y}
	}
	s.pdf.Polygon(converted, "F")
}

// ImagePNG places PNG data into the given rectangle. Images are registered
// with the document under a content-hash name, so identical images are
// embedded once and no intermediate file ever touches the filesystem.
func (s *PDFSurface) ImagePNG(png []byte, x, y, w, h float64) error {
	sum := sha256.Sum256(png)
	name := "img-" + hex.EncodeToString(sum[:8])

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	if !s.registered[name] {
		s.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
		s.registered[name] = true
	}
	s.pdf.ImageOptions(name, x, s.pageHeight-y-h, w, h, false, opts, 0, "")

	if s.pdf.Err() {
		return errors.Wrap(errors.ErrCodeInternal, s.pdf.Error(), "place image")
	}
	return nil
}

// Output writes the finished PDF to w.
func (s *PDFSurface) Output(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write PDF")
	}
	return nil
}

// splitFontName maps a core PDF font name like "Helvetica-Bold" onto the
// family/style pair fpdf expects.
func splitFontName(name string) (family, style string) {
	family = name
	if i := strings.IndexByte(name, '-'); i >= 0 {
		family = name[:i]
		switch name[i+1:] {
		case "Bold":
			style = "B"
		case "Oblique", "Italic":
			style = "I"
		case "BoldOblique", "BoldItalic":
			style = "BI"
		}
	}
	return family, style
}
