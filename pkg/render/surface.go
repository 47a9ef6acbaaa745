package render

import (
	"io"

	"github.com/shelfmark/shelfmark/pkg/layout"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Point is a coordinate pair in page space (bottom-left origin).
type Point struct {
	X, Y float64
}

var (
	black     = Color{0, 0, 0}
	lightGray = Color{211, 211, 211}
)

// Surface is the set of primitive drawing operations the section renderer
// needs. It is an ordered, stateful sink: operations must be issued in
// drawing order, and AddPage advances the cursor to a fresh page.
type Surface interface {
	// AddPage starts a new page and makes it current.
	AddPage()

	// PageCount reports the number of pages started so far.
	PageCount() int

	SetLineWidth(w float64)
	SetStrokeColor(c Color)
	SetFillColor(c Color)
	SetTextColor(c Color)

	// StrokeRoundedRect outlines a rectangle with rounded corners. (x, y) is
	// the bottom-left corner of the bounding box.
	StrokeRoundedRect(x, y, w, h, radius float64)

	// FillRect fills a rectangle with the current fill color.
	FillRect(x, y, w, h float64)

	// TextCentered draws text horizontally centered on cx with its baseline
	// at the given y.
	TextCentered(cx, baseline float64, font layout.Font, text string)

	// FillPolygon fills the polygon described by pts with the current fill
	// color.
	FillPolygon(pts []Point)

	// ImagePNG places a PNG image into the given rectangle. The image data
	// stays in memory; no intermediate file is created.
	ImagePNG(png []byte, x, y, w, h float64) error

	// Output writes the finished document to w.
	Output(w io.Writer) error
}
