// Package layout describes the physical geometry of a label sheet: page and
// label dimensions, the grid the labels tile into, and the proportional
// three-section split inside each label.
//
// All dimensions are in PostScript points (1/72 inch), the native unit of the
// PDF drawing surface. Page coordinates have their origin at the bottom-left
// corner with y increasing upward.
package layout

// Inch is one inch in points.
const Inch = 72.0

// Font names the typeface used for a text role. Core PDF font names are
// accepted (e.g. "Helvetica-Bold"); the drawing surface resolves them.
type Font struct {
	Name string
	Size float64
}

// Config holds the immutable sheet geometry. Construct it once via Default
// (optionally overridden from a TOML file with Load) and pass it by value;
// it is never mutated during a render.
//
// Config does not range-check its fields on construction: negative margins or
// an oversized grid produce garbage geometry rather than an error. Call
// Validate before rendering to catch grid/page mismatches.
type Config struct {
	PageWidth  float64
	PageHeight float64

	LabelWidth  float64
	LabelHeight float64

	Columns int
	Rows    int

	TopMargin  float64
	LeftMargin float64

	HGap float64
	VGap float64

	HeaderFont  Font
	ContentFont Font

	// SectionRatios is the left:middle:right width split. Any three positive
	// values are valid; the sum is the normalization denominator.
	SectionRatios [3]float64
}

// Default returns the stock configuration: US Letter pages carrying a 3×10
// grid of 2.625in × 1in labels (Avery 5160-compatible), sections split 1:2:1.
func Default() Config {
	return Config{
		PageWidth:  8.5 * Inch,
		PageHeight: 11 * Inch,

		LabelWidth:  2.625 * Inch,
		LabelHeight: 1 * Inch,

		Columns: 3,
		Rows:    10,

		TopMargin:  0.5 * Inch,
		LeftMargin: 0.19 * Inch,

		HGap: 0.125 * Inch,
		VGap: 0,

		HeaderFont:  Font{Name: "Helvetica-Bold", Size: 12},
		ContentFont: Font{Name: "Helvetica-Bold", Size: 20},

		SectionRatios: [3]float64{1, 2, 1},
	}
}

// LabelsPerPage returns the grid capacity of one page.
func (c Config) LabelsPerPage() int {
	return c.Columns * c.Rows
}

// SectionWidths returns the absolute widths of the three label sections.
// The widths are the proportional split of LabelWidth by SectionRatios and
// sum to LabelWidth within floating-point tolerance.
func (c Config) SectionWidths() [3]float64 {
	total := c.SectionRatios[0] + c.SectionRatios[1] + c.SectionRatios[2]
	var w [3]float64
	for i, r := range c.SectionRatios {
		w[i] = r / total * c.LabelWidth
	}
	return w
}

// SectionOffsets returns the x-offset of each section relative to the
// label's own origin: 0, w0, w0+w1.
func (c Config) SectionOffsets() [3]float64 {
	w := c.SectionWidths()
	return [3]float64{0, w[0], w[0] + w[1]}
}
