package render

import (
	"math"

	"github.com/shelfmark/shelfmark/pkg/label"
	"github.com/shelfmark/shelfmark/pkg/layout"
)

// Drawing constants for one label, in points.
const (
	borderRadius = 10  // corner radius of the label outline
	borderWidth  = 0.5 // outline stroke width

	headerTopPad = 4 // gap between label top and header baseline box

	arrowHalfWidth = 4 // half-width of the directional triangle
	arrowHeight    = 6
	arrowTopInset  = 6 // apex distance below the label top

	qrDownShift = 5 // shifts the QR down to leave room for the arrow
)

// DrawLabel renders one label at (x, y), the bottom-left corner of its
// bounding box. Side effects go only to the surface; the record is consumed
// and nothing is retained across calls.
//
// The label splits into three sections per the config ratios:
//
//	left:   "AISLE" header + aisle text
//	middle: temperature-zone header + ambient text, over the color fill
//	right:  up-pointing triangle + QR code encoding the location verbatim
func DrawLabel(s Surface, x, y float64, rec label.Record, cfg layout.Config, enc Encoder) error {
	widths := cfg.SectionWidths()
	offsets := cfg.SectionOffsets()
	lw, lh := cfg.LabelWidth, cfg.LabelHeight

	// Label outline.
	s.SetStrokeColor(lightGray)
	s.SetLineWidth(borderWidth)
	s.StrokeRoundedRect(x, y, lw, lh, borderRadius)

	// Middle section background.
	s.SetFillColor(FillColor(rec.BGColor))
	s.FillRect(x+offsets[1], y, widths[1], lh)
	s.SetFillColor(black)
	s.SetTextColor(black)

	headerY := y + lh - cfg.HeaderFont.Size - headerTopPad
	contentY := y + lh/2 - cfg.ContentFont.Size/2

	// Left section: aisle.
	leftCX := x + offsets[0] + widths[0]/2
	s.TextCentered(leftCX, headerY, cfg.HeaderFont, "AISLE")
	s.TextCentered(leftCX, contentY, cfg.ContentFont, rec.Aisle)

	// Middle section: zone header derived from the location code.
	midCX := x + offsets[1] + widths[1]/2
	s.TextCentered(midCX, headerY, cfg.HeaderFont, label.ClassifyZone(rec.CodeValue))
	s.TextCentered(midCX, contentY, cfg.ContentFont, rec.Ambient)

	// Right section: directional indicator and scannable code.
	rightCX := x + offsets[2] + widths[2]/2
	drawUpArrow(s, rightCX, y+lh)

	qrSize := math.Min(widths[2]*0.8, lh*0.6)
	png, err := enc.Encode(rec.CodeValue)
	if err != nil {
		return err
	}
	qrX := rightCX - qrSize/2
	qrY := y + (lh-qrSize)/2 - qrDownShift
	return s.ImagePNG(png, qrX, qrY, qrSize, qrSize)
}

// drawUpArrow fills a small upward-pointing triangle centered on cx with its
// apex arrowTopInset below top.
func drawUpArrow(s Surface, cx, top float64) {
	apexY := top - arrowTopInset
	baseY := apexY - arrowHeight
	s.SetFillColor(black)
	s.FillPolygon([]Point{
		{X: cx - arrowHalfWidth, Y: baseY},
		{X: cx, Y: apexY},
		{X: cx + arrowHalfWidth, Y: baseY},
	})
}
