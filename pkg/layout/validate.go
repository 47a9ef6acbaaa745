package layout

import "github.com/shelfmark/shelfmark/pkg/errors"

// Validate checks that the configured grid physically fits the page and that
// the section ratios are usable. It returns a structured error naming the
// failing inequality so mis-sized configs surface before rendering instead of
// silently overflowing the page.
func (c Config) Validate() error {
	if c.Columns < 1 || c.Rows < 1 {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"grid must have at least one column and one row (got %d×%d)", c.Columns, c.Rows)
	}

	for i, r := range c.SectionRatios {
		if r <= 0 {
			return errors.New(errors.ErrCodeInvalidRatios,
				"section ratio %d must be positive (got %g)", i, r)
		}
	}

	hExtent := c.LeftMargin + float64(c.Columns)*c.LabelWidth + float64(c.Columns-1)*c.HGap
	if hExtent > c.PageWidth {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"grid overflows page horizontally: left_margin + %d*label_width + %d*h_gap = %.2fpt > page_width %.2fpt",
			c.Columns, c.Columns-1, hExtent, c.PageWidth)
	}

	vExtent := c.TopMargin + float64(c.Rows)*c.LabelHeight + float64(c.Rows-1)*c.VGap
	if vExtent > c.PageHeight {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"grid overflows page vertically: top_margin + %d*label_height + %d*v_gap = %.2fpt > page_height %.2fpt",
			c.Rows, c.Rows-1, vExtent, c.PageHeight)
	}

	return nil
}
