package layout

// Placement is the computed position of one label: the zero-based page it
// lands on and the bottom-left corner of its bounding box in page
// coordinates. Placements have no identity beyond the index they were
// computed from.
type Placement struct {
	Page int
	X    float64
	Y    float64
}

// Placement computes where the label with the given zero-based index lands.
//
// Labels fill each page in row-major order, left-to-right then top-to-bottom,
// with row 0 the topmost row. Index LabelsPerPage begins a new page at the
// same relative position as index 0, so the layout is a pure function of
// (index, config) and re-running on the same input is always identical.
//
// No bounds checking is performed against the page size: a grid that does
// not fit the page silently yields off-page or overlapping coordinates.
// Use Validate to reject such configs before rendering.
func (c Config) Placement(index int) Placement {
	perPage := c.LabelsPerPage()
	onPage := index % perPage

	row := onPage / c.Columns
	col := onPage % c.Columns

	return Placement{
		Page: index / perPage,
		X:    c.LeftMargin + float64(col)*(c.LabelWidth+c.HGap),
		Y:    c.PageHeight - c.TopMargin - float64(row+1)*c.LabelHeight - float64(row)*c.VGap,
	}
}

// PageCount returns the number of pages needed for n labels: zero for empty
// input, otherwise ceil(n / LabelsPerPage).
func (c Config) PageCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n-1)/c.LabelsPerPage() + 1
}
