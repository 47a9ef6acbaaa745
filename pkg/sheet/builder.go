// Package sheet assembles whole label sheets: it walks the input records,
// places each label on the grid, paginates when a page fills, and hands the
// per-label drawing to the render package.
package sheet

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/shelfmark/shelfmark/pkg/label"
	"github.com/shelfmark/shelfmark/pkg/layout"
	"github.com/shelfmark/shelfmark/pkg/render"
)

// Builder renders ordered label records onto a drawing surface. The config
// and encoder are fixed at construction; a Builder carries no state between
// Build calls, so the same Builder can render multiple sheets.
type Builder struct {
	cfg    layout.Config
	enc    render.Encoder
	logger *log.Logger
}

// NewBuilder creates a Builder for the given geometry and code encoder.
// A nil logger disables progress logging.
func NewBuilder(cfg layout.Config, enc render.Encoder, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Builder{cfg: cfg, enc: enc, logger: logger}
}

// Build draws every record onto the surface in input order and returns the
// number of pages produced: zero for empty input, otherwise
// ceil(len(records) / labels-per-page).
//
// Placement is a pure function of the record's zero-based index, so building
// the same records with the same config always yields an identical layout.
// Any drawing or encoding error aborts the build; no partial sheet is
// reported as success.
func (b *Builder) Build(surface render.Surface, records []label.Record) (int, error) {
	perPage := b.cfg.LabelsPerPage()

	for idx, rec := range records {
		if idx%perPage == 0 {
			surface.AddPage()
			b.logger.Debug("starting page", "page", idx/perPage+1)
		}

		p := b.cfg.Placement(idx)
		if err := render.DrawLabel(surface, p.X, p.Y, rec, b.cfg, b.enc); err != nil {
			return 0, fmt.Errorf("label %d (%s): %w", idx, rec.CodeValue, err)
		}
	}

	pages := b.cfg.PageCount(len(records))
	b.logger.Debug("sheet built", "labels", len(records), "pages", pages)
	return pages, nil
}
