package pipeline

import (
	"bytes"
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/shelfmark/shelfmark/pkg/cache"
	"github.com/shelfmark/shelfmark/pkg/errors"
	"github.com/shelfmark/shelfmark/pkg/label"
	"github.com/shelfmark/shelfmark/pkg/layout"
	"github.com/shelfmark/shelfmark/pkg/render"
	"github.com/shelfmark/shelfmark/pkg/sheet"
	"github.com/shelfmark/shelfmark/pkg/source"
)

// qrCacheTTL bounds how long deduplicated QR images live in the cache.
const qrCacheTTL = 24 * time.Hour

// Runner executes the label pipeline. It is safe to reuse across runs; all
// per-run state lives in the Options and the surfaces it creates.
type Runner struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewRunner creates a Runner. A nil cache disables QR deduplication across
// runs; a nil logger disables progress logging.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cache: c, logger: logger}
}

// Execute runs the full pipeline: read the table, resolve and validate the
// geometry, render, and persist the PDF.
//
// The document is rendered fully in memory and written in one step, so a
// failing run never leaves a partial file behind. Empty input produces no
// document at all (Result.Pages == 0, Result.Output empty).
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if !opts.validated {
		if err := opts.ValidateAndSetDefaults(); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := opts.resolveLayout()
	if err != nil {
		return nil, err
	}

	readStart := time.Now()
	records, err := source.Read(opts.Input)
	if err != nil {
		return nil, err
	}
	result := &Result{Records: len(records)}
	result.Stats.ReadTime = time.Since(readStart)
	r.logger.Debug("table read", "path", opts.Input, "records", len(records))

	if len(records) == 0 {
		r.logger.Warn("input table has no records; nothing to render", "path", opts.Input)
		return result, nil
	}

	renderStart := time.Now()
	var buf bytes.Buffer
	pages, err := r.Render(ctx, records, cfg, &buf)
	if err != nil {
		return nil, err
	}
	result.Pages = pages
	result.Stats.RenderTime = time.Since(renderStart)

	if err := os.WriteFile(opts.Output, buf.Bytes(), 0644); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.Output)
	}
	result.Output = opts.Output

	return result, nil
}

// Render draws the records as a PDF into w and returns the page count.
// Callers that want a file should use Execute; Render exists for in-memory
// consumers like the HTTP API. Nothing is written for empty input.
func (r *Runner) Render(ctx context.Context, records []label.Record, cfg layout.Config, w io.Writer) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	enc := &render.CachedEncoder{Next: render.QREncoder{}, Cache: r.cache, TTL: qrCacheTTL}
	surface := render.NewPDFSurface(cfg)
	builder := sheet.NewBuilder(cfg, enc, r.logger)

	pages, err := builder.Build(surface, records)
	if err != nil {
		return 0, err
	}
	if pages == 0 {
		return 0, nil
	}

	if err := surface.Output(w); err != nil {
		return 0, err
	}
	return pages, nil
}
