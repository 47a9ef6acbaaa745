// Package pipeline provides the core label-generation pipeline for Shelfmark.
//
// This package implements the complete read → layout → render flow used by
// both the CLI and the HTTP API. Centralizing it keeps behavior identical
// across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Read: load warehouse-location records from a CSV or XLSX table
//  2. Layout: resolve the sheet geometry (defaults + optional TOML file)
//     and validate that the grid fits the page
//  3. Render: draw every label onto a PDF surface and persist the document
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "locations.csv",
//	    Output: "labels.pdf",
//	})
package pipeline

import (
	"time"

	"github.com/shelfmark/shelfmark/pkg/errors"
	"github.com/shelfmark/shelfmark/pkg/layout"
)

// DefaultOutput is the output filename used when none is given.
const DefaultOutput = "labels.pdf"

// Options configures one pipeline run.
type Options struct {
	// Input is the path to the CSV or XLSX table. Required.
	Input string

	// Output is the PDF path to write. Defaults to DefaultOutput.
	Output string

	// LayoutFile is an optional TOML file overriding the default sheet
	// geometry.
	LayoutFile string

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input table path is required")
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if err := errors.ValidateOutputPath(o.Output); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// resolveLayout loads the layout file if one is set, otherwise the default
// geometry, and validates the grid against the page either way.
func (o *Options) resolveLayout() (layout.Config, error) {
	cfg := layout.Default()
	if o.LayoutFile != "" {
		var err error
		if cfg, err = layout.Load(o.LayoutFile); err != nil {
			return layout.Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return layout.Config{}, err
	}
	return cfg, nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Records is the number of labels rendered.
	Records int

	// Pages is the number of pages in the document (0 for empty input).
	Pages int

	// Output is the path the document was written to. Empty when nothing
	// was persisted.
	Output string

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution timings.
type Stats struct {
	ReadTime   time.Duration
	RenderTime time.Duration
}
