package layout

import (
	"github.com/BurntSushi/toml"

	"github.com/shelfmark/shelfmark/pkg/errors"
)

// fileConfig mirrors the TOML layout file. Dimensions in the file are
// denominated in inches for human editing; Load converts to points.
// Pointer fields distinguish "absent" from "zero" so a file only overrides
// the keys it actually sets.
type fileConfig struct {
	Page struct {
		Width  *float64 `toml:"width"`
		Height *float64 `toml:"height"`
	} `toml:"page"`

	Label struct {
		Width  *float64 `toml:"width"`
		Height *float64 `toml:"height"`
	} `toml:"label"`

	Grid struct {
		Columns *int `toml:"columns"`
		Rows    *int `toml:"rows"`
	} `toml:"grid"`

	Margins struct {
		Top  *float64 `toml:"top"`
		Left *float64 `toml:"left"`
	} `toml:"margins"`

	Gaps struct {
		Horizontal *float64 `toml:"horizontal"`
		Vertical   *float64 `toml:"vertical"`
	} `toml:"gaps"`

	Fonts struct {
		Header      *string  `toml:"header"`
		HeaderSize  *float64 `toml:"header_size"`
		Content     *string  `toml:"content"`
		ContentSize *float64 `toml:"content_size"`
	} `toml:"fonts"`

	SectionRatios []float64 `toml:"section_ratios"`
}

// Load reads a TOML layout file and applies it on top of the default
// configuration. Keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse layout config %s", path)
	}

	applyInches := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src * Inch
		}
	}

	applyInches(&cfg.PageWidth, fc.Page.Width)
	applyInches(&cfg.PageHeight, fc.Page.Height)
	applyInches(&cfg.LabelWidth, fc.Label.Width)
	applyInches(&cfg.LabelHeight, fc.Label.Height)
	applyInches(&cfg.TopMargin, fc.Margins.Top)
	applyInches(&cfg.LeftMargin, fc.Margins.Left)
	applyInches(&cfg.HGap, fc.Gaps.Horizontal)
	applyInches(&cfg.VGap, fc.Gaps.Vertical)

	if fc.Grid.Columns != nil {
		cfg.Columns = *fc.Grid.Columns
	}
	if fc.Grid.Rows != nil {
		cfg.Rows = *fc.Grid.Rows
	}

	if fc.Fonts.Header != nil {
		cfg.HeaderFont.Name = *fc.Fonts.Header
	}
	if fc.Fonts.HeaderSize != nil {
		cfg.HeaderFont.Size = *fc.Fonts.HeaderSize
	}
	if fc.Fonts.Content != nil {
		cfg.ContentFont.Name = *fc.Fonts.Content
	}
	if fc.Fonts.ContentSize != nil {
		cfg.ContentFont.Size = *fc.Fonts.ContentSize
	}

	if fc.SectionRatios != nil {
		if len(fc.SectionRatios) != 3 {
			return Config{}, errors.New(errors.ErrCodeInvalidRatios,
				"section_ratios must have exactly 3 entries (got %d)", len(fc.SectionRatios))
		}
		copy(cfg.SectionRatios[:], fc.SectionRatios)
	}

	return cfg, nil
}
