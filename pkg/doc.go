// Package pkg provides the core libraries for Shelfmark label generation.
//
// # Overview
//
// Shelfmark turns warehouse location tables into printable PDF label sheets.
// The pkg directory is organized by pipeline stage:
//
//  1. [source] - Table ingestion (CSV and XLSX location tables)
//  2. [label] - Domain records and storage-zone classification
//  3. [layout] - Sheet geometry, grid placement, and validation
//  4. [render] - Drawing surfaces, QR encoding, and label composition
//  5. [sheet] - Sheet assembly (placement × drawing across pages)
//  6. [pipeline] - Orchestration (read → layout → render → persist)
//
// Supporting packages: [cache] for QR and render deduplication, [errors]
// for the structured error taxonomy, and [buildinfo] for version metadata.
//
// # Architecture
//
// The typical data flow through Shelfmark:
//
//	CSV/XLSX location table
//	         ↓
//	    [source] package (parse rows into records)
//	         ↓
//	    [layout] package (grid geometry + placements)
//	         ↓
//	    [sheet] + [render] packages (draw labels onto pages)
//	         ↓
//	    PDF output
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "locations.csv",
//	    Output: "labels.pdf",
//	})
//
// [source]: github.com/shelfmark/shelfmark/pkg/source
// [label]: github.com/shelfmark/shelfmark/pkg/label
// [layout]: github.com/shelfmark/shelfmark/pkg/layout
// [render]: github.com/shelfmark/shelfmark/pkg/render
// [sheet]: github.com/shelfmark/shelfmark/pkg/sheet
// [pipeline]: github.com/shelfmark/shelfmark/pkg/pipeline
// [cache]: github.com/shelfmark/shelfmark/pkg/cache
// [errors]: github.com/shelfmark/shelfmark/pkg/errors
// [buildinfo]: github.com/shelfmark/shelfmark/pkg/buildinfo
package pkg
