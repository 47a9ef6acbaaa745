// Package render draws warehouse shelf labels onto an abstract drawing surface.
//
// # Overview
//
// This package contains the drawing half of the label pipeline. It provides:
//
//   - The [Surface] interface, an abstract page-oriented canvas using
//     bottom-left origin coordinates in points
//   - [PDFSurface], the production Surface backed by go-pdf/fpdf
//   - [DrawLabel], which composes one label (border, zone header, aisle and
//     ambient text, up arrow, QR code) onto a surface
//   - QR encoding via [QREncoder], with optional cross-run deduplication
//     through [CachedEncoder]
//   - The label background color table ([FillColor])
//
// # Coordinates
//
// All Surface coordinates are in points with the origin at the bottom-left
// corner of the page, matching the layout package. PDFSurface converts to
// the top-left origin its backend expects, so callers never deal with the
// flipped axis.
//
// # Usage
//
//	surface := render.NewPDFSurface(cfg)
//	surface.AddPage()
//	err := render.DrawLabel(surface, p.X, p.Y, rec, cfg, render.QREncoder{})
//	err = surface.Output(w)
package render
