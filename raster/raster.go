package raster

// Package raster turns documents and image files into the page buffers the
// recognition pipeline consumes. Rendering is delegated to an external
// engine behind the Renderer interface so tests can substitute fakes.

import "context"

// Image content types produced by the loader and renderer.
const (
	FormatPNG  = "image/png"
	FormatJPEG = "image/jpeg"
	FormatTIFF = "image/tiff"
	FormatBMP  = "image/bmp"
)

// Buffer holds one encoded raster image. Buffers are single-owner and
// transient: they belong to the stage that produced them until handed to the
// recognition engine, and are never shared across concurrent calls.
type Buffer struct {
	Width  int
	Height int
	// DPI is the effective dots-per-inch, zero when unknown (e.g. a loaded
	// image file with no density metadata).
	DPI    int
	Format string
	Data   []byte
}

// Page pairs a zero-based page index with its rendered buffer, or with the
// page-level error that prevented rendering. A document that renders some
// pages and not others still yields one Page per index.
type Page struct {
	Index  int
	Buffer *Buffer
	Err    error
}

// Renderer converts a paginated document into ordered page buffers.
type Renderer interface {
	Rasterize(ctx context.Context, path string) ([]Page, error)
}
