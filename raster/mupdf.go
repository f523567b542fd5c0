package raster

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/sync/errgroup"

	"github.com/bertvanbrakel/mcp-ocr/fault"
	"github.com/bertvanbrakel/mcp-ocr/observability"
)

// DefaultDPI is the rendering resolution used when none is configured. 300
// is the practical floor for reliable recognition accuracy versus the memory
// cost of the page bitmaps.
const DefaultDPI = 300

// Formats MuPDF can open. Anything else is reported as unsupported rather
// than corrupt.
var supportedExtensions = map[string]bool{
	".pdf":  true,
	".xps":  true,
	".epub": true,
	".mobi": true,
	".fb2":  true,
	".cbz":  true,
	".svg":  true,
}

// MuPDFRenderer renders document pages to PNG buffers through the MuPDF
// engine. The engine handle is serialized internally; PNG encoding runs
// concurrently up to the worker limit.
type MuPDFRenderer struct {
	dpi     int
	workers int
	logger  observability.Logger
}

// Option configures a MuPDFRenderer.
type Option func(*MuPDFRenderer)

// WithDPI sets the rendering resolution.
func WithDPI(dpi int) Option {
	return func(r *MuPDFRenderer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

// WithWorkers bounds the number of pages rendered and encoded concurrently.
func WithWorkers(n int) Option {
	return func(r *MuPDFRenderer) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithLogger sets the renderer's logger.
func WithLogger(logger observability.Logger) Option {
	return func(r *MuPDFRenderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewMuPDFRenderer constructs a renderer with the given options applied over
// the defaults (300 DPI, NumCPU workers, silent logger).
func NewMuPDFRenderer(opts ...Option) *MuPDFRenderer {
	r := &MuPDFRenderer{
		dpi:     DefaultDPI,
		workers: runtime.NumCPU(),
		logger:  observability.NopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rasterize renders every page of the document at path. Pages come back in
// document order; a page whose content cannot be rendered (damaged or
// inaccessible, e.g. in an encrypted document) carries a page-level error
// while the rest of the document still renders. A zero-page document yields
// an empty slice, not an error.
func (r *MuPDFRenderer) Rasterize(ctx context.Context, path string) ([]Page, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, statFailure(path, err)
	}
	doc, err := fitz.New(path)
	if err != nil {
		return nil, openFailure(path, err)
	}
	defer doc.Close()

	total := doc.NumPage()
	r.logger.Debug("document opened",
		observability.String("path", path),
		observability.Int("pages", total),
	)
	if total == 0 {
		return []Page{}, nil
	}

	pages := make([]Page, total)
	var render sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(min(r.workers, total), 1))

	for i := 0; i < total; i++ {
		pages[i] = Page{Index: i}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				pages[i].Err = err
				return nil
			}
			// The engine handle is not safe for concurrent page access.
			render.Lock()
			img, err := doc.ImageDPI(i, float64(r.dpi))
			render.Unlock()
			if err != nil {
				r.logger.Warn("page render failed",
					observability.Int("page", i),
					observability.Error("error", err),
				)
				pages[i].Err = fault.Errorf(fault.CorruptDocument, "render page: %v", err).OnPage(i)
				return nil
			}
			var buf bytes.Buffer
			if err := png.Encode(&buf, img); err != nil {
				pages[i].Err = fault.Errorf(fault.InternalError, "encode page: %v", err).OnPage(i)
				return nil
			}
			pages[i].Buffer = &Buffer{
				Width:  img.Bounds().Dx(),
				Height: img.Bounds().Dy(),
				DPI:    r.dpi,
				Format: FormatPNG,
				Data:   buf.Bytes(),
			}
			return nil
		})
	}
	// Page goroutines record failures instead of returning them, so Wait
	// only joins.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

func openFailure(path string, err error) *fault.Failure {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return fault.Errorf(fault.UnsupportedDocument, "%s: format %q is not supported by the rendering engine", path, ext)
	}
	return fault.Errorf(fault.CorruptDocument, "open %s: %v", path, err)
}
