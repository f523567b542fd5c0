package raster

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bertvanbrakel/mcp-ocr/fault"
)

func TestRasterizeMissingDocument(t *testing.T) {
	r := NewMuPDFRenderer()
	_, err := r.Rasterize(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	if !fault.IsKind(err, fault.InputNotFound) {
		t.Fatalf("expected InputNotFound, got %v", err)
	}
}

func TestRasterizeCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("%PDF-not really"), 0o600); err != nil {
		t.Fatalf("write junk pdf: %v", err)
	}
	_, err := NewMuPDFRenderer().Rasterize(context.Background(), path)
	if !fault.IsKind(err, fault.CorruptDocument) {
		t.Fatalf("expected CorruptDocument, got %v", err)
	}
}

func TestRasterizeUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.docx")
	if err := os.WriteFile(path, []byte("PK\x03\x04"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	_, err := NewMuPDFRenderer().Rasterize(context.Background(), path)
	if !fault.IsKind(err, fault.UnsupportedDocument) {
		t.Fatalf("expected UnsupportedDocument, got %v", err)
	}
}

func TestRendererOptions(t *testing.T) {
	r := NewMuPDFRenderer(WithDPI(150), WithWorkers(2))
	if r.dpi != 150 || r.workers != 2 {
		t.Fatalf("options not applied: dpi=%d workers=%d", r.dpi, r.workers)
	}
	// Non-positive values keep the defaults.
	r = NewMuPDFRenderer(WithDPI(0), WithWorkers(-1))
	if r.dpi != DefaultDPI || r.workers < 1 {
		t.Fatalf("defaults not kept: dpi=%d workers=%d", r.dpi, r.workers)
	}
}
