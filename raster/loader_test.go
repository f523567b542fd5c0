package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bertvanbrakel/mcp-ocr/fault"
)

func writeTestPNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	path := filepath.Join(dir, "sample.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("write png: %v", err)
	}
	return path
}

func TestLoadImage(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 20, 10)

	buf, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}
	if buf.Width != 20 || buf.Height != 10 {
		t.Fatalf("unexpected dimensions %dx%d", buf.Width, buf.Height)
	}
	if buf.Format != FormatPNG {
		t.Fatalf("unexpected format %q", buf.Format)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(buf.Data, raw) {
		t.Fatalf("loader must keep the original encoded bytes")
	}
	if buf.DPI != 0 {
		t.Fatalf("loaded files carry no density, got DPI %d", buf.DPI)
	}
}

func TestLoadImageMissing(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "absent.png"))
	if !fault.IsKind(err, fault.InputNotFound) {
		t.Fatalf("expected InputNotFound, got %v", err)
	}
}

func TestLoadImageUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("definitely not an image"), 0o600); err != nil {
		t.Fatalf("write junk: %v", err)
	}
	_, err := LoadImage(path)
	if !fault.IsKind(err, fault.UnreadableInput) {
		t.Fatalf("expected UnreadableInput, got %v", err)
	}
}
