package ocr

import (
	"bytes"
	"testing"

	"github.com/bertvanbrakel/mcp-ocr/raster"
)

func TestInputFromBuffer(t *testing.T) {
	buf := &raster.Buffer{
		Width:  100,
		Height: 50,
		DPI:    300,
		Format: raster.FormatPNG,
		Data:   []byte{1, 2, 3},
	}
	in := InputFromBuffer(buf, 4,
		WithLanguage("deu"),
		WithMetadata(map[string]string{"psm": "6"}),
	)

	if !bytes.Equal(in.Image, buf.Data) {
		t.Fatalf("unexpected image payload: %v", in.Image)
	}
	if in.Format != raster.FormatPNG {
		t.Fatalf("unexpected format %q", in.Format)
	}
	if in.PageIndex != 4 {
		t.Fatalf("unexpected page index %d", in.PageIndex)
	}
	if in.DPI != 300 {
		t.Fatalf("unexpected dpi %d", in.DPI)
	}
	if in.Language != "deu" {
		t.Fatalf("unexpected language %q", in.Language)
	}
	if in.Metadata["psm"] != "6" {
		t.Fatalf("unexpected metadata: %v", in.Metadata)
	}
}

func TestInputFromBufferDefaults(t *testing.T) {
	in := InputFromBuffer(&raster.Buffer{Data: []byte{1}}, 0)
	if in.Language != DefaultLanguage {
		t.Fatalf("expected default language, got %q", in.Language)
	}
	// Empty language options keep the default.
	WithLanguage("")(&in)
	if in.Language != DefaultLanguage {
		t.Fatalf("empty language must not override the default, got %q", in.Language)
	}
}

func TestTesseractOptions(t *testing.T) {
	in := Input{}
	WithTesseractPSM(6)(&in)
	if got := in.Metadata["tessedit_pageseg_mode"]; got != "6" {
		t.Fatalf("expected PSM to be set, got %q", got)
	}
	WithTesseractWhitelist("ABC")(&in)
	if got := in.Metadata["tessedit_char_whitelist"]; got != "ABC" {
		t.Fatalf("expected whitelist to be set, got %q", got)
	}
}
