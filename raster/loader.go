package raster

import (
	"bytes"
	"errors"
	"image"
	"io/fs"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/bertvanbrakel/mcp-ocr/fault"
)

var formatMIME = map[string]string{
	"png":  FormatPNG,
	"jpeg": FormatJPEG,
	"tiff": FormatTIFF,
	"bmp":  FormatBMP,
}

// LoadImage reads a single image file into a Buffer. The file is decoded only
// far enough to verify the format and capture dimensions; the original
// encoded bytes are what the engine receives.
func LoadImage(path string) (*Buffer, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, statFailure(path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		// The file vanished between the existence check and the read.
		return nil, statFailure(path, err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fault.Errorf(fault.UnreadableInput, "decode image %s: %v", path, err)
	}
	mime, ok := formatMIME[format]
	if !ok {
		return nil, fault.Errorf(fault.UnreadableInput, "image %s has unsupported format %q", path, format)
	}
	return &Buffer{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: mime,
		Data:   data,
	}, nil
}

func statFailure(path string, err error) *fault.Failure {
	if errors.Is(err, fs.ErrNotExist) {
		return fault.Errorf(fault.InputNotFound, "%s does not exist", path)
	}
	return fault.Errorf(fault.InputNotFound, "%s is not accessible: %v", path, err)
}
