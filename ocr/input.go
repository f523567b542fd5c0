package ocr

import "github.com/bertvanbrakel/mcp-ocr/raster"

// InputOption mutates a recognition input before dispatch.
type InputOption func(*Input)

// WithLanguage sets the engine language tag. Empty values are ignored so the
// default survives.
func WithLanguage(language string) InputOption {
	return func(in *Input) {
		if language != "" {
			in.Language = language
		}
	}
}

// WithDPI overrides the DPI value on the input.
func WithDPI(dpi int) InputOption {
	return func(in *Input) { in.DPI = dpi }
}

// WithMetadata sets engine-specific variables on the input.
func WithMetadata(metadata map[string]string) InputOption {
	return func(in *Input) {
		if len(metadata) == 0 {
			return
		}
		if in.Metadata == nil {
			in.Metadata = make(map[string]string, len(metadata))
		}
		for k, v := range metadata {
			in.Metadata[k] = v
		}
	}
}

// InputFromBuffer converts a raster buffer into a recognition input for the
// given zero-based page index. The buffer's encoded bytes are handed over
// as-is; the buffer should not be reused afterwards.
func InputFromBuffer(buf *raster.Buffer, pageIndex int, opts ...InputOption) Input {
	in := Input{
		Image:     buf.Data,
		Format:    buf.Format,
		PageIndex: pageIndex,
		DPI:       buf.DPI,
		Language:  DefaultLanguage,
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}
