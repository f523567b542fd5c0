package ocr

import "context"

// DefaultLanguage is the language tag assumed when a caller supplies none.
const DefaultLanguage = "eng"

// Input encapsulates a single raster image submitted for recognition.
type Input struct {
	// Image is the encoded image payload in the format declared by Format.
	Image []byte
	// Format is the image content type (e.g. "image/png").
	Format string
	// PageIndex links the input back to the zero-based page it came from;
	// zero for single-image requests.
	PageIndex int
	// DPI carries the effective dots-per-inch. The engine uses it for
	// scaling and layout heuristics; zero means unknown.
	DPI int
	// Language is the engine language tag, e.g. "eng" or "eng+deu".
	Language string
	// Metadata passes engine-specific variables (e.g. Tesseract's
	// "tessedit_pageseg_mode") without hard-coding them into the API.
	Metadata map[string]string
}

// Word is a single recognized token with its pixel bounds.
type Word struct {
	Text       string
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Confidence float64
}

// Result captures recognition output for one input image.
type Result struct {
	// PageIndex mirrors Input.PageIndex.
	PageIndex int
	// Text is the linearized recognized text, whitespace-trimmed.
	Text string
	// Words carries word-level detail when the engine provides it.
	Words []Word
	// Confidence is the mean word confidence in [0, 1], zero when unknown.
	Confidence float64
}

// Engine is the recognition provider contract: one image in, one result out.
// Implementations must be safe for concurrent callers; serializing a
// non-reentrant underlying engine is the implementation's responsibility.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (Result, error)
}
