package tesseract

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"github.com/bertvanbrakel/mcp-ocr/fault"
	"github.com/bertvanbrakel/mcp-ocr/ocr"
)

// Config carries the engine's static configuration.
type Config struct {
	// DataDir points at the tessdata directory holding the language model
	// files. Empty uses the path Tesseract was built with.
	DataDir string
}

// Engine implements ocr.Engine on a single long-lived Tesseract client.
//
// Tesseract is not safe for concurrent use. All access to the client —
// language selection included, so one call's language cannot leak into
// another's recognition pass — happens inside a single critical section.
type Engine struct {
	mu     sync.Mutex
	client *gosseract.Client
	// available is the installed-language snapshot taken at construction;
	// nil means the snapshot was unavailable and the check is skipped.
	available map[string]bool
}

// New constructs the engine and opens the underlying Tesseract client. The
// caller owns the engine and must Close it to release the native handle.
func New(cfg Config) (*Engine, error) {
	client := gosseract.NewClient()
	if cfg.DataDir != "" {
		if err := client.SetTessdataPrefix(cfg.DataDir); err != nil {
			client.Close()
			return nil, fmt.Errorf("set tessdata prefix %s: %w", cfg.DataDir, err)
		}
	}
	e := &Engine{client: client}
	// The snapshot only reflects the default tessdata path, so skip it when
	// a custom directory is configured.
	if cfg.DataDir == "" {
		if langs, err := gosseract.GetAvailableLanguages(); err == nil && len(langs) > 0 {
			e.available = make(map[string]bool, len(langs))
			for _, l := range langs {
				e.available[l] = true
			}
		}
	}
	return e, nil
}

func (e *Engine) Name() string { return "tesseract" }

// Close releases the native client. The engine must not be used afterwards.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.client.Close()
}

// Recognize performs a single recognition attempt. There are no retries
// here; retry policy, if any, belongs to the caller.
func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	if err := e.checkLanguage(in.Language); err != nil {
		return ocr.Result{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// A queued call that observes cancellation does not start.
	if err := ctx.Err(); err != nil {
		return ocr.Result{}, err
	}

	if in.Language != "" {
		if err := e.client.SetLanguage(strings.Split(in.Language, "+")...); err != nil {
			return ocr.Result{}, fault.Errorf(fault.UnsupportedLanguage, "set language %q: %v", in.Language, err)
		}
	}
	if err := e.client.SetImageFromBytes(in.Image); err != nil {
		return ocr.Result{}, fault.Errorf(fault.EngineFailure, "set image: %v", err)
	}
	if in.DPI > 0 {
		if err := e.client.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(in.DPI)); err != nil {
			return ocr.Result{}, fault.Errorf(fault.EngineFailure, "set dpi: %v", err)
		}
	}
	for k, v := range in.Metadata {
		if err := e.client.SetVariable(gosseract.SettableVariable(k), v); err != nil {
			return ocr.Result{}, fault.Errorf(fault.EngineFailure, "set variable %s: %v", k, err)
		}
	}

	text, err := e.client.Text()
	if err != nil {
		return ocr.Result{}, fault.Errorf(fault.EngineFailure, "recognize: %v", err)
	}

	words, confidence := e.words()
	return ocr.Result{
		PageIndex:  in.PageIndex,
		Text:       strings.TrimSpace(text),
		Words:      words,
		Confidence: confidence,
	}, nil
}

// checkLanguage fails fast on language tags missing from the installed
// snapshot, turning Tesseract's late noisy init error into a clean
// UnsupportedLanguage before the engine is touched.
func (e *Engine) checkLanguage(language string) error {
	if e.available == nil || language == "" {
		return nil
	}
	for _, tag := range strings.Split(language, "+") {
		if !e.available[tag] {
			return fault.Errorf(fault.UnsupportedLanguage, "language %q is not installed", tag)
		}
	}
	return nil
}

// words pulls word-level boxes from the most recent recognition pass. Box
// extraction failures degrade to text-only results.
func (e *Engine) words() ([]ocr.Word, float64) {
	boxes, err := e.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return nil, 0
	}
	words := make([]ocr.Word, 0, len(boxes))
	var sum float64
	for _, b := range boxes {
		conf := b.Confidence / 100.0
		sum += conf
		words = append(words, ocr.Word{
			Text:       b.Word,
			X:          float64(b.Box.Min.X),
			Y:          float64(b.Box.Min.Y),
			Width:      float64(b.Box.Dx()),
			Height:     float64(b.Box.Dy()),
			Confidence: conf,
		})
	}
	return words, sum / float64(len(words))
}
