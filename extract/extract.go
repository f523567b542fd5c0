package extract

// Package extract drives recognition across the pages of a document and
// assembles the ordered text result.

import (
	"context"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/bertvanbrakel/mcp-ocr/fault"
	"github.com/bertvanbrakel/mcp-ocr/observability"
	"github.com/bertvanbrakel/mcp-ocr/ocr"
	"github.com/bertvanbrakel/mcp-ocr/raster"
)

// PageBreak separates per-page texts in the assembled result so consumers
// can still locate page transitions in the flattened text.
const PageBreak = "\n\n--- Page Break ---\n\n"

// DefaultWorkers bounds concurrent recognition dispatch when no limit is
// configured. The cap bounds the raster buffers held simultaneously on very
// large documents.
const DefaultWorkers = 4

// Orchestrator fans recognition out over the pages of a document and folds
// the per-page outcomes into a single result.
type Orchestrator struct {
	engine  ocr.Engine
	workers int
	logger  observability.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithWorkers bounds the number of concurrently dispatched page
// recognitions.
func WithWorkers(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithLogger sets the orchestrator's logger.
func WithLogger(logger observability.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New constructs an orchestrator over the given engine.
func New(engine ocr.Engine, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		engine:  engine,
		workers: DefaultWorkers,
		logger:  observability.NopLogger{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type pageTask struct {
	idx  int
	page raster.Page
}

type pageResult struct {
	text string
	err  error
}

// Extract recognizes every page and returns the texts joined in ascending
// page order, independent of completion order. The policy on failure is
// all-or-nothing: every page is still attempted so all failures surface in
// the log, but if any page failed the whole extraction fails with the first
// failing page, and no partial text is exposed. An empty page sequence
// yields empty text.
func (o *Orchestrator) Extract(ctx context.Context, pages []raster.Page, language string) (string, error) {
	if len(pages) == 0 {
		return "", nil
	}

	results := make([]pageResult, len(pages))
	var wg sync.WaitGroup

	pool, err := ants.NewPoolWithFunc(max(min(o.workers, len(pages)), 1), func(arg any) {
		t := arg.(*pageTask)
		defer wg.Done()
		results[t.idx] = o.recognizePage(ctx, t.page, language)
	})
	if err != nil {
		return "", fault.Errorf(fault.InternalError, "create recognition pool: %v", err)
	}
	defer pool.Release()

	for i := range pages {
		wg.Add(1)
		if err := pool.Invoke(&pageTask{idx: i, page: pages[i]}); err != nil {
			wg.Done()
			results[i] = pageResult{err: fault.Errorf(fault.InternalError, "dispatch page: %v", err).OnPage(i)}
		}
	}
	wg.Wait()

	texts := make([]string, len(pages))
	var first *fault.Failure
	failed := 0
	for i, r := range results {
		if r.err != nil {
			failed++
			f := fault.From(r.err)
			if f.Page < 0 {
				f = f.OnPage(i)
			}
			o.logger.Warn("page recognition failed",
				observability.Int("page", i),
				observability.Error("error", f),
			)
			if first == nil {
				first = f
			}
			continue
		}
		texts[i] = r.text
	}
	if first != nil {
		o.logger.Error("extraction failed",
			observability.Int("pages", len(pages)),
			observability.Int("failed", failed),
		)
		return "", first
	}
	return strings.Join(texts, PageBreak), nil
}

func (o *Orchestrator) recognizePage(ctx context.Context, page raster.Page, language string) pageResult {
	if page.Err != nil {
		return pageResult{err: page.Err}
	}
	// Cancellation stops new recognition calls; in-flight calls run to
	// completion because the engine offers no safe interrupt.
	if err := ctx.Err(); err != nil {
		return pageResult{err: err}
	}
	in := ocr.InputFromBuffer(page.Buffer, page.Index, ocr.WithLanguage(language))
	res, err := o.engine.Recognize(ctx, in)
	if err != nil {
		return pageResult{err: err}
	}
	return pageResult{text: res.Text}
}
