package server

import (
	"context"
	"time"

	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"github.com/bertvanbrakel/mcp-ocr/fault"
	"github.com/bertvanbrakel/mcp-ocr/observability"
	"github.com/bertvanbrakel/mcp-ocr/ocr"
	"github.com/bertvanbrakel/mcp-ocr/raster"
)

// Route validates the tool name and arguments, runs the matching extraction
// flow, and always produces a response. A single bad request must never take
// the service down, so panics are recovered here and reported as internal
// errors.
func (r *Router) Route(ctx context.Context, tool string, args map[string]any) (res *mcp.CallToolResult) {
	started := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("request handler panicked",
				observability.String("tool", tool),
				observability.Field{Key: "panic", Value: rec},
			)
			res = errorResult(fault.Errorf(fault.InternalError, "internal error: %v", rec))
		}
		r.logger.Debug("request handled",
			observability.String("tool", tool),
			observability.String("duration", time.Since(started).String()),
		)
	}()

	switch tool {
	case ToolImageToText:
		return r.imageToText(ctx, args)
	case ToolPDFToText:
		return r.pdfToText(ctx, args)
	default:
		return errorResult(fault.Errorf(fault.UnknownTool, "unknown tool %q", tool))
	}
}

func (r *Router) imageToText(ctx context.Context, args map[string]any) *mcp.CallToolResult {
	path, err := requiredString(args, "image_path")
	if err != nil {
		return errorResult(fault.From(err))
	}
	language, err := optionalString(args, "language", r.language)
	if err != nil {
		return errorResult(fault.From(err))
	}

	buf, err := raster.LoadImage(path)
	if err != nil {
		return r.failed(ToolImageToText, err)
	}
	res, err := r.engine.Recognize(ctx, ocr.InputFromBuffer(buf, 0, ocr.WithLanguage(language)))
	if err != nil {
		return r.failed(ToolImageToText, err)
	}
	return textResult(res.Text)
}

func (r *Router) pdfToText(ctx context.Context, args map[string]any) *mcp.CallToolResult {
	path, err := requiredString(args, "document_path")
	if err != nil {
		return errorResult(fault.From(err))
	}
	language, err := optionalString(args, "language", r.language)
	if err != nil {
		return errorResult(fault.From(err))
	}

	pages, err := r.renderer.Rasterize(ctx, path)
	if err != nil {
		return r.failed(ToolPDFToText, err)
	}
	text, err := r.pages.Extract(ctx, pages, language)
	if err != nil {
		return r.failed(ToolPDFToText, err)
	}
	return textResult(text)
}

func (r *Router) failed(tool string, err error) *mcp.CallToolResult {
	f := fault.From(err)
	r.logger.Warn("request failed",
		observability.String("tool", tool),
		observability.String("kind", string(f.Kind)),
		observability.Error("error", f),
	)
	return errorResult(f)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(text)},
	}
}

// errorResult renders a failure as the error variant of the response. No
// failure kind ever turns into a success.
func errorResult(f *fault.Failure) *mcp.CallToolResult {
	return mcp.NewErrorResult(f.Error())
}
