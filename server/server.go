package server

// Package server validates incoming tool invocations, drives the extraction
// flows, and maps every outcome onto the tool response envelope. The wire
// framing itself belongs to the MCP library; nothing here parses transport
// bytes.

import (
	"context"

	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"github.com/bertvanbrakel/mcp-ocr/extract"
	"github.com/bertvanbrakel/mcp-ocr/observability"
	"github.com/bertvanbrakel/mcp-ocr/ocr"
	"github.com/bertvanbrakel/mcp-ocr/raster"
)

// Tool names exposed by the service.
const (
	ToolImageToText = "image_to_text"
	ToolPDFToText   = "pdf_to_text"
)

// Router dispatches validated tool requests to the single-image or
// multi-page extraction flow.
type Router struct {
	engine   ocr.Engine
	renderer raster.Renderer
	pages    *extract.Orchestrator
	language string
	logger   observability.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithDefaultLanguage sets the language used when a request omits one.
func WithDefaultLanguage(language string) Option {
	return func(r *Router) {
		if language != "" {
			r.language = language
		}
	}
}

// WithLogger sets the router's logger.
func WithLogger(logger observability.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New constructs a router over the injected engine, renderer, and page
// orchestrator.
func New(engine ocr.Engine, renderer raster.Renderer, pages *extract.Orchestrator, opts ...Option) *Router {
	r := &Router{
		engine:   engine,
		renderer: renderer,
		pages:    pages,
		language: ocr.DefaultLanguage,
		logger:   observability.NopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register declares both tools on the MCP server.
func (r *Router) Register(s *mcp.StdioServer) {
	imageTool := mcp.NewTool(ToolImageToText,
		mcp.WithDescription("Extract text from a single raster image using OCR"),
		mcp.WithString("image_path", mcp.Required(), mcp.Description("Path to the image file (png, jpeg, tiff, bmp)")),
		mcp.WithString("language", mcp.Description("Tesseract language tag, e.g. \"eng\" or \"eng+deu\"; defaults to \"eng\"")),
	)
	s.RegisterTool(imageTool, r.handler(ToolImageToText))

	pdfTool := mcp.NewTool(ToolPDFToText,
		mcp.WithDescription("Rasterize a paginated document and extract text from every page using OCR"),
		mcp.WithString("document_path", mcp.Required(), mcp.Description("Path to the document file")),
		mcp.WithString("language", mcp.Description("Tesseract language tag, e.g. \"eng\" or \"eng+deu\"; defaults to \"eng\"")),
	)
	s.RegisterTool(pdfTool, r.handler(ToolPDFToText))
}

func (r *Router) handler(tool string) func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Route never returns an error: every failure becomes the error
		// variant of the response so the envelope (and its request id)
		// always goes back to the caller.
		return r.Route(ctx, tool, req.Params.Arguments), nil
	}
}
