package main

import (
	"fmt"
	"log/slog"
	"os"

	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"github.com/bertvanbrakel/mcp-ocr/config"
	"github.com/bertvanbrakel/mcp-ocr/extract"
	"github.com/bertvanbrakel/mcp-ocr/observability"
	"github.com/bertvanbrakel/mcp-ocr/ocr/tesseract"
	"github.com/bertvanbrakel/mcp-ocr/raster"
	"github.com/bertvanbrakel/mcp-ocr/server"
)

const (
	serverName    = "mcp-ocr"
	serverVersion = "0.2.0"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mcp-ocr: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// stdout carries the protocol framing; logs go to stderr.
	logger := observability.NewSlog(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	engine, err := tesseract.New(tesseract.Config{DataDir: cfg.TessdataDir})
	if err != nil {
		return fmt.Errorf("start recognition engine: %w", err)
	}
	defer engine.Close()

	renderer := raster.NewMuPDFRenderer(
		raster.WithDPI(cfg.DPI),
		raster.WithWorkers(cfg.Workers),
		raster.WithLogger(logger),
	)
	pages := extract.New(engine,
		extract.WithWorkers(cfg.Workers),
		extract.WithLogger(logger),
	)
	router := server.New(engine, renderer, pages,
		server.WithDefaultLanguage(cfg.Language),
		server.WithLogger(logger),
	)

	s := mcp.NewStdioServer(serverName, serverVersion)
	router.Register(s)

	logger.Info("mcp-ocr starting",
		observability.String("engine", engine.Name()),
		observability.String("language", cfg.Language),
		observability.Int("dpi", cfg.DPI),
		observability.Int("workers", cfg.Workers),
	)
	return s.Start()
}
