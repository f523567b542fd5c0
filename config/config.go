package config

// Package config loads service configuration from MCP_OCR_* environment
// variables, applying documented defaults for anything unset.

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/bertvanbrakel/mcp-ocr/ocr"
	"github.com/bertvanbrakel/mcp-ocr/raster"
)

const (
	envTessdataDir = "MCP_OCR_TESSDATA_DIR"
	envLanguage    = "MCP_OCR_LANGUAGE"
	envDPI         = "MCP_OCR_DPI"
	envWorkers     = "MCP_OCR_WORKERS"
)

// maxWorkers caps the default worker count to bound the raster buffers held
// simultaneously on large documents.
const maxWorkers = 8

// Config carries everything the service bootstrap needs.
type Config struct {
	// TessdataDir is the directory holding the recognition engine's
	// language model files. Empty means the engine's compiled-in default.
	TessdataDir string
	// Language is the default language tag for requests that omit one.
	Language string
	// DPI is the document rendering resolution.
	DPI int
	// Workers bounds per-request page concurrency.
	Workers int
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		TessdataDir: os.Getenv(envTessdataDir),
		Language:    ocr.DefaultLanguage,
		DPI:         raster.DefaultDPI,
		Workers:     defaultWorkers(),
	}
	if v := os.Getenv(envLanguage); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv(envDPI); v != "" {
		dpi, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envDPI, err)
		}
		if dpi < 72 || dpi > 1200 {
			return nil, fmt.Errorf("%s: %d is outside the supported range [72, 1200]", envDPI, dpi)
		}
		cfg.DPI = dpi
	}
	if v := os.Getenv(envWorkers); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envWorkers, err)
		}
		if workers < 1 {
			return nil, fmt.Errorf("%s: must be at least 1, got %d", envWorkers, workers)
		}
		cfg.Workers = workers
	}
	return cfg, nil
}

func defaultWorkers() int {
	return max(min(runtime.NumCPU(), maxWorkers), 1)
}
