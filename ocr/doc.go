package ocr

// Package ocr defines the recognition contract between the extraction
// pipeline and the engine that turns pixels into text. The interface is
// intentionally small so engines can be backed by native libraries, local
// binaries, or test fakes without leaking provider-specific concerns into
// callers.
