package observability

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlog(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.Info("page recognized", Int("page", 2), String("language", "eng"))

	out := buf.String()
	for _, want := range []string{"page recognized", "page=2", "language=eng"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q: %s", want, out)
		}
	}
}

func TestSlogLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlog(slog.New(slog.NewTextHandler(&buf, nil)))

	scoped := logger.With(String("tool", "pdf_to_text"))
	scoped.Error("render failed", Error("error", errors.New("boom")))

	out := buf.String()
	if !strings.Contains(out, "tool=pdf_to_text") || !strings.Contains(out, "boom") {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l = l.With(String("k", "v"))
	l.Debug("ignored")
	l.Info("ignored")
	l.Warn("ignored")
	l.Error("ignored")
}
