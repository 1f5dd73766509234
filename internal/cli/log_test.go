package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/buelent/untangle/pkg/config"
)

func TestNewLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message leaked through an info-level logger")
	}
	if !strings.Contains(out, "shown") {
		t.Error("info message missing from output")
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)

	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext returned a different logger")
	}
}

func TestLoggerFromContextFallback(t *testing.T) {
	if got := loggerFromContext(context.Background()); got == nil {
		t.Error("loggerFromContext returned nil for an empty context")
	}
}

func TestConfigContextRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.TileSize = 32

	ctx := withConfig(context.Background(), cfg)
	if got := configFromContext(ctx); got != cfg {
		t.Error("configFromContext returned a different config")
	}
}

func TestConfigFromContextFallback(t *testing.T) {
	got := configFromContext(context.Background())
	if got == nil {
		t.Fatal("configFromContext returned nil for an empty context")
	}
	want := config.Default()
	if got.TileSize != want.TileSize || got.MaxDegree != want.MaxDegree {
		t.Errorf("fallback config = %+v, want defaults", got)
	}
}

func TestProgressLogsElapsed(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	prog.done("Generated 10 vertices")

	out := buf.String()
	if !strings.Contains(out, "Generated 10 vertices") {
		t.Errorf("output %q missing completion message", out)
	}
	if !strings.Contains(out, "(") || !strings.Contains(out, ")") {
		t.Errorf("output %q missing elapsed duration", out)
	}
}
