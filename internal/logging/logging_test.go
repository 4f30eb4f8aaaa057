package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	Set(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should not be enabled at any level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer Set(nil)

	Logger().Warn("coloring fallback", "channels", 2)
	if !strings.Contains(buf.String(), "coloring fallback") {
		t.Errorf("log output = %q, want message", buf.String())
	}

	Set(nil)
	buf.Reset()
	Logger().Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("log output after reset = %q, want empty", buf.String())
	}
}
