package imview

import (
	"log/slog"

	"github.com/gogpu/imview/internal/logging"
)

// SetLogger configures the logger for imview and all its sub-packages.
// By default imview produces no log output. Pass nil to restore silence.
//
// SetLogger is safe for concurrent use.
//
// Log levels used by imview:
//   - [slog.LevelDebug]: per-frame diagnostics (program variant, uploads, cache transitions)
//   - [slog.LevelInfo]: lifecycle events (viewer created, colormap textures created)
//   - [slog.LevelWarn]: degraded rendering (unsupported coloring, skipped views)
//   - [slog.LevelError]: GPU setup failures
//
// Example:
//
//	imview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logging.Logger()
}
