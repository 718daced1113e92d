package app

import (
	"io"
	"log/slog"
)

// newLogger builds the app's logger. The pipeline's diagnostics contract is
// plain progress lines on its output stream, so the handler is fixed: text
// format at Info level, no verbosity surface.
func newLogger(outW io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(outW, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
