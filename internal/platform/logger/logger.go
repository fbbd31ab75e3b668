package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger. Text output keeps local logs
// readable; the log shipper handles JSON conversion downstream.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
