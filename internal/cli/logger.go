package cli

import (
	"io"
	"log/slog"
	"os"
)

// newLogger sets up logging with JSON output. The terminal itself belongs to
// the game, so logs go to the file named by TERMTRIS_LOG and are discarded
// when it is unset or unwritable.
func newLogger() *slog.Logger {
	path := os.Getenv("TERMTRIS_LOG")
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}
