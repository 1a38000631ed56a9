package testutil

import (
	"io"
	"log/slog"
)

// NewNopLogger returns a logger that discards everything, for tests
func NewNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
