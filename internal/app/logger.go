package app

import (
	"log/slog"
	"os"
)

// NewLogger builds the process logger and installs it as the slog default so
// background task handlers share it. LOG_FORMAT=json selects machine-readable
// output; anything else gets the text handler.
func NewLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{AddSource: true}
	var handler slog.Handler
	if cfg != nil && cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler).With(slog.String("service", "inventory-master"))
	slog.SetDefault(logger)
	return logger
}
