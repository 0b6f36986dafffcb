package app

import (
	"log/slog"
	"os"
)

// NewLogger builds the console logger. Production always emits JSON so log
// shippers can parse it; elsewhere LOG_FORMAT picks between json and the
// pretty text default.
func NewLogger(cfg *Config) *slog.Logger {
	if cfg.IsProduction() || (cfg != nil && cfg.LogFormat == "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
