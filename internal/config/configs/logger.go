package configs

import (
	"log/slog"
	"strings"
)

// Logger configures the slog handler built in main. Level is one of
// "debug", "info", "warn" or "error"; Format is "text" or "json". AddSource
// annotates every record with the calling file and line.
type Logger struct {
	Level     string `env:"LEVEL" envDefault:"info"`
	Format    string `env:"FORMAT" envDefault:"text"`
	AddSource bool   `env:"ADD_SOURCE" envDefault:"false"`
}

// SlogLevel converts Level into a slog.Level, falling back to info.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat returns "json" or "text"; unknown formats become "text".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}

// HandlerOptions returns the slog options for the configured level.
func (c Logger) HandlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.AddSource}
}
