// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"

	"cryptonews/internal/config"
)

// Setup installs a JSON slog handler writing to w as the default logger and
// returns the level variable so callers can adjust it later.
func Setup(w io.Writer, level string) (*slog.LevelVar, error) {
	parsed, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	lvl := new(slog.LevelVar)
	lvl.Set(parsed)

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})))
	return lvl, nil
}
