package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Karthick-71/rr-qa-automation-assignment/internal/config"
)

// Setup builds the process logger writing to stdout and the configured log
// file. The returned logger is also installed as slog's default so packages
// constructed without an explicit WithLogger option pick it up.
func Setup(cfg config.Log) *slog.Logger {
	var sinks []io.Writer
	sinks = append(sinks, os.Stdout)

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			log.Printf("[logging] cannot create log dir: %v", err)
		} else {
			f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				log.Printf("[logging] cannot open log file: %v", err)
			} else {
				sinks = append(sinks, f)
			}
		}
	}

	handler := slog.NewTextHandler(io.MultiWriter(sinks...), &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
