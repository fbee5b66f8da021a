// Package logging builds the process logger from configuration. Jobs
// run both interactively and from cron, so output can go to the
// console, to a dated file under the log directory, or to both.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/config"
)

// Setup builds the logger described by cfg and installs it as the slog
// default. component names the dated log file, e.g. collector runs
// append to logs/collector_20250825.log. The returned close function
// releases the log file and is a no-op for console-only output.
func Setup(cfg config.LoggingConfig, component string) (*slog.Logger, func() error, error) {
	output := io.Writer(os.Stdout)
	closeFn := func() error { return nil }

	switch strings.ToLower(cfg.Output) {
	case "file":
		file, err := openLogFile(cfg.Dir, component)
		if err != nil {
			return nil, nil, err
		}
		output = file
		closeFn = file.Close
	case "both":
		file, err := openLogFile(cfg.Dir, component)
		if err != nil {
			return nil, nil, err
		}
		output = io.MultiWriter(os.Stdout, file)
		closeFn = file.Close
	default:
		// console
	}

	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger, closeFn, nil
}

// ParseLevel maps a level name to a slog.Level. Unknown values fall
// back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openLogFile opens the component's dated log file in append mode,
// creating the log directory if needed. Append keeps every run from
// the same day in one file.
func openLogFile(dir, component string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s_%s.log", component, time.Now().Format("20060102"))
	path := filepath.Join(dir, name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	return file, nil
}
