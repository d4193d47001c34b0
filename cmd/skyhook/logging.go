package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyhook/config"
)

// maxLogSize triggers rotation of the previous session's log on startup
const maxLogSize = 10 * 1024 * 1024

// setupLogging opens the log file and returns a logger writing JSON lines to it
// Disabled logging returns a no-op logger and a nil file; output never goes to the terminal
func setupLogging(cfg config.LogConfig) (zerolog.Logger, *os.File, error) {
	if !cfg.Enabled {
		return zerolog.Nop(), nil, nil
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(cfg.Dir, cfg.File)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(logPath, rotatedName(logPath, time.Now())); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	zerolog.DurationFieldUnit = time.Millisecond
	log := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return log, f, nil
}

// rotatedName inserts a timestamp before the extension: skyhook.log -> skyhook-20060102-150405.log
func rotatedName(path string, now time.Time) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + now.Format("20060102-150405") + ext
}
