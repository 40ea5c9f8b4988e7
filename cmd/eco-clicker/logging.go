package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/eco-clicker/config"
)

const rotateStampFormat = "20060102-150405"

// setupLogging opens the log file and returns a logger writing to it
// Disabled logging discards everything; the TUI owns stdout and stderr
func setupLogging(cfg config.LogConfig, maxBytes int64, sessionID string) (*slog.Logger, *os.File) {
	if !cfg.Enabled {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}

	rotateLog(cfg.Path, maxBytes)

	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}

	// Third-party packages logging through the standard logger land in the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: cfg.Level})
	return slog.New(handler).With("session", sessionID), file
}

// rotateLog renames an oversized log to a timestamped sibling with the same extension
func rotateLog(path string, maxBytes int64) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxBytes {
		return
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", strings.TrimSuffix(path, ext), time.Now().Format(rotateStampFormat), ext)
	_ = os.Rename(path, rotated)
}
