package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lixenwraith/vi-volley/parameter"
)

const logFileName = "volley-sandbox.log"

var (
	logDir     = parameter.LogDir
	maxLogSize = int64(parameter.MaxLogBytes)
)

// setupLogging routes logs to a file under logDir with -debug, otherwise discards everything
// so nothing reaches the terminal the UI owns
// The returned file is nil when logging is disabled or the file cannot be opened
func setupLogging(debug bool) (*slog.Logger, *os.File) {
	if !debug {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		_ = os.Rename(logPath, logPath+".old")
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}

	log.SetOutput(f)
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f
}
