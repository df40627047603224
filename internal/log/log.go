// Package log provides categorized, leveled logging for the application.
// A running TUI owns the terminal, so all output goes to a log file; before
// Init is called (or if it fails) every call is a no-op.
package log

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category tags a log line with the subsystem that produced it.
type Category string

const (
	// CatConfig covers config loading, saving, and sound service setup.
	CatConfig Category = "config"
	// CatSession covers the session clock and phase transitions.
	CatSession Category = "session"
	// CatCue covers the cue scheduler and fade tasks.
	CatCue Category = "cue"
	// CatSound covers audio playback.
	CatSound Category = "sound"
	// CatUI covers screen lifecycle events.
	CatUI Category = "ui"
)

var (
	mu     sync.RWMutex
	logger *zap.SugaredLogger
)

// Init opens (creating directories as needed) the log file at path and routes
// all subsequent log calls to it. Debug controls the minimum level.
func Init(path string, debug bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(f), level)

	mu.Lock()
	defer mu.Unlock()
	logger = zap.New(core).Sugar()
	return nil
}

// Close flushes any buffered log entries and disables further logging.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		_ = logger.Sync()
		logger = nil
	}
}

// Debug logs a debug-level message with key-value pairs.
func Debug(cat Category, msg string, kv ...any) { emit(zapcore.DebugLevel, cat, msg, kv...) }

// Info logs an info-level message with key-value pairs.
func Info(cat Category, msg string, kv ...any) { emit(zapcore.InfoLevel, cat, msg, kv...) }

// Warn logs a warn-level message with key-value pairs.
func Warn(cat Category, msg string, kv ...any) { emit(zapcore.WarnLevel, cat, msg, kv...) }

// Error logs an error-level message with key-value pairs.
func Error(cat Category, msg string, kv ...any) { emit(zapcore.ErrorLevel, cat, msg, kv...) }

func emit(level zapcore.Level, cat Category, msg string, kv ...any) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l == nil {
		return
	}
	kv = append([]any{"category", string(cat)}, kv...)
	switch level {
	case zapcore.DebugLevel:
		l.Debugw(msg, kv...)
	case zapcore.InfoLevel:
		l.Infow(msg, kv...)
	case zapcore.WarnLevel:
		l.Warnw(msg, kv...)
	default:
		l.Errorw(msg, kv...)
	}
}
