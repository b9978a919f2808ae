package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// It discards everything until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize sets up the global logger with the given level, writing JSON
// lines to path. The terminal belongs to the UI, so an empty path keeps the
// no-op logger.
func Initialize(level, path string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}

// Sync flushes buffered entries.
func Sync() {
	_ = Log.Sync()
}
