// Package logging builds the zap logger used by the numring command.
//
// Output is teed to a human-readable console core and, when a path is set,
// to a JSON file core rotated by lumberjack. Slog bridges the result into
// log/slog so the numring library logs through the same cores.
package logging

import (
	"io"
	"log/slog"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// Config selects the logger outputs.
type Config struct {
	// Debug lowers the level from info to debug.
	Debug bool

	// FilePath enables the rotating JSON file core. Empty disables it.
	FilePath string

	// File tunes rotation of FilePath. Zero fields use defaults.
	File FileWriterConfig

	// Console receives the human-readable output. Defaults to os.Stderr.
	Console io.Writer
}

// New builds a zap logger from cfg.
//
// Example:
//
//	logger := logging.New(logging.Config{Debug: true, FilePath: "numring.log"})
//	defer logger.Sync()
func New(cfg Config) *zap.Logger {
	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	var file zapcore.WriteSyncer
	if cfg.FilePath != "" {
		file = NewFileWriter(cfg.FilePath, cfg.File)
	}

	return zap.New(NewCore(level, zapcore.AddSync(console), file))
}

// NewCore tees a console core and, if file is non-nil, a JSON file core.
func NewCore(level zapcore.Level, console, file zapcore.WriteSyncer) zapcore.Core {
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(NewConsoleEncoderConfig()), console, level),
	}
	if file != nil {
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(NewEncoderConfig()), file, level))
	}
	return zapcore.NewTee(cores...)
}

// Slog returns a slog.Logger that writes through l's core.
func Slog(l *zap.Logger) *slog.Logger {
	return slog.New(zapslog.NewHandler(l.Core(), zapslog.WithName("numring")))
}
