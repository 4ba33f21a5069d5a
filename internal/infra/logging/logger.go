// Package logging provides zap-based logging for task-cli.
// Warnings and errors go to stderr; when a log file is configured every
// message at or above the configured level is also appended there as JSON.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/runoshun/task-cli/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Options configures a Logger.
type Options struct {
	Stderr io.Writer // Console sink, defaults to os.Stderr
	Level  string    // Minimum level for the file sink
	File   string    // Log file path; empty disables file logging
}

// Logger adapts a zap.Logger to domain.Logger.
type Logger struct {
	zap  *zap.Logger
	file *os.File
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	level := ParseLevel(opts.Level)

	consoleLevel := zapcore.WarnLevel
	if level > consoleLevel {
		consoleLevel = level
	}
	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoderConfig()),
			zapcore.Lock(zapcore.AddSync(stderr)),
			consoleLevel,
		),
	}

	var file *os.File
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		file = f
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(fileEncoderConfig()),
			zapcore.Lock(f),
			level,
		))
	}

	return &Logger{
		zap:  zap.New(zapcore.NewTee(cores...)),
		file: file,
	}, nil
}

// ParseLevel parses a level name, falling back to info.
func ParseLevel(levelStr string) zapcore.Level {
	level := zapcore.InfoLevel
	if err := level.Set(levelStr); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		LevelKey:         "level",
		NameKey:          "category",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " ",
	}
}

func fileEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.NameKey = "category"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	_ = l.zap.Sync()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) log(level zapcore.Level, taskID int, category, msg string) {
	var fields []zap.Field
	if taskID > 0 {
		fields = append(fields, zap.Int("task", taskID))
	}
	if ce := l.zap.Named(category).Check(level, msg); ce != nil {
		ce.Write(fields...)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(taskID int, category, msg string) {
	l.log(zapcore.DebugLevel, taskID, category, msg)
}

// Info logs an info message.
func (l *Logger) Info(taskID int, category, msg string) {
	l.log(zapcore.InfoLevel, taskID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(taskID int, category, msg string) {
	l.log(zapcore.WarnLevel, taskID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(taskID int, category, msg string) {
	l.log(zapcore.ErrorLevel, taskID, category, msg)
}
