// Package logging provides structured logging for the API server and CLI.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig holds logging configuration.
type LogConfig struct {
	Level    string
	Console  bool
	File     bool
	FilePath string
	MaxSize  int // megabytes
	MaxAge   int // days
}

// DefaultLogConfig returns console-only logging at info level.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:    "info",
		Console:  true,
		FilePath: filepath.Join("logs", "options-builder.log"),
		MaxSize:  50,
		MaxAge:   30,
	}
}

// NewLogger creates a logger with the default configuration.
func NewLogger() zerolog.Logger {
	return NewLoggerWithConfig(DefaultLogConfig())
}

// NewLoggerWithConfig creates a logger with the specified configuration.
func NewLoggerWithConfig(cfg LogConfig) zerolog.Logger {
	var writers []io.Writer

	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	if cfg.File {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename: cfg.FilePath,
				MaxSize:  cfg.MaxSize,
				MaxAge:   cfg.MaxAge,
				Compress: true,
			})
		}
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
}
