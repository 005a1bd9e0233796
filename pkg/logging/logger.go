// Package logging builds the zap logger used across the service: a console
// core on stdout and, when a log file is configured, a JSON core writing to a
// size-rotated file.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Default rotation settings for the log file
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 5
	DefaultMaxAgeDays = 30
)

// Options controls logger construction
type Options struct {
	// Production selects the JSON encoder; otherwise a colored console encoder is used
	Production bool

	// Level is a zap level name (debug, info, warn, error). Empty means info.
	Level string

	// FilePath enables the rotated file sink when non-empty
	FilePath string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New creates a logger and a cleanup function that flushes it and closes
// the log file.
func New(opts Options) (*zap.Logger, func(), error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder(opts.Production), zapcore.Lock(os.Stdout), level),
	}

	var file *lumberjack.Logger
	if opts.FilePath != "" {
		file = newFileWriter(opts)
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig(true)),
			zapcore.AddSync(file),
			level,
		))
	}

	zapOpts := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)}
	if !opts.Production {
		zapOpts = append(zapOpts, zap.Development())
	}
	logger := zap.New(zapcore.NewTee(cores...), zapOpts...)

	cleanup := func() {
		_ = logger.Sync()
		if file != nil {
			_ = file.Close()
		}
	}

	return logger, cleanup, nil
}

func parseLevel(name string) (zapcore.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(strings.ToLower(name))
	if err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

func encoderConfig(production bool) zapcore.EncoderConfig {
	var cfg zapcore.EncoderConfig
	if production {
		cfg = zap.NewProductionEncoderConfig()
	} else {
		cfg = zap.NewDevelopmentEncoderConfig()
	}
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

func consoleEncoder(production bool) zapcore.Encoder {
	if production {
		return zapcore.NewJSONEncoder(encoderConfig(true))
	}
	cfg := encoderConfig(false)
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func newFileWriter(opts Options) *lumberjack.Logger {
	w := &lumberjack.Logger{
		Filename:   opts.FilePath,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
	if w.MaxSize <= 0 {
		w.MaxSize = DefaultMaxSizeMB
	}
	if w.MaxBackups <= 0 {
		w.MaxBackups = DefaultMaxBackups
	}
	if w.MaxAge <= 0 {
		w.MaxAge = DefaultMaxAgeDays
	}
	return w
}
