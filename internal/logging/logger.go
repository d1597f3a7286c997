package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where log output goes
type Options struct {
	FilePath string // rotated JSON log file; empty disables the file core
	Console  bool   // also log to stderr
	Debug    bool   // console level debug instead of info, human readable encoder
}

// New builds a zap logger writing JSON lines to a rotated file and,
// optionally, to stderr.
func New(opts Options) *zap.Logger {
	var cores []zapcore.Core

	if opts.FilePath != "" {
		cores = append(cores, fileCore(opts.FilePath))
	}

	if opts.Console {
		level := zap.InfoLevel
		encoder := zapcore.NewJSONEncoder(encoderConfig())
		if opts.Debug {
			level = zap.DebugLevel
			encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level))
	}

	if len(cores) == 0 {
		return zap.NewNop()
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}

// NewIsolated creates a logger that only writes to the file. The TUI uses it
// so nothing is printed over the alternate screen.
func NewIsolated(filePath string) *zap.Logger {
	if filePath == "" {
		return zap.NewNop()
	}
	return zap.New(fileCore(filePath), zap.AddCaller())
}

func fileCore(path string) zapcore.Core {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // Megabytes
		MaxBackups: 5,
		MaxAge:     30, // Days
		Compress:   true,
	}

	return zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig()),
		zapcore.AddSync(rotator),
		zap.InfoLevel,
	)
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.MessageKey = "message"
	cfg.LevelKey = "level"
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}
