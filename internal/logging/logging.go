// Package logging builds the process logger.
//
// Standard output belongs to the stdio transport, so every logger writes to stderr.
package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options represents logger options
type Options struct {
	Level  string `yaml:"level" json:"level" long:"level" description:"log level: debug, info, warn, error"`
	Format string `yaml:"format" json:"format" long:"format" description:"log format" choice:"console" choice:"json"`
	Name   string `yaml:"name" json:"name" long:"name" description:"logger name"`
}

// New creates a zap logger writing to stderr
func New(options *Options) (*zap.Logger, error) {
	if options == nil {
		options = &Options{}
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(options.Level)); err != nil || options.Level == "" {
		level = zapcore.InfoLevel
	}
	format := options.Format
	switch format {
	case "json", "console":
	case "":
		format = "console"
	default:
		return nil, fmt.Errorf("unsupported log format: %v", format)
	}
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:    "message",
		LevelKey:      "level",
		TimeKey:       "timestamp",
		NameKey:       "logger",
		CallerKey:     "caller",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
		EncodeDuration: func(d time.Duration, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendFloat64(float64(d) / float64(time.Millisecond))
		},
	}
	cfg := &zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         format,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	if options.Name != "" {
		logger = logger.Named(options.Name)
	}
	return logger, nil
}
