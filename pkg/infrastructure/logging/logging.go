// Package logging provides structured logger construction for the CLI
// and the file loaders
package logging

import "go.uber.org/zap"

// Config holds logging configuration
type Config struct {
	Level       string
	Development bool
}

// NewLogger creates a zap logger. Output goes to stderr so report output
// on stdout stays pipeable. An unparseable level falls back to info.
func NewLogger(config Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if config.Development {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.Encoding = "console"
	}

	level, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	return zapConfig.Build()
}

// NewDefaultLogger creates a logger with sensible defaults
func NewDefaultLogger() *zap.Logger {
	logger, err := NewLogger(Config{Level: "info"})
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return logger
}
