// Package logging builds the per-invocation zap logger. Each run constructs
// its own logger instance from the configured level; no logging state is
// shared across invocations.
package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewRunID returns a fresh correlation ID for one invocation. Every log
// line carries it as the "run" field.
func NewRunID() string {
	return uuid.NewString()
}

// New builds a console logger writing to stderr at the given level, tagged
// with the run ID.
func New(level zapcore.Level, runID string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("run", runID)), nil
}
