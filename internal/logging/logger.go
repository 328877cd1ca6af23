// Package logging wraps zap with the little this service needs.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.Logger
}

// NewLogger builds a production logger at the given level ("debug",
// "info", "warn", "error").
func NewLogger(level string) (*Logger, error) {
	config := zap.NewProductionConfig()

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{logger}, nil
}

// NewNop returns a logger that discards everything; handy in tests and
// in the REPL, which owns stdout.
func NewNop() *Logger {
	return &Logger{zap.NewNop()}
}
