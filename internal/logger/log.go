// Package logger builds the zap loggers used by the spantree command.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// New returns a logger writing to stderr, so stdout stays reserved for results.
// json selects the JSON encoder; otherwise a colored console encoder is used.
func New(json bool, level string) (*zap.Logger, error) {
	return NewWithSink(zapcore.Lock(os.Stderr), json, level)
}

// NewWithSink is New with an explicit destination.
func NewWithSink(ws zapcore.WriteSyncer, json bool, level string) (*zap.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	econf := zapcore.EncoderConfig{
		TimeKey:        "ts",
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "logger",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var core zapcore.Core

	if json {
		core = zapcore.NewCore(zapcore.NewJSONEncoder(econf), ws, lvl)
	} else {
		econf.EncodeLevel = zapcore.CapitalColorLevelEncoder
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(econf), ws, lvl)
	}

	return zap.New(core).Named("spantree"), nil
}
