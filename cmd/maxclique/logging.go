package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logFormatJSON    = "json"
	logFormatConsole = "console"
)

// newLogger builds a zap logger for one CLI invocation, in the idiom of
// ConductorOne/baton-sdk's pkg/logging.Init — simplified to what a one-shot
// benchmarking command needs: no log rotation, no gRPC context bridge,
// since those serve a long-running daemon rather than this CLI.
func newLogger(level, format string) (*zap.Logger, error) {
	var zc zap.Config
	if format == logFormatConsole {
		zc = zap.NewDevelopmentConfig()
		zc.Encoding = logFormatConsole
	} else {
		zc = zap.NewProductionConfig()
		zc.Encoding = logFormatJSON
	}
	zc.DisableStacktrace = true
	zc.Sampling = nil

	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}
