package main

import "os"

import "go.uber.org/zap"
import "go.uber.org/zap/zapcore"

// newLogger logs errors to stderr and everything else to stdout.
func newLogger(verbose bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	config := zap.NewProductionEncoderConfig()
	if verbose {
		level = zapcore.DebugLevel
		config = zap.NewDevelopmentEncoderConfig()
	}
	config.EncodeTime = zapcore.RFC3339TimeEncoder
	encoder := zapcore.NewConsoleEncoder(config)

	isErrorLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})
	isInfoLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= level && lvl < zapcore.ErrorLevel
	})
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), isErrorLevel),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), isInfoLevel),
	)
	opts := []zap.Option{}
	if verbose {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(core, opts...).Sugar()
}
