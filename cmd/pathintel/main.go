package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/atinylittleshell/pathintel/internal/core"
	"github.com/atinylittleshell/pathintel/internal/render"
)

var BUILD_VERSION = "dev"

// newLogger builds the process logger. Tests replace it.
var newLogger = initializeLogger

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		render.Error(os.Stderr, err)
		os.Exit(1)
	}
}

func initializeLogger(level zapcore.Level) (*zap.Logger, error) {
	logLevel := zap.NewAtomicLevelAt(level)
	if BUILD_VERSION == "dev" {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	// stdout carries completions and session messages, so logs only go to file.
	// Use `tail -f ~/.pathintel/pathintel.log` to follow them.
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}

	return loggerConfig.Build()
}
