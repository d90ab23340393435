package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gpucheck/internal/conf"
	"gpucheck/internal/gpu"
	"gpucheck/internal/report"
)

func main() {
	configErr := conf.LoadConfig(conf.DefaultPath())

	logger, err := initializeLogger(conf.GetLog())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		logger = zap.NewNop()
	}
	defer func() {
		_ = logger.Sync()
	}()
	if configErr != nil {
		logger.Warn("using default configuration", zap.Error(configErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	locale := conf.GetReport().Locale
	labels, ok := report.LabelsFor(locale)
	if !ok {
		logger.Warn("unknown locale, falling back to en", zap.String("locale", locale))
	}

	opts := []report.Option{
		report.WithLogger(logger),
		report.WithLabels(labels),
	}

	if runtime.GOOS == report.SupportedPlatform {
		provider, err := gpu.Open()
		if err != nil {
			logger.Error("WMI initialization failed", zap.Error(err))
			opts = append(opts, report.WithProviderError(err))
		} else {
			defer provider.Close()
			opts = append(opts, report.WithProvider(provider))
		}
	}

	report.New(os.Stdout, opts...).Run(ctx)
}

func initializeLogger(cfg conf.Log) (*zap.Logger, error) {
	loggerConfig := zap.NewProductionConfig()
	if cfg.Debug {
		loggerConfig = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.ErrorLevel
	}
	if cfg.Debug {
		level = zapcore.DebugLevel
	}
	loggerConfig.Level = zap.NewAtomicLevelAt(level)
	loggerConfig.Encoding = "console"
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	loggerConfig.OutputPaths = []string{"stderr"}
	loggerConfig.ErrorOutputPaths = []string{"stderr"}
	// Traces are attached explicitly where needed
	loggerConfig.DisableStacktrace = true

	return loggerConfig.Build()
}
