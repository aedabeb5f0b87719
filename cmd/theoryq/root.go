package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aescanero/theoryq/internal/application/question"
	"github.com/aescanero/theoryq/internal/config"
	"github.com/aescanero/theoryq/pkg/adapters/metrics/prometheus"
	"github.com/aescanero/theoryq/pkg/api/grpc"
	"github.com/aescanero/theoryq/pkg/api/http"
	"github.com/aescanero/theoryq/pkg/domain"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "theoryq",
		Short:         "Personalised theory question service",
		Long:          "theoryq serves a theory question and its solution to the exam platform over a small REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.Flags().String("host", "", "Listen host (overrides THEORYQ_HOST)")
	cmd.Flags().Int("port", 0, "HTTP listen port (overrides THEORYQ_HTTP_PORT)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "theoryq %s (built %s)\n", Version, BuildTime)
		},
	})

	return cmd
}

// loadConfig reads the environment, applies --host/--port on top and
// validates the result once
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Parse()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("host") {
		cfg.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("port") {
		cfg.HTTPPort, _ = cmd.Flags().GetInt("port")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func run(cfg *config.Config) error {
	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	logger.Info("starting theory question service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("mode", cfg.Question.Mode))

	validator := question.NewValidator()
	provider, err := question.NewProvider(
		cfg.Question.Mode,
		domain.Pair{Question: cfg.Question.Text, Solution: cfg.Question.Solution},
		cfg.Question.BankFile,
		validator,
	)
	if err != nil {
		return fmt.Errorf("failed to create question provider: %w", err)
	}
	if bank, ok := provider.(*question.BankProvider); ok {
		logger.Info("question bank loaded",
			zap.String("file", cfg.Question.BankFile),
			zap.Int("entries", bank.Size()))
	}

	httpCfg := &http.Config{
		Addr:         cfg.GetHTTPAddr(),
		ReadTimeout:  cfg.Timeouts.HTTPRead,
		WriteTimeout: cfg.Timeouts.HTTPWrite,
		Logger:       logger,
	}

	var recorder question.MetricsRecorder
	if cfg.MetricsEnabled {
		registry := promclient.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metricsCollector := prometheus.NewCollector(registry)

		recorder = metricsCollector
		httpCfg.Observer = metricsCollector
		httpCfg.Gatherer = registry
	}

	httpCfg.Questions = question.NewService(provider, validator, recorder, logger)
	httpServer := http.NewServer(httpCfg)

	var grpcServer *grpc.Server
	if cfg.GRPCEnabled {
		grpcServer, err = grpc.NewServer(&grpc.Config{
			Addr:   cfg.GetGRPCAddr(),
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create gRPC server: %w", err)
		}
	}

	// Start servers
	errCh := make(chan error, 2)
	go func() {
		if err := httpServer.Start(); err != nil {
			errCh <- err
		}
	}()

	if grpcServer != nil {
		go func() {
			if err := grpcServer.Start(); err != nil {
				errCh <- err
			}
		}()
	}

	logger.Info("theory question service started",
		zap.String("http_addr", cfg.GetHTTPAddr()),
		zap.Bool("grpc_enabled", cfg.GRPCEnabled),
		zap.Bool("metrics_enabled", cfg.MetricsEnabled))

	// Wait for interrupt signal or a server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case <-sigCh:
		logger.Info("received shutdown signal")
	case runErr = <-errCh:
		logger.Error("server failed", zap.Error(runErr))
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if grpcServer != nil {
		if err := grpcServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("gRPC server shutdown error", zap.Error(err))
		}
	}

	logger.Info("theory question service shut down complete")
	return runErr
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
