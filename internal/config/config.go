package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/aescanero/theoryq/internal/application/question"
	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the theory question service
type Config struct {
	// Server configuration
	Host        string `env:"THEORYQ_HOST" envDefault:"0.0.0.0"`
	HTTPPort    int    `env:"THEORYQ_HTTP_PORT" envDefault:"8080"`
	GRPCEnabled bool   `env:"THEORYQ_GRPC_ENABLED" envDefault:"false"`
	GRPCPort    int    `env:"THEORYQ_GRPC_PORT" envDefault:"9090"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	// Question configuration
	Question QuestionConfig

	// Timeouts
	Timeouts TimeoutConfig
}

// QuestionConfig selects where question/solution pairs come from
type QuestionConfig struct {
	Mode     string `env:"QUESTION_MODE" envDefault:"static"`
	Text     string `env:"QUESTION_TEXT" envDefault:"THE GENERATED QUESTION"`
	Solution string `env:"QUESTION_SOLUTION" envDefault:"THE GENERATED SOLUTION"`
	BankFile string `env:"QUESTION_BANK_FILE"`
}

// TimeoutConfig holds various timeout configurations
type TimeoutConfig struct {
	HTTPRead  time.Duration `env:"TIMEOUT_HTTP_READ" envDefault:"10s"`
	HTTPWrite time.Duration `env:"TIMEOUT_HTTP_WRITE" envDefault:"10s"`
	Shutdown  time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"30s"`
}

// Parse reads configuration from environment variables without validating it
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.GRPCEnabled {
		if c.GRPCPort < 1 || c.GRPCPort > 65535 {
			return fmt.Errorf("invalid gRPC port: %d", c.GRPCPort)
		}
		if c.GRPCPort == c.HTTPPort {
			return fmt.Errorf("gRPC port %d collides with HTTP port", c.GRPCPort)
		}
	}

	switch c.Question.Mode {
	case question.ModeStatic:
		if c.Question.Text == "" {
			return fmt.Errorf("question text is required in static mode")
		}
		if c.Question.Solution == "" {
			return fmt.Errorf("question solution is required in static mode")
		}
	case question.ModeBank:
		if c.Question.BankFile == "" {
			return fmt.Errorf("question bank file is required in bank mode")
		}
	default:
		return fmt.Errorf("unsupported question mode: %s (must be static or bank)", c.Question.Mode)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if c.Timeouts.Shutdown <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}

	return nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.HTTPPort))
}

// GetGRPCAddr returns the gRPC server address
func (c *Config) GetGRPCAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.GRPCPort))
}
