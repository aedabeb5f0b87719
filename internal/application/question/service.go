package question

import (
	"context"
	"fmt"

	"github.com/aescanero/theoryq/pkg/domain"
	"go.uber.org/zap"
)

// MetricsRecorder receives question outcome metrics
type MetricsRecorder interface {
	RecordQuestionServed(mode string)
	RecordQuestionFailure(mode string)
}

// Service serves question/solution pairs to the exam platform
type Service struct {
	provider  Provider
	validator *Validator
	metrics   MetricsRecorder
	logger    *zap.Logger
}

// NewService creates a new question service
func NewService(provider Provider, validator *Validator, metrics MetricsRecorder, logger *zap.Logger) *Service {
	return &Service{
		provider:  provider,
		validator: validator,
		metrics:   metrics,
		logger:    logger,
	}
}

// Get returns the pair for one request. Any error is a defect in the
// provider, never a condition the caller can recover from.
func (s *Service) Get(ctx context.Context) (domain.Pair, error) {
	mode := s.provider.Mode()

	pair, err := s.provider.Next(ctx)
	if err != nil {
		s.fail(mode, err)
		return domain.Pair{}, fmt.Errorf("failed to get question: %w", err)
	}

	if err := s.validator.Validate(pair); err != nil {
		s.fail(mode, err)
		return domain.Pair{}, err
	}

	if s.metrics != nil {
		s.metrics.RecordQuestionServed(mode)
	}
	s.logger.Debug("question served", zap.String("mode", mode))

	return pair, nil
}

// Mode returns the mode of the underlying provider
func (s *Service) Mode() string {
	return s.provider.Mode()
}

func (s *Service) fail(mode string, err error) {
	if s.metrics != nil {
		s.metrics.RecordQuestionFailure(mode)
	}
	s.logger.Error("question unavailable",
		zap.String("mode", mode),
		zap.Error(err))
}
