package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aescanero/theoryq/internal/application/question"
	metrics "github.com/aescanero/theoryq/pkg/adapters/metrics/prometheus"
	"github.com/aescanero/theoryq/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newMeteredServer(t *testing.T) *Server {
	t.Helper()
	logger := zaptest.NewLogger(t)
	validator := question.NewValidator()
	provider, err := question.NewStaticProvider(domain.Pair{
		Question: "THE GENERATED QUESTION",
		Solution: "THE GENERATED SOLUTION",
	}, validator)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	return NewServer(&Config{
		Questions: question.NewService(provider, validator, collector, logger),
		Logger:    logger,
		Observer:  collector,
		Gatherer:  registry,
	})
}

func TestGetQuestion_CountedOnMetricsEndpoint(t *testing.T) {
	s := newMeteredServer(t)

	rec := do(t, s, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `theoryq_questions_served_total{mode="static"} 1`)
	assert.Contains(t, body, `theoryq_http_requests_total{method="GET",route="/",status="2xx"} 1`)
	assert.NotContains(t, body, `theoryq_question_failures_total{`)
}

func TestGetQuestion_CancelledRequestStillServed(t *testing.T) {
	s := newMeteredServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"question": "THE GENERATED QUESTION", "solution": "THE GENERATED SOLUTION"}`, rec.Body.String())

	rec = do(t, s, http.MethodGet, "/metrics", nil)
	assert.NotContains(t, rec.Body.String(), `theoryq_question_failures_total{`)
}
